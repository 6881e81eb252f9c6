// Package export persists projected tables as CSV files or an Excel
// workbook, and reads a workbook back for the conversion pass.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/acitools/fabricmig/pkg/tables"
)

// WriteCSVDir writes one CSV file per table into dir, creating it when
// absent. Stale CSV files from a previous run are removed first so the
// directory always reflects exactly one extraction.
func WriteCSVDir(dir string, ts []*tables.Table) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating output dir %s", dir)
	}
	stale, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return errors.Wrap(err, "listing previous output")
	}
	for _, f := range stale {
		if err := os.Remove(f); err != nil {
			return errors.Wrapf(err, "removing stale %s", f)
		}
	}
	for _, t := range ts {
		if err := writeCSV(filepath.Join(dir, t.Name+".csv"), t); err != nil {
			return err
		}
	}
	klog.V(2).Infof("wrote %d CSV file(s) to %s", len(ts), dir)
	return nil
}

func writeCSV(path string, t *tables.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = errors.Wrapf(e, "closing %s", path)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return errors.Wrapf(err, "writing header of %s", t.Name)
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, cell := range row {
			record[i] = cellText(cell)
		}
		if err := w.Write(record); err != nil {
			return errors.Wrapf(err, "writing row of %s", t.Name)
		}
	}
	w.Flush()
	return errors.Wrapf(w.Error(), "flushing %s", t.Name)
}

func cellText(cell interface{}) string {
	switch v := cell.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// sheetName truncates a table name to the 31-character sheet limit.
func sheetName(name string) string {
	if len(name) > 31 {
		return strings.TrimRight(name[:31], "_")
	}
	return name
}
