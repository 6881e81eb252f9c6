package export

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"k8s.io/klog/v2"

	"github.com/acitools/fabricmig/pkg/tables"
)

// WriteWorkbook writes every table as one sheet of an Excel workbook, in
// the given order. Integer cells produced by the rewrite pass are written
// as numbers.
func WriteWorkbook(path string, ts []*tables.Table) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			klog.Warningf("closing workbook: %v", err)
		}
	}()

	for i, t := range ts {
		sheet := sheetName(t.Name)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return errors.Wrapf(err, "naming sheet %s", sheet)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return errors.Wrapf(err, "creating sheet %s", sheet)
		}
		header := make([]interface{}, len(t.Columns))
		for c, col := range t.Columns {
			header[c] = col
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return errors.Wrapf(err, "writing header of %s", sheet)
		}
		for r, row := range t.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return errors.Wrapf(err, "addressing row %d of %s", r+2, sheet)
			}
			rowCopy := row
			if err := f.SetSheetRow(sheet, cell, &rowCopy); err != nil {
				return errors.Wrapf(err, "writing row of %s", sheet)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "saving workbook %s", path)
	}
	klog.V(2).Infof("wrote %d sheet(s) to %s", len(ts), path)
	return nil
}

// ReadWorkbook loads a workbook back into tables, one per sheet, cells as
// text. Sheets without a header row are skipped.
func ReadWorkbook(path string) ([]*tables.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening workbook %s", path)
	}
	defer func() {
		if err := f.Close(); err != nil {
			klog.Warningf("closing workbook: %v", err)
		}
	}()

	var out []*tables.Table
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, errors.Wrapf(err, "reading sheet %s", sheet)
		}
		if len(rows) == 0 || len(rows[0]) == 0 {
			continue
		}
		t := &tables.Table{Name: sheet, Columns: rows[0]}
		for _, row := range rows[1:] {
			cells := make([]interface{}, len(t.Columns))
			for i := range cells {
				if i < len(row) {
					cells[i] = row[i]
				} else {
					cells[i] = ""
				}
			}
			t.Rows = append(t.Rows, cells)
		}
		out = append(out, t)
	}
	return out, nil
}
