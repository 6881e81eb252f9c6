// Package backup loads a fabric configuration from a saved snapshot: a
// plain JSON export or a controller backup archive.
package backup

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/acitools/fabricmig/pkg/common"
)

// ErrNoPayload is returned when an archive holds no configuration file.
var ErrNoPayload = errors.New("archive contains no JSON configuration payload")

// Load reads the raw configuration document from path. Archives are
// unpacked into a temporary directory that is removed again before Load
// returns, on every path.
func Load(path string) ([]byte, error) {
	switch {
	case strings.HasSuffix(path, ".tar.gz"), strings.HasSuffix(path, ".tgz"):
		return loadArchive(path)
	default:
		return common.ReadFile(path)
	}
}

func loadArchive(path string) (data []byte, err error) {
	dir := filepath.Join(os.TempDir(), "aci-backup-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(err, "creating extraction dir")
	}
	defer func() {
		if e := os.RemoveAll(dir); e != nil && err == nil {
			err = errors.Wrap(e, "removing extraction dir")
		}
	}()

	if err := extract(path, dir); err != nil {
		return nil, err
	}
	payload, err := findPayload(dir)
	if err != nil {
		return nil, err
	}
	klog.V(2).Infof("using archive payload %s", filepath.Base(payload))
	return common.ReadFile(payload)
}

func extract(path, dir string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening archive %s", path)
	}
	defer f.Close()
	gz, err := gzip.NewReader(f)
	if err != nil {
		return errors.Wrap(err, "reading gzip stream")
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading archive entry")
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}
		// Flatten entry paths; snapshot archives are a single level and
		// entry names must not escape the extraction dir.
		target := filepath.Join(dir, filepath.Base(hdr.Name))
		out, err := os.Create(target)
		if err != nil {
			return errors.Wrapf(err, "creating %s", target)
		}
		if _, err := io.Copy(out, tr); err != nil {
			out.Close()
			return errors.Wrapf(err, "extracting %s", hdr.Name)
		}
		if err := out.Close(); err != nil {
			return errors.Wrapf(err, "closing %s", target)
		}
	}
}

// findPayload picks the configuration file out of the extracted snapshot.
// Controller snapshots name the policy export *_1.json; fall back to any
// JSON file, skipping checksum companions.
func findPayload(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.Wrap(err, "listing extracted files")
	}
	fallback := ""
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") || strings.Contains(name, ".md5") {
			continue
		}
		if strings.HasSuffix(name, "_1.json") {
			return filepath.Join(dir, name), nil
		}
		if fallback == "" {
			fallback = filepath.Join(dir, name)
		}
	}
	if fallback == "" {
		return "", ErrNoPayload
	}
	return fallback, nil
}
