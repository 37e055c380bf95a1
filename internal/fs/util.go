package fs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tableauio/jsonsum/xerrors"
)

// ReadFunc reads the whole file content.
type ReadFunc func(name string) ([]byte, error)

// ReadFile reads the file at path with readFunc (os.ReadFile if nil).
// Any failure is reported as an xerrors.IOError keeping the OS diagnostic.
func ReadFile(path string, readFunc ReadFunc) ([]byte, error) {
	if readFunc == nil {
		readFunc = os.ReadFile
	}
	content, err := readFunc(path)
	if err != nil {
		return nil, xerrors.E0001(path, err)
	}
	return content, nil
}

func GetCleanSlashPath(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// CollectFiles expands paths into the list of files to read. A directory is
// walked recursively for files with extension ext (case-insensitive); any
// other path, existing or not, is kept as is so that reading it reports the
// failure. Duplicates are dropped, the first occurrence wins.
func CollectFiles(paths []string, ext string) ([]string, error) {
	var files []string
	seen := map[string]bool{}
	add := func(path string) {
		clean := GetCleanSlashPath(path)
		if !seen[clean] {
			seen[clean] = true
			files = append(files, path)
		}
	}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			add(path)
			continue
		}
		err = RangeFilesByExt(path, ext, func(path string) error {
			add(path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// RangeFilesByExt calls callback for each file under dir with extension ext,
// in lexical order, descending into subdirectories.
func RangeFilesByExt(dir string, ext string, callback func(path string) error) error {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return xerrors.E0001(dir, err)
	}
	for _, entry := range dirEntries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			// scan subdir recursively
			if err := RangeFilesByExt(path, ext, callback); err != nil {
				return err
			}
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			continue
		}
		if err := callback(path); err != nil {
			return err
		}
	}
	return nil
}
