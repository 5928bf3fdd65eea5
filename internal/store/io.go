package store

import (
	"os"
	"path/filepath"
)

// atomicWrite replaces path with data without ever leaving a torn file
// behind: the bytes land in a temp file in the same directory, which is then
// renamed over the target.
func atomicWrite(path string, data []byte, mode os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before the rename.
	defer func() { _ = os.Remove(tmp) }()

	_, err = f.Write(data)
	if err == nil {
		err = f.Chmod(mode)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
