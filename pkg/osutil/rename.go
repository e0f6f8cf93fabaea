// Package osutil holds small filesystem helpers that need platform specific
// implementations.
package osutil

import (
	"io/fs"
	"os"
)

// Exists reports whether path names an existing entry. Symlinks are not
// followed, so a dangling link still exists.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func linkError(oldpath, newpath string, err error) error {
	return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: err}
}

// renameChecked is the portable fallback for RenameNoReplace. The check and
// the rename are two separate steps, so a destination created in between
// may still be replaced on platforms where rename overwrites.
func renameChecked(oldpath, newpath string) error {
	exists, err := Exists(newpath)
	if err != nil {
		return linkError(oldpath, newpath, err)
	}
	if exists {
		return linkError(oldpath, newpath, fs.ErrExist)
	}
	return os.Rename(oldpath, newpath)
}
