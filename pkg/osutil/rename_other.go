//go:build !linux

package osutil

// RenameNoReplace renames oldpath to newpath and fails with an error
// matching fs.ErrExist if newpath already exists.
func RenameNoReplace(oldpath, newpath string) error {
	return renameChecked(oldpath, newpath)
}
