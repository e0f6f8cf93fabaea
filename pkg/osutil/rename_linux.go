//go:build linux

package osutil

import (
	"errors"

	"golang.org/x/sys/unix"
)

// RenameNoReplace renames oldpath to newpath and fails with an error
// matching fs.ErrExist if newpath already exists. On Linux the check and the
// rename happen atomically through renameat2(RENAME_NOREPLACE). Filesystems
// that do not support the flag fall back to a check followed by a rename.
func RenameNoReplace(oldpath, newpath string) error {
	err := unix.Renameat2(unix.AT_FDCWD, oldpath, unix.AT_FDCWD, newpath, unix.RENAME_NOREPLACE)
	if err == nil {
		return nil
	}
	if errors.Is(err, unix.EINVAL) || errors.Is(err, unix.ENOSYS) {
		return renameChecked(oldpath, newpath)
	}
	return linkError(oldpath, newpath, err)
}
