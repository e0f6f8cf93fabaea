package skills

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when the skill is absent from the root it is looked up in.
	ErrNotFound = errors.New("skill not found")
	// ErrAlreadyActive is returned when enabling a skill that is already in the active root.
	ErrAlreadyActive = errors.New("skill is already active")
	// ErrAlreadyDisabled is returned when disabling a skill whose name is taken in the disabled root.
	ErrAlreadyDisabled = errors.New("skill is already disabled")
	// ErrProtectedEntry is returned when disabling a reserved system entry.
	ErrProtectedEntry = errors.New("cannot disable system directory")
	// ErrUnsupportedEntryType is returned when disabling a symlink.
	ErrUnsupportedEntryType = errors.New("cannot disable symlink")
	// ErrInvalidName is returned for names that do not address a single entry of a root.
	ErrInvalidName = errors.New("invalid skill name")
)

// ValidateName checks that name addresses exactly one entry directly under a
// root.
func ValidateName(name string) error {
	switch {
	case name == "":
		return errors.Wrap(ErrInvalidName, "name is empty")
	case name == "." || name == "..":
		return errors.Wrapf(ErrInvalidName, "'%s'", name)
	case strings.ContainsAny(name, `/\`):
		return errors.Wrapf(ErrInvalidName, "'%s' contains a path separator", name)
	}
	return nil
}
