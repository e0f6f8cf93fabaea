package skills

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jingkaihe/skillctl/pkg/logger"
	"github.com/jingkaihe/skillctl/pkg/osutil"
)

// Registry lists and relocates skills between the active and disabled roots
type Registry struct {
	config Config
}

// NewRegistry creates a registry operating on the roots in config
func NewRegistry(config Config) (*Registry, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid registry config")
	}
	return &Registry{config: config}, nil
}

// Config returns the roots the registry operates on
func (r *Registry) Config() Config {
	return r.config
}

// ActivePath returns the path name would have in the active root
func (r *Registry) ActivePath(name string) string {
	return filepath.Join(r.config.ActiveRoot, name)
}

// DisabledPath returns the path name would have in the disabled root
func (r *Registry) DisabledPath(name string) string {
	return filepath.Join(r.config.DisabledRoot, name)
}

// ListActive returns the plain skill directories and the symlinks of the
// active root. Reserved-prefixed directories are skipped; symlinks are
// reported regardless of their name and are never counted as skills, even
// when they point at a directory.
func (r *Registry) ListActive(ctx context.Context) (*ActiveListing, error) {
	entries, err := os.ReadDir(r.config.ActiveRoot)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read skills directory")
	}

	listing := &ActiveListing{
		Skills:   []string{},
		Symlinks: []Symlink{},
	}

	for _, entry := range entries {
		name := entry.Name()

		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := os.Readlink(r.ActivePath(name))
			if err != nil {
				logger.G(ctx).WithError(err).WithField("skill", name).Debug("failed to read symlink")
				continue
			}
			listing.Symlinks = append(listing.Symlinks, Symlink{Name: name, Target: target})
			continue
		}

		if entry.IsDir() && !strings.HasPrefix(name, ReservedPrefix) {
			listing.Skills = append(listing.Skills, name)
		}
	}

	sort.Strings(listing.Skills)
	sort.Slice(listing.Symlinks, func(i, j int) bool {
		return listing.Symlinks[i].Name < listing.Symlinks[j].Name
	})

	logger.G(ctx).WithFields(logrus.Fields{
		"root":     r.config.ActiveRoot,
		"skills":   len(listing.Skills),
		"symlinks": len(listing.Symlinks),
	}).Debug("listed active skills")

	return listing, nil
}

// ListDisabled returns the directories of the disabled root. A disabled
// root that does not exist yet is not an error; Exists is false instead.
func (r *Registry) ListDisabled(ctx context.Context) (*DisabledListing, error) {
	listing := &DisabledListing{Skills: []string{}}

	entries, err := os.ReadDir(r.config.DisabledRoot)
	if err != nil {
		if os.IsNotExist(err) {
			logger.G(ctx).WithField("root", r.config.DisabledRoot).Debug("disabled root does not exist")
			return listing, nil
		}
		return nil, errors.Wrap(err, "failed to read disabled skills directory")
	}
	listing.Exists = true

	for _, entry := range entries {
		info, err := os.Stat(r.DisabledPath(entry.Name()))
		if err != nil || !info.IsDir() {
			continue
		}
		listing.Skills = append(listing.Skills, entry.Name())
	}

	sort.Strings(listing.Skills)

	logger.G(ctx).WithFields(logrus.Fields{
		"root":   r.config.DisabledRoot,
		"skills": len(listing.Skills),
	}).Debug("listed disabled skills")

	return listing, nil
}

// Enable moves name from the disabled root back into the active root.
func (r *Registry) Enable(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	source := r.DisabledPath(name)
	target := r.ActivePath(name)

	exists, err := osutil.Exists(source)
	if err != nil {
		return errors.Wrapf(err, "failed to check skill '%s'", name)
	}
	if !exists {
		return errors.Wrapf(ErrNotFound, "'%s' in %s/", name, DisabledDirName)
	}

	exists, err = osutil.Exists(target)
	if err != nil {
		return errors.Wrapf(err, "failed to check skill '%s'", name)
	}
	if exists {
		return errors.Wrapf(ErrAlreadyActive, "'%s'", name)
	}

	if err := osutil.RenameNoReplace(source, target); err != nil {
		return renameError(err, name, ErrAlreadyActive, "failed to enable skill '%s'")
	}

	logger.G(ctx).WithFields(logrus.Fields{
		"skill": name,
		"from":  source,
		"to":    target,
	}).Debug("enabled skill")

	return nil
}

// Disable moves name from the active root into the disabled root, creating
// the disabled root on first use. Reserved-prefixed entries and symlinks are
// never moved. Reserved-prefixed names skip name validation so that ".",
// ".." and "./x" are reported as protected rather than invalid; the prefix
// check below stops them before anything is moved.
func (r *Registry) Disable(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil && !strings.HasPrefix(name, ReservedPrefix) {
		return err
	}

	source := r.ActivePath(name)
	target := r.DisabledPath(name)

	info, err := os.Lstat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrNotFound, "'%s'", name)
		}
		return errors.Wrapf(err, "failed to check skill '%s'", name)
	}

	if strings.HasPrefix(name, ReservedPrefix) {
		return errors.Wrapf(ErrProtectedEntry, "'%s'", name)
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		return errors.Wrapf(ErrUnsupportedEntryType, "'%s'", name)
	}

	if err := os.MkdirAll(r.config.DisabledRoot, 0o755); err != nil {
		return errors.Wrap(err, "failed to create disabled skills directory")
	}

	if err := osutil.RenameNoReplace(source, target); err != nil {
		return renameError(err, name, ErrAlreadyDisabled, "failed to disable skill '%s'")
	}

	logger.G(ctx).WithFields(logrus.Fields{
		"skill": name,
		"from":  source,
		"to":    target,
	}).Debug("disabled skill")

	return nil
}

// renameError maps a failed rename onto the registry errors: an existing
// destination becomes existsErr and a vanished source becomes ErrNotFound.
func renameError(err error, name string, existsErr error, format string) error {
	switch {
	case errors.Is(err, fs.ErrExist):
		return errors.Wrapf(existsErr, "'%s'", name)
	case errors.Is(err, fs.ErrNotExist):
		return errors.Wrapf(ErrNotFound, "'%s'", name)
	default:
		return errors.Wrapf(err, format, name)
	}
}
