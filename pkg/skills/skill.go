// Package skills toggles skill directories between an active root and a
// disabled root. A skill is a directory identified by its name; disabling
// moves it under the reserved .disabled directory of the active root and
// enabling moves it back. Skills are only ever relocated, never copied or
// deleted.
package skills

import (
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	// ReservedPrefix marks system entries of the active root that are never
	// treated as skills.
	ReservedPrefix = "."

	// DisabledDirName is the name of the disabled root inside the active root.
	DisabledDirName = ".disabled"

	// SkillsDirName is the name of the active root inside an installation root.
	SkillsDirName = "skills"

	skillFileName = "SKILL.md"
)

// Config holds the pair of directories the registry operates on
type Config struct {
	ActiveRoot   string
	DisabledRoot string
}

// DefaultConfig returns the layout rooted at installRoot:
// <installRoot>/skills and <installRoot>/skills/.disabled.
func DefaultConfig(installRoot string) Config {
	return ConfigForSkillsDir(filepath.Join(installRoot, SkillsDirName))
}

// ConfigForSkillsDir returns the layout for an explicit active root.
func ConfigForSkillsDir(activeRoot string) Config {
	return Config{
		ActiveRoot:   activeRoot,
		DisabledRoot: filepath.Join(activeRoot, DisabledDirName),
	}
}

// Validate checks that both roots are set
func (c Config) Validate() error {
	if c.ActiveRoot == "" {
		return errors.New("active root is required")
	}
	if c.DisabledRoot == "" {
		return errors.New("disabled root is required")
	}
	return nil
}

// Symlink is a symbolic link found in the active root
type Symlink struct {
	Name   string
	Target string // literal link text, not resolved
}

// ActiveListing is the result of listing the active root
type ActiveListing struct {
	Skills   []string
	Symlinks []Symlink
}

// DisabledListing is the result of listing the disabled root
type DisabledListing struct {
	// Exists is false when the disabled root has not been created yet.
	Exists bool
	Skills []string
}

// Metadata represents the YAML frontmatter in SKILL.md files
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}
