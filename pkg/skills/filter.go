package skills

import (
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// Filter restricts listings to names matching a glob pattern.
// A nil Filter matches every name.
type Filter struct {
	pattern string
	g       glob.Glob
}

// NewFilter compiles pattern. An empty pattern yields a nil Filter.
func NewFilter(pattern string) (*Filter, error) {
	if pattern == "" {
		return nil, nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid filter pattern '%s'", pattern)
	}
	return &Filter{pattern: pattern, g: g}, nil
}

// Match reports whether name passes the filter
func (f *Filter) Match(name string) bool {
	if f == nil {
		return true
	}
	return f.g.Match(name)
}

// String returns the pattern the filter was compiled from
func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.pattern
}

// Names returns the names that pass the filter, preserving order
func (f *Filter) Names(names []string) []string {
	if f == nil {
		return names
	}
	filtered := []string{}
	for _, name := range names {
		if f.Match(name) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

// Active returns a copy of listing with skills and symlinks filtered by name
func (f *Filter) Active(listing *ActiveListing) *ActiveListing {
	if f == nil || listing == nil {
		return listing
	}
	filtered := &ActiveListing{
		Skills:   f.Names(listing.Skills),
		Symlinks: []Symlink{},
	}
	for _, link := range listing.Symlinks {
		if f.Match(link.Name) {
			filtered.Symlinks = append(filtered.Symlinks, link)
		}
	}
	return filtered
}

// Disabled returns a copy of listing with skills filtered by name
func (f *Filter) Disabled(listing *DisabledListing) *DisabledListing {
	if f == nil || listing == nil {
		return listing
	}
	return &DisabledListing{
		Exists: listing.Exists,
		Skills: f.Names(listing.Skills),
	}
}
