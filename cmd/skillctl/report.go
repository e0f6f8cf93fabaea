package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jingkaihe/skillctl/pkg/presenter"
	"github.com/jingkaihe/skillctl/pkg/skills"
)

// reportedError marks an error the command has already shown to the user
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

func isReported(err error) bool {
	var re *reportedError
	return errors.As(err, &re)
}

// skillNameArg requires exactly one skill name
func skillNameArg(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return errors.Errorf("missing skill name, usage: %s", cmd.UseLine())
	case 1:
		return nil
	default:
		return errors.Errorf("expected a single skill name, got %d arguments", len(args))
	}
}

// reportSkillError prints a failed enable or disable of name
func reportSkillError(p presenter.Presenter, op, name string, err error) {
	switch {
	case errors.Is(err, skills.ErrInvalidName):
		p.Failure(fmt.Sprintf("Invalid skill name: %v", err))
	case errors.Is(err, skills.ErrNotFound) && op == "enable":
		p.Failure(fmt.Sprintf("Skill '%s' not found in %s/", name, skills.DisabledDirName))
	case errors.Is(err, skills.ErrNotFound):
		p.Failure(fmt.Sprintf("Skill '%s' not found", name))
	case errors.Is(err, skills.ErrAlreadyActive):
		p.Failure(fmt.Sprintf("Skill '%s' is already active", name))
	case errors.Is(err, skills.ErrAlreadyDisabled):
		p.Failure(fmt.Sprintf("Skill '%s' is already disabled", name))
	case errors.Is(err, skills.ErrProtectedEntry):
		p.Failure(fmt.Sprintf("Cannot disable system directory: %s", name))
	case errors.Is(err, skills.ErrUnsupportedEntryType):
		p.Failure(fmt.Sprintf("Cannot disable symlink: %s", name))
		p.Hint("(Remove the symlink manually if needed)")
	default:
		p.Error(err, fmt.Sprintf("Failed to %s skill '%s'", op, name))
	}
}
