package git

import (
	"os"
	"path/filepath"

	"github.com/penwyp/gtl/internal/errors"
)

// WorkingDir returns the canonical absolute path of the current directory,
// the key remotes are looked up by.
func WorkingDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(errors.ErrTypeExec, "unable to determine current directory", err)
	}
	return Canonical(wd)
}

// Canonical resolves path to an absolute path with symlinks evaluated.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrTypeExec, "unable to resolve "+path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.Wrap(errors.ErrTypeExec, "unable to resolve "+abs, err)
	}
	return resolved, nil
}
