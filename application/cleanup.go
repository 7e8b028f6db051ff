package application

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
)

// CleanupWorkdir removes the transient artifacts of a run: every *.zip file
// directly under dir and the project-named directory. Files with unrelated
// names are untouched.
func CleanupWorkdir(dir, projectName string) error {
	logger.Info("Removing local run artifacts...")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch {
		case !entry.IsDir() && strings.HasSuffix(entry.Name(), ".zip"):
			if err = os.Remove(path); err != nil {
				return fmt.Errorf("failed to remove %q: %w", path, err)
			}
		case entry.IsDir() && entry.Name() == projectName:
			if err = os.RemoveAll(path); err != nil {
				return fmt.Errorf("failed to remove %q: %w", path, err)
			}
		}
	}
	return nil
}
