package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repovault/domain"
)

// Synchronizer mirrors a remote folder tree into a local directory tree.
// Existing local files are never overwritten, so a rerun after a partial
// pass completes only the missing pieces.
type Synchronizer struct {
	store domain.DocumentStore
}

// NewSynchronizer creates a synchronizer backed by the given document store.
func NewSynchronizer(store domain.DocumentStore) *Synchronizer {
	return &Synchronizer{store: store}
}

// Sync mirrors the remote folder into <location>/<folderName>/, recursively.
// Siblings are processed in ascending name order regardless of the order the
// store returns them, keeping runs deterministic.
func (s *Synchronizer) Sync(ctx context.Context, folderRef, location, folderName string) error {
	target := filepath.Join(location, folderName)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("failed to create %q: %w", target, err)
	}

	entries, err := s.store.ListChildren(ctx, folderRef)
	if err != nil {
		return fmt.Errorf("failed to list folder %q: %w", folderRef, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	total := len(entries)
	for i, entry := range entries {
		logger.Infof("%s %s %s (%d/%d)", entry.ID, entry.Name, entry.MimeType, i+1, total)

		switch {
		case entry.MimeType == domain.MimeTypeFolder:
			if err = s.Sync(ctx, entry.ID, target, entry.Name); err != nil {
				return err
			}

		case domain.IsNativeDocument(entry.MimeType):
			if err = s.exportEntry(ctx, entry, target); err != nil {
				return err
			}

		default:
			dest := filepath.Join(target, entry.Name)
			if localFileExists(dest) {
				continue
			}
			if err = s.store.DownloadFile(ctx, entry.ID, dest); err != nil {
				return fmt.Errorf("failed to download %q: %w", entry.Name, err)
			}
		}
	}
	return nil
}

// exportEntry downloads a native document in its exported format. The local
// name carries the export format's extension, and the skip-if-exists check
// uses that final name.
func (s *Synchronizer) exportEntry(ctx context.Context, entry domain.RemoteEntry, target string) error {
	format, err := domain.ExportFormatFor(entry.MimeType)
	if err != nil {
		return fmt.Errorf("cannot synchronize %q: %w", entry.Name, err)
	}

	dest := filepath.Join(target, entry.Name+format.Extension)
	if localFileExists(dest) {
		return nil
	}
	if err = s.store.ExportFile(ctx, entry.ID, format.MimeType, dest); err != nil {
		return fmt.Errorf("failed to export %q: %w", entry.Name, err)
	}
	return nil
}

func localFileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
