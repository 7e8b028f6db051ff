package application

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repovault/config"
	"github.com/rios0rios0/repovault/domain"
	"github.com/rios0rios0/repovault/infrastructure/archive"
)

// BackupService orchestrates the full backup pipeline:
// clear the code folder -> archive and upload each repository ->
// mirror the doc folder -> zip it -> ship to object storage -> cleanup.
//
// Everything runs sequentially; the first failure aborts the run.
type BackupService struct {
	cfg          *config.Config
	store        domain.DocumentStore
	objects      domain.ObjectStore
	archiver     domain.RepositoryArchiver
	synchronizer *Synchronizer
	workdir      string
}

// NewBackupService creates the pipeline driver. Transient artifacts (zip
// files and the mirrored doc tree) are placed in workdir.
func NewBackupService(
	cfg *config.Config,
	store domain.DocumentStore,
	objects domain.ObjectStore,
	archiver domain.RepositoryArchiver,
	workdir string,
) *BackupService {
	return &BackupService{
		cfg:          cfg,
		store:        store,
		objects:      objects,
		archiver:     archiver,
		synchronizer: NewSynchronizer(store),
		workdir:      workdir,
	}
}

// Run executes one full backup pass for the given repository descriptors,
// in list order.
func (s *BackupService) Run(ctx context.Context, repos []domain.RepositoryDescriptor) error {
	if err := s.store.ClearFolder(ctx, s.cfg.CodeFolderID); err != nil {
		return fmt.Errorf("failed to clear the code folder: %w", err)
	}

	for _, repo := range repos {
		if err := s.backupRepository(ctx, repo); err != nil {
			return err
		}
	}

	if err := s.backupDocs(ctx); err != nil {
		return err
	}

	if err := CleanupWorkdir(s.workdir, s.cfg.ProjectName); err != nil {
		return err
	}

	logger.Infof("Run complete: %d repositories archived, doc tree shipped", len(repos))
	return nil
}

// backupRepository archives one repository and uploads it to the code folder
// under a timestamped name.
func (s *BackupService) backupRepository(ctx context.Context, repo domain.RepositoryDescriptor) error {
	zipPath, err := s.archiver.Archive(ctx, repo)
	if err != nil {
		return fmt.Errorf("failed to archive repository %q: %w", repo.Name, err)
	}

	name := domain.CodeArchiveName(repo.Name, time.Now())
	if _, err = s.store.UploadFile(ctx, s.cfg.CodeFolderID, zipPath, name); err != nil {
		return fmt.Errorf("failed to upload %q: %w", name, err)
	}
	return nil
}

// backupDocs mirrors the doc folder tree locally, compresses it, and uploads
// the archive to object storage under a timestamped key.
func (s *BackupService) backupDocs(ctx context.Context) error {
	if err := s.synchronizer.Sync(ctx, s.cfg.DocFolderID, s.workdir, s.cfg.ProjectName); err != nil {
		return fmt.Errorf("failed to synchronize the doc folder: %w", err)
	}

	zipPath, err := archive.ZipDirectory(filepath.Join(s.workdir, s.cfg.ProjectName))
	if err != nil {
		return err
	}

	key := domain.DocArchiveName(s.cfg.ProjectName, time.Now())
	if err = s.objects.Upload(ctx, zipPath, key); err != nil {
		return fmt.Errorf("failed to ship %q to object storage: %w", key, err)
	}
	return nil
}
