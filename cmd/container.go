package cmd

import (
	"context"
	"fmt"

	"go.uber.org/dig"

	"github.com/rios0rios0/repovault/application"
	"github.com/rios0rios0/repovault/config"
	"github.com/rios0rios0/repovault/domain"
	"github.com/rios0rios0/repovault/infrastructure/drive"
	"github.com/rios0rios0/repovault/infrastructure/gitrepo"
	"github.com/rios0rios0/repovault/infrastructure/objstore"
)

const (
	// clientSecretPath is the local client-secret descriptor consumed only
	// during the interactive authorization flow.
	clientSecretPath = "credentials.json"

	// tokenCachePath persists credentials between runs.
	tokenCachePath = "token.json"

	// workdir is where transient artifacts (zip files, the mirrored doc
	// tree) live during a run.
	workdir = "."
)

// buildService wires the object graph for one pipeline run.
func buildService(ctx context.Context) (*application.BackupService, error) {
	container := dig.New()

	providers := []interface{}{
		config.Load,
		func() drive.TokenStore { return drive.NewFileTokenStore(tokenCachePath) },
		func(tokens drive.TokenStore) (domain.DocumentStore, error) {
			return drive.NewClient(ctx, clientSecretPath, tokens)
		},
		func(cfg *config.Config) (domain.ObjectStore, error) {
			return objstore.NewUploader(ctx, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Region, cfg.S3Bucket)
		},
		func() domain.RepositoryArchiver { return gitrepo.NewArchiver(workdir) },
		func(
			cfg *config.Config,
			store domain.DocumentStore,
			objects domain.ObjectStore,
			archiver domain.RepositoryArchiver,
		) *application.BackupService {
			return application.NewBackupService(cfg, store, objects, archiver, workdir)
		},
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, fmt.Errorf("failed to register providers: %w", err)
		}
	}

	var svc *application.BackupService
	if err := container.Invoke(func(s *application.BackupService) { svc = s }); err != nil {
		return nil, fmt.Errorf("failed to build the pipeline: %w", err)
	}
	return svc, nil
}
