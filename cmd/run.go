package cmd

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repovault/config"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full backup pipeline",
	Long: `Clear the Drive code folder, archive and upload every repository
listed in the descriptor file, mirror the doc folder tree locally,
zip it, upload the zip to S3, and remove the local artifacts.

One fixed pipeline per invocation: no retries, no checkpointing,
no parallel execution. A failure aborts the run with a non-zero exit.`,
	RunE: runBackup,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(runCmd)
}

func runBackup(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	repos, err := config.LoadRepositories(reposPath)
	if err != nil {
		return fmt.Errorf("failed to load repository descriptors: %w", err)
	}
	logger.Infof("Loaded %d repository descriptors from %s", len(repos), reposPath)

	svc, err := buildService(ctx)
	if err != nil {
		return err
	}

	logger.Info("Starting backup run...")
	return svc.Run(ctx, repos)
}
