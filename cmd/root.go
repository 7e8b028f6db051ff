package cmd

import (
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	reposPath string
	verbose   bool
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rootCmd = &cobra.Command{
	Use:   "repovault",
	Short: "Repository and documentation backup pipeline for Google Drive and S3",
	Long: `A batch job that archives a list of git repositories into a Google Drive
code folder, mirrors a Drive documentation folder tree to local disk,
compresses it, and ships the result to an S3 bucket.

Intended to run on demand or from a cronjob. The only interactive step is
the first Google Drive authorization; cached credentials are refreshed and
reused on subsequent invocations.`,
}

func Execute() error {
	return rootCmd.Execute()
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&reposPath, "repos", "r", "repositories.yaml",
		"Path to the repository descriptor file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false,
		"Enable verbose output",
	)
}
