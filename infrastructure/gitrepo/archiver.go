// Package gitrepo clones remote repositories and packages them as zip archives.
package gitrepo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repovault/domain"
	"github.com/rios0rios0/repovault/infrastructure/archive"
)

// Archiver implements domain.RepositoryArchiver with go-git. Archives are
// written into workdir as <name>.zip.
type Archiver struct {
	workdir string
}

// NewArchiver creates an archiver that writes zip files into workdir.
func NewArchiver(workdir string) *Archiver {
	return &Archiver{workdir: workdir}
}

var _ domain.RepositoryArchiver = (*Archiver)(nil)

// Archive clones the descriptor's branch into a fresh temporary directory and
// compresses the tracked content into <name>.zip. The temporary clone is
// removed before returning.
func (a *Archiver) Archive(ctx context.Context, repo domain.RepositoryDescriptor) (string, error) {
	logger.Infof("Cloning repo %s into %s.zip", repo.URL, repo.Name)

	tmp, err := os.MkdirTemp("", "repovault-clone-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary clone directory: %w", err)
	}
	defer os.RemoveAll(tmp)

	_, err = git.PlainCloneContext(ctx, tmp, false, &git.CloneOptions{
		URL:           repo.URL,
		ReferenceName: plumbing.NewBranchReferenceName(repo.Branch),
		SingleBranch:  true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to clone %q at branch %q: %w", repo.URL, repo.Branch, err)
	}

	// The archive carries only tracked content at the cloned ref.
	if err = os.RemoveAll(filepath.Join(tmp, ".git")); err != nil {
		return "", fmt.Errorf("failed to strip repository metadata: %w", err)
	}

	zipPath := filepath.Join(a.workdir, repo.Name+".zip")
	if err = archive.ZipDirectoryTo(tmp, zipPath); err != nil {
		return "", err
	}
	return zipPath, nil
}
