// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations — no mock frameworks.
package testdoubles

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rios0rios0/repovault/domain"
)

// ---------------------------------------------------------------------------
// SpyDocumentStore
// ---------------------------------------------------------------------------

// FileUpload records a single UploadFile invocation.
type FileUpload struct {
	FolderRef   string
	LocalPath   string
	DisplayName string
	// LocalExisted reports whether the local file existed at upload time.
	LocalExisted bool
}

// FileExport records a single ExportFile invocation.
type FileExport struct {
	FileID   string
	MimeType string
	DestPath string
}

// SpyDocumentStore implements domain.DocumentStore as a configurable spy.
// Configure Children (and error fields) for the behavior your test needs,
// then inspect the call-tracking fields. Downloads and exports materialize
// real files at the destination path so filesystem-level assertions work.
type SpyDocumentStore struct {
	// --- ListChildren ---
	Children map[string][]domain.RemoteEntry
	ListErr  error
	// spy: folder refs listed
	ListedFolders []string

	// --- ClearFolder ---
	ClearErr error
	// spy: folder refs cleared
	ClearedFolders []string

	// --- UploadFile ---
	UploadErr error
	// spy: uploads received
	Uploads []FileUpload

	// --- DownloadFile ---
	DownloadErr error
	// FileContents maps fileID -> bytes written at destPath (defaults to the id)
	FileContents map[string]string
	// spy: file ids downloaded
	Downloads []string

	// --- ExportFile ---
	ExportErr error
	// spy: exports received
	Exports []FileExport

	// spy: every operation in invocation order, e.g. "clear:code", "upload:x"
	Calls []string
}

var _ domain.DocumentStore = (*SpyDocumentStore)(nil)

func (s *SpyDocumentStore) ListChildren(
	_ context.Context,
	folderRef string,
) ([]domain.RemoteEntry, error) {
	s.ListedFolders = append(s.ListedFolders, folderRef)
	s.Calls = append(s.Calls, "list:"+folderRef)
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	return s.Children[folderRef], nil
}

func (s *SpyDocumentStore) ClearFolder(_ context.Context, folderRef string) error {
	s.ClearedFolders = append(s.ClearedFolders, folderRef)
	s.Calls = append(s.Calls, "clear:"+folderRef)
	return s.ClearErr
}

func (s *SpyDocumentStore) UploadFile(
	_ context.Context,
	folderRef, localPath, displayName string,
) (string, error) {
	_, statErr := os.Stat(localPath)
	s.Uploads = append(s.Uploads, FileUpload{
		FolderRef:    folderRef,
		LocalPath:    localPath,
		DisplayName:  displayName,
		LocalExisted: statErr == nil,
	})
	s.Calls = append(s.Calls, "upload:"+displayName)
	if s.UploadErr != nil {
		return "", s.UploadErr
	}
	return fmt.Sprintf("remote-%d", len(s.Uploads)), nil
}

func (s *SpyDocumentStore) DownloadFile(_ context.Context, fileID, destPath string) error {
	s.Downloads = append(s.Downloads, fileID)
	s.Calls = append(s.Calls, "download:"+fileID)
	if s.DownloadErr != nil {
		return s.DownloadErr
	}
	return s.materialize(fileID, destPath)
}

func (s *SpyDocumentStore) ExportFile(
	_ context.Context,
	fileID, exportMimeType, destPath string,
) error {
	s.Exports = append(s.Exports, FileExport{
		FileID:   fileID,
		MimeType: exportMimeType,
		DestPath: destPath,
	})
	s.Calls = append(s.Calls, "export:"+fileID)
	if s.ExportErr != nil {
		return s.ExportErr
	}
	return s.materialize(fileID, destPath)
}

func (s *SpyDocumentStore) materialize(fileID, destPath string) error {
	content := fileID
	if s.FileContents != nil {
		if c, ok := s.FileContents[fileID]; ok {
			content = c
		}
	}
	return os.WriteFile(destPath, []byte(content), 0o600)
}

// ---------------------------------------------------------------------------
// SpyObjectStore
// ---------------------------------------------------------------------------

// ObjectUpload records a single object-store Upload invocation.
type ObjectUpload struct {
	LocalPath string
	Key       string
	// LocalExisted reports whether the local file existed at upload time.
	LocalExisted bool
}

// SpyObjectStore implements domain.ObjectStore as a configurable spy.
type SpyObjectStore struct {
	UploadErr error
	// spy: uploads received
	Uploads []ObjectUpload
}

var _ domain.ObjectStore = (*SpyObjectStore)(nil)

func (s *SpyObjectStore) Upload(_ context.Context, localPath, key string) error {
	_, statErr := os.Stat(localPath)
	s.Uploads = append(s.Uploads, ObjectUpload{
		LocalPath:    localPath,
		Key:          key,
		LocalExisted: statErr == nil,
	})
	return s.UploadErr
}

// ---------------------------------------------------------------------------
// StubArchiver
// ---------------------------------------------------------------------------

// StubArchiver implements domain.RepositoryArchiver by writing a placeholder
// zip file into Workdir, mimicking the real archiver's filesystem contract.
type StubArchiver struct {
	Workdir string
	// FailOn aborts with an error when a descriptor with this name is archived.
	FailOn string
	// spy: descriptors archived
	Archived []domain.RepositoryDescriptor
}

var _ domain.RepositoryArchiver = (*StubArchiver)(nil)

func (a *StubArchiver) Archive(
	_ context.Context,
	repo domain.RepositoryDescriptor,
) (string, error) {
	a.Archived = append(a.Archived, repo)
	if a.FailOn != "" && repo.Name == a.FailOn {
		return "", fmt.Errorf("clone of %q failed", repo.URL)
	}

	zipPath := filepath.Join(a.Workdir, repo.Name+".zip")
	if err := os.WriteFile(zipPath, []byte("zip:"+repo.Name), 0o600); err != nil {
		return "", err
	}
	return zipPath, nil
}
