package domain

import "context"

// DocumentStore abstracts the remote document service (Google Drive).
// Implementations handle authentication, folder listing, and file transfer;
// all operations are scoped by opaque folder/file identifiers.
type DocumentStore interface {
	// ListChildren lists the immediate children of a folder, unfiltered by
	// type, following pagination to completion.
	ListChildren(ctx context.Context, folderRef string) ([]RemoteEntry, error)

	// ClearFolder deletes every direct child of a folder (non-recursive).
	ClearFolder(ctx context.Context, folderRef string) error

	// UploadFile uploads a local file as a new entry under the folder and
	// returns the new entry's identifier.
	UploadFile(ctx context.Context, folderRef, localPath, displayName string) (string, error)

	// DownloadFile streams a remote file to destPath in chunks. On any chunk
	// failure the partial destination file is removed before returning.
	DownloadFile(ctx context.Context, fileID, destPath string) error

	// ExportFile streams an exported copy of a native document to destPath,
	// converted to exportMimeType. Partial files are removed on failure.
	ExportFile(ctx context.Context, fileID, exportMimeType, destPath string) error
}

// ObjectStore abstracts the object-storage service (S3).
type ObjectStore interface {
	// Upload stores the local file as an object under key.
	Upload(ctx context.Context, localPath, key string) error
}

// RepositoryArchiver clones a repository at a branch and packages its tracked
// content as a zip archive.
type RepositoryArchiver interface {
	// Archive returns the path of the produced zip file.
	Archive(ctx context.Context, repo RepositoryDescriptor) (string, error)
}
