// Package drive implements the document store against the Google Drive v3 API.
package drive

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/rios0rios0/repovault/domain"
)

const (
	// listPageSize bounds one listing page; pagination is followed to
	// completion regardless.
	listPageSize = 1000

	zipMimeType = "application/zip"
)

// ProgressFunc receives the fractional progress of a chunked transfer,
// called once per chunk.
type ProgressFunc func(fraction float64)

// Client implements domain.DocumentStore.
type Client struct {
	service  *drive.Service
	progress ProgressFunc
}

var _ domain.DocumentStore = (*Client)(nil)

// NewClient authenticates against Google Drive and returns a ready client.
// Credentials come from the token store when cached and still usable;
// otherwise the interactive authorization flow runs and its result is
// persisted for subsequent invocations.
func NewClient(ctx context.Context, secretsPath string, tokens TokenStore) (*Client, error) {
	logger.Info("Connecting to Google Drive...")

	cfg, err := oauthConfigFromFile(secretsPath)
	if err != nil {
		return nil, err
	}

	token, err := loadOrAuthorize(ctx, cfg, tokens)
	if err != nil {
		return nil, err
	}

	service, err := drive.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return &Client{service: service, progress: printProgress}, nil
}

// ListChildren lists the immediate children of a folder, following
// pagination until the store reports no continuation token.
func (c *Client) ListChildren(ctx context.Context, folderRef string) ([]domain.RemoteEntry, error) {
	var entries []domain.RemoteEntry
	pageToken := ""

	for {
		call := c.service.Files.List().
			Q(fmt.Sprintf("'%s' in parents", folderRef)).
			PageSize(listPageSize).
			Fields("nextPageToken, files(id, name, mimeType)").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list folder %q: %w", folderRef, err)
		}

		for _, f := range page.Files {
			entries = append(entries, domain.RemoteEntry{
				ID:       f.Id,
				Name:     f.Name,
				MimeType: f.MimeType,
			})
		}

		if page.NextPageToken == "" {
			return entries, nil
		}
		pageToken = page.NextPageToken
	}
}

// ClearFolder deletes every direct child of a folder (non-recursive).
func (c *Client) ClearFolder(ctx context.Context, folderRef string) error {
	logger.Info("Cleaning up the folder...")

	entries, err := c.ListChildren(ctx, folderRef)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err = c.service.Files.Delete(entry.ID).Context(ctx).Do(); err != nil {
			return fmt.Errorf("failed to delete %q: %w", entry.Name, err)
		}
	}
	return nil
}

// UploadFile uploads a local file under the folder using resumable transfer
// semantics and returns the new entry's identifier.
func (c *Client) UploadFile(
	ctx context.Context,
	folderRef, localPath, displayName string,
) (string, error) {
	logger.Infof("Uploading file %s...", localPath)

	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open %q: %w", localPath, err)
	}
	defer file.Close()

	metadata := &drive.File{
		Name:     displayName,
		MimeType: zipMimeType,
		Parents:  []string{folderRef},
	}

	created, err := c.service.Files.Create(metadata).
		Media(file, googleapi.ContentType(zipMimeType)).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload %q: %w", displayName, err)
	}

	logger.Infof("%s uploaded with success. File ID: %s", displayName, created.Id)
	return created.Id, nil
}

// DownloadFile streams a remote file to destPath in chunks.
func (c *Client) DownloadFile(ctx context.Context, fileID, destPath string) error {
	resp, err := c.service.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return fmt.Errorf("failed to start download of %s: %w", fileID, err)
	}
	return c.writeChunks(resp, destPath)
}

// ExportFile streams an exported, converted copy of a native document to
// destPath in chunks.
func (c *Client) ExportFile(ctx context.Context, fileID, exportMimeType, destPath string) error {
	resp, err := c.service.Files.Export(fileID, exportMimeType).Context(ctx).Download()
	if err != nil {
		return fmt.Errorf("failed to start export of %s: %w", fileID, err)
	}
	return c.writeChunks(resp, destPath)
}

func printProgress(fraction float64) {
	fmt.Fprintf(os.Stdout, "\rDownload %d%%.", int(fraction*100))
}
