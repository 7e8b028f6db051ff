package drive

import (
	"fmt"
	"io"
	"net/http"
	"os"
)

// downloadChunkSize bounds the buffer used per chunk of a download.
const downloadChunkSize = 8 * 1024 * 1024

// TransferError marks a chunked transfer that failed partway. The partial
// destination file has already been removed; the pipeline treats this as
// fatal and aborts without retrying.
type TransferError struct {
	Path string
	Err  error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer to %s failed: %v", e.Path, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// writeChunks copies the response body to destPath in bounded chunks,
// reporting fractional progress after each one. On any failure the partial
// file is removed, so the destination is either complete or absent.
func (c *Client) writeChunks(resp *http.Response, destPath string) error {
	defer resp.Body.Close()

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", destPath, err)
	}

	abort := func(cause error) error {
		out.Close()
		os.Remove(destPath)
		return &TransferError{Path: destPath, Err: cause}
	}

	total := resp.ContentLength
	var written int64
	buf := make([]byte, downloadChunkSize)

	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				return abort(writeErr)
			}
			written += int64(n)
			if total > 0 && c.progress != nil {
				c.progress(float64(written) / float64(total))
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return abort(readErr)
		}
	}

	if closeErr := out.Close(); closeErr != nil {
		os.Remove(destPath)
		return &TransferError{Path: destPath, Err: closeErr}
	}

	fmt.Println()
	return nil
}
