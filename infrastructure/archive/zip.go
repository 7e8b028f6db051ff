// Package archive compresses local directories into zip files.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ZipDirectory compresses dir recursively into "<dir>.zip" next to it,
// preserving the internal structure (entries are relative to dir, no
// top-level folder). It returns the path of the produced zip.
func ZipDirectory(dir string) (string, error) {
	zipPath := filepath.Clean(dir) + ".zip"
	if err := ZipDirectoryTo(dir, zipPath); err != nil {
		return "", err
	}
	return zipPath, nil
}

// ZipDirectoryTo compresses dir recursively into the zip file at zipPath.
// On failure the partial zip file is removed.
func ZipDirectoryTo(dir, zipPath string) error {
	out, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", zipPath, err)
	}

	if zipErr := writeDirEntries(out, dir); zipErr != nil {
		out.Close()
		os.Remove(zipPath)
		return zipErr
	}

	if closeErr := out.Close(); closeErr != nil {
		os.Remove(zipPath)
		return fmt.Errorf("failed to finish %q: %w", zipPath, closeErr)
	}
	return nil
}

func writeDirEntries(out io.Writer, dir string) error {
	w := zip.NewWriter(out)

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			return relErr
		}
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			_, dirErr := w.Create(filepath.ToSlash(rel) + "/")
			return dirErr
		}

		src, openErr := os.Open(path)
		if openErr != nil {
			return openErr
		}
		defer src.Close()

		dst, createErr := w.Create(filepath.ToSlash(rel))
		if createErr != nil {
			return createErr
		}
		_, copyErr := io.Copy(dst, src)
		return copyErr
	})
	if walkErr != nil {
		w.Close()
		return fmt.Errorf("failed to compress %q: %w", dir, walkErr)
	}

	if closeErr := w.Close(); closeErr != nil {
		return fmt.Errorf("failed to compress %q: %w", dir, closeErr)
	}
	return nil
}
