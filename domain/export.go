package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Google Drive mime types relevant to synchronization.
const (
	MimeTypeFolder       = "application/vnd.google-apps.folder"
	MimeTypeDocument     = "application/vnd.google-apps.document"
	MimeTypeSpreadsheet  = "application/vnd.google-apps.spreadsheet"
	MimeTypeDrawing      = "application/vnd.google-apps.drawing"
	MimeTypePresentation = "application/vnd.google-apps.presentation"

	nativeMimePrefix = "application/vnd.google-apps."
)

// ErrUnsupportedExport is returned when a native document type has no export
// mapping. Unmapped types abort the run instead of producing an invalid
// export request.
var ErrUnsupportedExport = errors.New("unsupported native document type for export")

// ExportFormat describes how a native document type is materialized on disk.
type ExportFormat struct {
	MimeType  string
	Extension string
}

// exportFormats is the fixed mapping from native document types to their
// exported representation. Not configurable.
var exportFormats = map[string]ExportFormat{
	MimeTypeDocument: {
		MimeType:  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Extension: ".docx",
	},
	MimeTypeSpreadsheet: {
		MimeType:  "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Extension: ".xlsx",
	},
	MimeTypeDrawing: {
		MimeType:  "image/jpeg",
		Extension: ".jpg",
	},
	MimeTypePresentation: {
		MimeType:  "application/vnd.openxmlformats-officedocument.presentationml.presentation",
		Extension: ".pptx",
	},
}

// IsNativeDocument reports whether the mime type is a document-store native
// type (one with no direct byte representation). Folders are not documents.
func IsNativeDocument(mimeType string) bool {
	return strings.HasPrefix(mimeType, nativeMimePrefix) && mimeType != MimeTypeFolder
}

// ExportFormatFor resolves the export format for a native document type.
// It fails with ErrUnsupportedExport for native types outside the fixed
// mapping (e.g. forms), which have no meaningful file representation.
func ExportFormatFor(mimeType string) (ExportFormat, error) {
	format, ok := exportFormats[mimeType]
	if !ok {
		return ExportFormat{}, fmt.Errorf("%w: %s", ErrUnsupportedExport, mimeType)
	}
	return format, nil
}
