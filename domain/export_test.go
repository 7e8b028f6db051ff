package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repovault/domain"
)

func TestIsNativeDocument(t *testing.T) {
	t.Parallel()

	t.Run("should recognize the exportable native types", func(t *testing.T) {
		t.Parallel()

		// given
		mimeTypes := []string{
			domain.MimeTypeDocument,
			domain.MimeTypeSpreadsheet,
			domain.MimeTypeDrawing,
			domain.MimeTypePresentation,
		}

		// when / then
		for _, m := range mimeTypes {
			assert.True(t, domain.IsNativeDocument(m), m)
		}
	})

	t.Run("should not treat folders as native documents", func(t *testing.T) {
		t.Parallel()

		// given
		mimeType := domain.MimeTypeFolder

		// when
		result := domain.IsNativeDocument(mimeType)

		// then
		assert.False(t, result)
	})

	t.Run("should not treat plain files as native documents", func(t *testing.T) {
		t.Parallel()

		// given
		mimeType := "text/plain"

		// when
		result := domain.IsNativeDocument(mimeType)

		// then
		assert.False(t, result)
	})
}

func TestExportFormatFor(t *testing.T) {
	t.Parallel()

	t.Run("should map each native type to its export format", func(t *testing.T) {
		t.Parallel()

		// given
		expected := map[string]domain.ExportFormat{
			domain.MimeTypeDocument: {
				MimeType:  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
				Extension: ".docx",
			},
			domain.MimeTypeSpreadsheet: {
				MimeType:  "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
				Extension: ".xlsx",
			},
			domain.MimeTypeDrawing: {
				MimeType:  "image/jpeg",
				Extension: ".jpg",
			},
			domain.MimeTypePresentation: {
				MimeType:  "application/vnd.openxmlformats-officedocument.presentationml.presentation",
				Extension: ".pptx",
			},
		}

		for mimeType, want := range expected {
			// when
			format, err := domain.ExportFormatFor(mimeType)

			// then
			require.NoError(t, err, mimeType)
			assert.Equal(t, want, format, mimeType)
		}
	})

	t.Run("should fail fast on an unmapped native type", func(t *testing.T) {
		t.Parallel()

		// given
		mimeType := "application/vnd.google-apps.form"

		// when
		_, err := domain.ExportFormatFor(mimeType)

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnsupportedExport)
		assert.Contains(t, err.Error(), mimeType)
	})
}
