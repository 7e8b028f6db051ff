package domain

import (
	"fmt"
	"time"
)

// archiveTimestampLayout yields YYYYMMDDHHMMSS, which sorts chronologically
// as a plain string.
const archiveTimestampLayout = "20060102150405"

// CodeArchiveName builds the display name for a code archive uploaded to the
// document store: code_v<timestamp><repoName>.zip.
func CodeArchiveName(repoName string, t time.Time) string {
	return fmt.Sprintf("code_v%s%s.zip", t.Format(archiveTimestampLayout), repoName)
}

// DocArchiveName builds the object-storage key for the documentation archive:
// doc_v<timestamp>_<project>.zip.
func DocArchiveName(project string, t time.Time) string {
	return fmt.Sprintf("doc_v%s_%s.zip", t.Format(archiveTimestampLayout), project)
}
