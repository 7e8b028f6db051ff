package domain

// RepositoryDescriptor identifies one git repository to back up.
type RepositoryDescriptor struct {
	URL    string `yaml:"url"`
	Name   string `yaml:"name"`
	Branch string `yaml:"branch"`
}

// RemoteEntry is a single child returned when listing a document-store folder.
// MimeType discriminates plain files, native documents requiring export, and
// sub-folders.
type RemoteEntry struct {
	ID       string
	Name     string
	MimeType string
}
