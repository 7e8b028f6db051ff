package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/repovault/domain"
)

// DescriptorBuilder helps create test repository descriptors with a fluent interface.
type DescriptorBuilder struct {
	*testkit.BaseBuilder
	url    string
	name   string
	branch string
}

// NewDescriptorBuilder creates a new descriptor builder with sensible defaults.
func NewDescriptorBuilder() *DescriptorBuilder {
	return &DescriptorBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		url:         "https://example.com/org/repo.git",
		name:        "repo",
		branch:      "main",
	}
}

// WithURL sets the clone URL.
func (b *DescriptorBuilder) WithURL(url string) *DescriptorBuilder {
	b.url = url
	return b
}

// WithName sets the destination base name.
func (b *DescriptorBuilder) WithName(name string) *DescriptorBuilder {
	b.name = name
	return b
}

// WithBranch sets the branch name.
func (b *DescriptorBuilder) WithBranch(branch string) *DescriptorBuilder {
	b.branch = branch
	return b
}

// Build creates the descriptor (satisfies testkit.Builder interface).
func (b *DescriptorBuilder) Build() interface{} {
	return b.BuildDescriptor()
}

// BuildDescriptor creates the descriptor with a concrete return type.
func (b *DescriptorBuilder) BuildDescriptor() domain.RepositoryDescriptor {
	return domain.RepositoryDescriptor{
		URL:    b.url,
		Name:   b.name,
		Branch: b.branch,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DescriptorBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.url = "https://example.com/org/repo.git"
	b.name = "repo"
	b.branch = "main"
	return b
}

// Clone creates a deep copy of the DescriptorBuilder.
func (b *DescriptorBuilder) Clone() testkit.Builder {
	return &DescriptorBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		url:         b.url,
		name:        b.name,
		branch:      b.branch,
	}
}
