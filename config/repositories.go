package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/repovault/domain"
)

// defaultBranch is assumed when a descriptor does not name a branch.
const defaultBranch = "master"

// LoadRepositories reads the repository descriptor file: a YAML list of
// {url, name, branch} entries, read once at startup.
func LoadRepositories(path string) ([]domain.RepositoryDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read repository file %q: %w", path, err)
	}

	var repos []domain.RepositoryDescriptor
	if unmarshalErr := yaml.Unmarshal(data, &repos); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse repository file: %w", unmarshalErr)
	}

	if len(repos) == 0 {
		return nil, errors.New("repository file must list at least one repository")
	}

	for i := range repos {
		if repos[i].URL == "" {
			return nil, fmt.Errorf("repositories[%d].url is required", i)
		}
		if repos[i].Name == "" {
			return nil, fmt.Errorf("repositories[%d].name is required", i)
		}
		if repos[i].Branch == "" {
			repos[i].Branch = defaultBranch
		}
	}

	return repos, nil
}
