package cli

import (
	"os"

	"github.com/pkg/errors"

	"github.com/skilldock/skilldock/internal/config"
	"github.com/skilldock/skilldock/internal/source"
)

// buildSource constructs the skill source for the current invocation.
//
// Resolution order:
//  1. --source flag
//  2. skills_root config key (local tree)
//  3. cached catalog checkout (~/.skilldock/catalog-repo)
func buildSource() (source.Source, error) {
	if sourceFlag != "" {
		if info, err := os.Stat(sourceFlag); err != nil || !info.IsDir() {
			return nil, errors.Errorf("source root %q is not a directory", sourceFlag)
		}
		return source.NewLocal(sourceFlag), nil
	}

	if root := config.SkillsRoot(); root != "" {
		if info, err := os.Stat(root); err == nil && info.IsDir() {
			return source.NewLocal(root), nil
		}
		return nil, errors.Errorf("configured skills_root %q is not a directory", config.SkillsRoot())
	}

	repoDir := config.CatalogRepoDir()
	if info, err := os.Stat(repoDir); err == nil && info.IsDir() {
		return source.NewCatalog(repoDir), nil
	}

	return nil, errors.New("no skill source found: set skills_root or run 'skilldock catalog update'")
}
