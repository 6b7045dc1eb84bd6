// Package source abstracts where skills come from. A Source answers four
// read-only queries over a directory of skills; the resolver and installer
// never mutate a source tree. The local tree and the cached catalog checkout
// are interchangeable implementations.
package source

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/skilldock/skilldock/internal/metadata"
)

// Source exposes read-only queries over a tree of skills.
type Source interface {
	// Exists reports whether the named skill is present with a metadata file.
	Exists(name string) bool

	// SkillPath returns the canonical directory of the named skill. The path
	// is computed, not probed; use Exists to check presence.
	SkillPath(name string) string

	// ListSkills returns the names of all skills whose metadata parses,
	// sorted for deterministic output.
	ListSkills() ([]string, error)

	// SkillMetadata parses the named skill's frontmatter.
	SkillMetadata(name string) (*metadata.SkillMetadata, error)
}

// skillTree implements the four queries over a root directory containing a
// skills/ subtree. Both concrete sources embed it.
type skillTree struct {
	root string
}

func (t skillTree) SkillPath(name string) string {
	return filepath.Join(t.root, "skills", name)
}

func (t skillTree) skillFile(name string) string {
	return filepath.Join(t.SkillPath(name), metadata.SkillFileName)
}

func (t skillTree) Exists(name string) bool {
	info, err := os.Stat(t.skillFile(name))
	return err == nil && info.Mode().IsRegular()
}

func (t skillTree) ListSkills() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(t.root, "skills"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		// Only entries with a parseable metadata file count as skills.
		if _, err := metadata.Parse(t.skillFile(entry.Name())); err != nil {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (t skillTree) SkillMetadata(name string) (*metadata.SkillMetadata, error) {
	return metadata.Parse(t.skillFile(name))
}

// Local is a Source rooted at a local skills directory.
type Local struct {
	skillTree
}

// NewLocal returns a Source over <root>/skills/.
func NewLocal(root string) *Local {
	return &Local{skillTree{root: root}}
}

// Catalog is a Source rooted at the cached checkout of a remote skills
// repository. From the resolver's point of view it behaves identically to
// Local; freshness of the checkout is the catalog package's concern.
type Catalog struct {
	skillTree
}

// NewCatalog returns a Source over <repoDir>/skills/.
func NewCatalog(repoDir string) *Catalog {
	return &Catalog{skillTree{root: repoDir}}
}
