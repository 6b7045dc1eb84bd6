package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skilldock/skilldock/internal/metadata"
)

func writeSkill(t *testing.T, root, name, frontmatter string) {
	t.Helper()
	dir := filepath.Join(root, "skills", name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := "---\n" + frontmatter + "\n---\n\n# " + name + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, metadata.SkillFileName), []byte(content), 0o644))
}

func validFrontmatter(name string) string {
	return "name: " + name + "\ndescription: Test skill\nmetadata:\n  version: \"1.0.0\""
}

func TestLocalSource(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "react", validFrontmatter("react"))
	writeSkill(t, root, "javascript", validFrontmatter("javascript"))

	src := NewLocal(root)

	assert.True(t, src.Exists("react"))
	assert.False(t, src.Exists("ghost"))
	assert.Equal(t, filepath.Join(root, "skills", "react"), src.SkillPath("react"))

	md, err := src.SkillMetadata("react")
	require.NoError(t, err)
	assert.Equal(t, "react", md.Name)
	assert.Equal(t, "1.0.0", md.Version)

	_, err = src.SkillMetadata("ghost")
	assert.Error(t, err)
}

func TestListSkillsFiltersInvalidMetadata(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "good", validFrontmatter("good"))
	writeSkill(t, root, "broken", "name: broken") // missing description/version

	// A directory without a metadata file is not a skill.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "skills", "empty"), 0o755))

	src := NewLocal(root)
	names, err := src.ListSkills()
	require.NoError(t, err)
	assert.Equal(t, []string{"good"}, names)
}

func TestListSkillsMissingTree(t *testing.T) {
	src := NewLocal(t.TempDir())
	names, err := src.ListSkills()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestCatalogBehavesLikeLocal(t *testing.T) {
	// The two implementations must be indistinguishable from the
	// resolver's point of view over the same tree.
	root := t.TempDir()
	writeSkill(t, root, "react", validFrontmatter("react"))

	local := NewLocal(root)
	cached := NewCatalog(root)

	assert.Equal(t, local.Exists("react"), cached.Exists("react"))
	assert.Equal(t, local.SkillPath("react"), cached.SkillPath("react"))

	localNames, err := local.ListSkills()
	require.NoError(t, err)
	cachedNames, err := cached.ListSkills()
	require.NoError(t, err)
	assert.Equal(t, localNames, cachedNames)
}
