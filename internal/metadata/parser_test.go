package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkillFile(t *testing.T, frontmatter string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, SkillFileName)
	content := "---\n" + frontmatter + "\n---\n\n# Skill\n\nBody text.\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCurrentLayout(t *testing.T) {
	path := writeSkillFile(t, `name: react
description: React development patterns
metadata:
  version: "1.2.0"
  dependencies:
    skills:
      - javascript
      - typescript
    packages:
      react: "^18.0.0"`)

	md, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, "react", md.Name)
	assert.Equal(t, "React development patterns", md.Description)
	assert.Equal(t, "1.2.0", md.Version)
	assert.Equal(t, []string{"javascript", "typescript"}, md.Dependencies)
	assert.Equal(t, map[string]string{"react": "^18.0.0"}, md.Packages)
	assert.False(t, md.Legacy)
	assert.Empty(t, md.LegacyFields)
}

func TestParseLegacyLayout(t *testing.T) {
	path := writeSkillFile(t, `name: react
description: React development patterns
version: "1.2.0"
dependencies:
  - javascript
packages:
  react: "^18.0.0"`)

	md, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, "1.2.0", md.Version)
	assert.Equal(t, []string{"javascript"}, md.Dependencies)
	assert.True(t, md.Legacy)
	assert.ElementsMatch(t, []string{"version", "dependencies", "packages"}, md.LegacyFields)
}

func TestParseNestedWinsOverFlat(t *testing.T) {
	path := writeSkillFile(t, `name: react
description: React development patterns
version: "0.1.0"
metadata:
  version: "1.2.0"`)

	md, err := Parse(path)
	require.NoError(t, err)

	assert.Equal(t, "1.2.0", md.Version)
	assert.False(t, md.Legacy)
}

func TestParseUnquotedVersionScalar(t *testing.T) {
	// `version: 1.2` arrives from YAML as a float and must still normalize
	// to a string, not fail the decode.
	path := writeSkillFile(t, `name: react
description: React development patterns
metadata:
  version: 1.2`)

	md, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, "1.2", md.Version)
}

func TestParseErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Parse(filepath.Join(t.TempDir(), SkillFileName))
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("no frontmatter", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, SkillFileName)
		require.NoError(t, os.WriteFile(path, []byte("# Just markdown\n"), 0o644))

		_, err := Parse(path)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Reason, "no frontmatter")
	})

	t.Run("missing version", func(t *testing.T) {
		path := writeSkillFile(t, "name: react\ndescription: stuff")
		_, err := Parse(path)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Reason, "version")
	})

	t.Run("missing name", func(t *testing.T) {
		path := writeSkillFile(t, "description: stuff\nversion: \"1.0.0\"")
		_, err := Parse(path)
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})
}

func TestParseValidationErrors(t *testing.T) {
	t.Run("malformed version", func(t *testing.T) {
		path := writeSkillFile(t, `name: react
description: stuff
metadata:
  version: "not-a-version"`)

		_, err := Parse(path)
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "version", valErr.Field)
		assert.Equal(t, "not-a-version", valErr.Value)
	})

	t.Run("single component version", func(t *testing.T) {
		path := writeSkillFile(t, `name: react
description: stuff
metadata:
  version: "2"`)

		_, err := Parse(path)
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
	})

	t.Run("malformed dependency name", func(t *testing.T) {
		path := writeSkillFile(t, `name: react
description: stuff
metadata:
  version: "1.0.0"
  dependencies:
    skills:
      - Bad_Name`)

		_, err := Parse(path)
		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "dependency", valErr.Field)
	})
}

func TestFrontmatterBlockAndBody(t *testing.T) {
	content := []byte("---\nname: a\n---\n\nBody here.\n")

	block := FrontmatterBlock(content)
	assert.Equal(t, "name: a", string(block))
	assert.Equal(t, "Body here.\n", Body(content))

	t.Run("no block", func(t *testing.T) {
		plain := []byte("just text")
		assert.Nil(t, FrontmatterBlock(plain))
		assert.Equal(t, "just text", Body(plain))
	})
}
