package metadata

import (
	"bytes"
	"os"
	"regexp"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"

	"github.com/skilldock/skilldock/internal/logger"
)

var (
	// versionPattern accepts two- or three-component numeric versions.
	versionPattern = regexp.MustCompile(`^[0-9]+\.[0-9]+(\.[0-9]+)?$`)

	// namePattern accepts lowercase-with-hyphens skill names.
	namePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Parse reads a skill file and returns its normalized metadata. It fails
// with *ParseError when the file is missing or has no frontmatter block, and
// with *ValidationError when a version string or dependency name is
// malformed.
func Parse(path string) (*SkillMetadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Reason: "reading skill file", Err: err}
	}

	fields, err := extractFrontmatter(content)
	if err != nil {
		return nil, &ParseError{Path: path, Reason: "extracting frontmatter", Err: err}
	}
	if fields == nil {
		return nil, &ParseError{Path: path, Reason: "no frontmatter block found"}
	}

	var raw rawFrontmatter
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &raw,
		WeaklyTypedInput: true, // YAML scalars like `version: 1.2` arrive as floats
	})
	if err != nil {
		return nil, errors.Wrap(err, "building frontmatter decoder")
	}
	if err := decoder.Decode(fields); err != nil {
		return nil, &ParseError{Path: path, Reason: "decoding frontmatter", Err: err}
	}

	md := normalize(path, &raw)
	if err := validate(path, md); err != nil {
		return nil, err
	}
	return md, nil
}

// normalize folds the legacy flat layout into the current nested shape. The
// nested metadata block wins when both are present; each migrated flat field
// is recorded on the result and logged as a warning so callers can track the
// debt without failing builds.
func normalize(path string, raw *rawFrontmatter) *SkillMetadata {
	md := &SkillMetadata{
		Name:        raw.Name,
		Description: raw.Description,
	}

	if raw.Metadata != nil {
		md.Version = raw.Metadata.Version
		if raw.Metadata.Dependencies != nil {
			md.Dependencies = raw.Metadata.Dependencies.Skills
			md.Packages = raw.Metadata.Dependencies.Packages
		}
		return md
	}

	if raw.Version != "" {
		md.Version = raw.Version
		markLegacy(path, md, "version")
	}
	if len(raw.Dependencies) > 0 {
		md.Dependencies = raw.Dependencies
		markLegacy(path, md, "dependencies")
	}
	if len(raw.Packages) > 0 {
		md.Packages = raw.Packages
		markLegacy(path, md, "packages")
	}
	return md
}

func markLegacy(path string, md *SkillMetadata, field string) {
	md.Legacy = true
	md.LegacyFields = append(md.LegacyFields, field)
	logger.L.WithFields(map[string]interface{}{
		"skill_file": path,
		"field":      field,
	}).Warn("migrated legacy top-level frontmatter field")
}

func validate(path string, md *SkillMetadata) error {
	if md.Name == "" {
		return &ParseError{Path: path, Reason: "frontmatter is missing required field 'name'"}
	}
	if md.Description == "" {
		return &ParseError{Path: path, Reason: "frontmatter is missing required field 'description'"}
	}
	if md.Version == "" {
		return &ParseError{Path: path, Reason: "frontmatter is missing required field 'version'"}
	}
	if !versionPattern.MatchString(md.Version) {
		return &ValidationError{
			Path: path, Field: "version", Value: md.Version,
			Reason: "must be major.minor or major.minor.patch",
		}
	}
	for _, dep := range md.Dependencies {
		if !namePattern.MatchString(dep) {
			return &ValidationError{
				Path: path, Field: "dependency", Value: dep,
				Reason: "must be lowercase-with-hyphens",
			}
		}
	}
	return nil
}

// extractFrontmatter parses the markdown and returns the frontmatter fields,
// or nil when the document has no frontmatter block.
func extractFrontmatter(content []byte) (map[string]interface{}, error) {
	md := goldmark.New(goldmark.WithExtensions(meta.Meta))

	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, errors.Wrap(err, "parsing markdown")
	}
	return meta.Get(pctx), nil
}

// FrontmatterBlock returns the raw YAML between the leading `---` fences,
// or nil when no block is present. Used by the schema validator, which needs
// the YAML text rather than the decoded map.
func FrontmatterBlock(content []byte) []byte {
	text := string(content)
	if !strings.HasPrefix(text, "---") {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return []byte(strings.Join(lines[1:i], "\n"))
		}
	}
	return nil
}

// Body returns the markdown content after the frontmatter block. When no
// block is present the content is returned unchanged.
func Body(content []byte) string {
	text := string(content)
	if !strings.HasPrefix(text, "---") {
		return text
	}
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.TrimLeft(strings.Join(lines[i+1:], "\n"), "\n")
		}
	}
	return text
}
