package metadata

// SkillFileName is the file every skill directory must contain.
const SkillFileName = "SKILL.md"

// SkillMetadata is the normalized, parsed frontmatter of one skill. It is
// parsed fresh from disk on every resolution pass and never cached across
// processes.
type SkillMetadata struct {
	Name        string
	Description string
	Version     string

	// Dependencies lists required skill names, in declaration order.
	Dependencies []string

	// Packages maps external package names to version-range expressions
	// (evaluated by the resolver's Satisfies).
	Packages map[string]string

	// Legacy reports that the frontmatter used the flat top-level layout
	// and was migrated into the nested shape at parse time. LegacyFields
	// names each migrated field so callers can assert on the migration
	// instead of scraping log output.
	Legacy       bool
	LegacyFields []string
}

// rawFrontmatter mirrors the on-disk frontmatter before normalization. Flat
// top-level version/dependencies/packages are the legacy layout; the nested
// metadata block is the current one.
type rawFrontmatter struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`

	// Legacy flat fields.
	Version      string            `mapstructure:"version"`
	Dependencies []string          `mapstructure:"dependencies"`
	Packages     map[string]string `mapstructure:"packages"`

	Metadata *metadataBlock `mapstructure:"metadata"`
}

type metadataBlock struct {
	Version      string           `mapstructure:"version"`
	Dependencies *dependencyBlock `mapstructure:"dependencies"`
}

type dependencyBlock struct {
	Skills   []string          `mapstructure:"skills"`
	Packages map[string]string `mapstructure:"packages"`
}
