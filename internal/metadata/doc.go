// Package metadata parses and validates skill frontmatter. Every skill
// directory carries a SKILL.md whose leading YAML block declares the skill's
// identity, version, and dependencies. The parser normalizes legacy flat
// layouts into the current nested shape and surfaces the migration as
// structured fields on the result, and the validator checks the raw block
// against an embedded JSON schema for richer diagnostics.
package metadata
