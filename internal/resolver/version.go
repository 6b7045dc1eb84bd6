package resolver

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
)

// Satisfies reports whether current satisfies the required range expression.
//
// Supported forms: `^X.Y[.Z]` (same major, minor/patch at or above),
// `~X.Y[.Z]` (same major and minor, patch at or above), `>= > <= <`
// comparisons, `*`/`latest` (always true), and exact string equality as the
// fallback. Missing components default to 0. This is a simplified
// comparator, not full range algebra: compound expressions like
// ">=1.2.0 <2.0.0" are not accepted; callers split and AND the results.
func Satisfies(current, required string) (bool, error) {
	required = strings.TrimSpace(required)
	if required == "" || required == "*" || required == "latest" {
		return true, nil
	}

	var constraint string
	switch {
	case strings.HasPrefix(required, "^"):
		// Spelled out as an explicit range so the zero-major case keeps the
		// same-major semantics rather than semver's caret-for-0.x narrowing.
		v, err := semver.NewVersion(strings.TrimPrefix(required, "^"))
		if err != nil {
			return false, errors.Wrapf(err, "parsing range %q", required)
		}
		constraint = fmt.Sprintf(">=%s, <%d.0.0", v.String(), v.Major()+1)
	case strings.HasPrefix(required, "~"):
		v, err := semver.NewVersion(strings.TrimPrefix(required, "~"))
		if err != nil {
			return false, errors.Wrapf(err, "parsing range %q", required)
		}
		constraint = fmt.Sprintf(">=%s, <%d.%d.0", v.String(), v.Major(), v.Minor()+1)
	case strings.HasPrefix(required, ">="), strings.HasPrefix(required, "<="),
		strings.HasPrefix(required, ">"), strings.HasPrefix(required, "<"):
		constraint = required
	default:
		// No comparator prefix: exact string equality.
		return current == required, nil
	}

	v, err := semver.NewVersion(strings.TrimSpace(current))
	if err != nil {
		return false, errors.Wrapf(err, "parsing version %q", current)
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, errors.Wrapf(err, "parsing range %q", required)
	}
	return c.Check(v), nil
}
