// Package annotext holds module-level metadata shared by the annotext
// commands. The annotator itself lives in package annot.
package annotext

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version returns the module version without the leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// ValidVersion reports whether v is a SemVer 2.0.0 string without a `v`
// prefix. Release tooling rejects VERSION files that fail this check.
func ValidVersion(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
