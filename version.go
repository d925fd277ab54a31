// Package textcore is a line-indexed UTF-16 text buffer and cursor engine.
//
// The engine lives in the buffer and cursor packages. The syntax and lspsync
// packages feed its EditDeltas to an incremental parser and a language server.
package textcore

import (
	_ "embed"
	"fmt"
	"regexp"
	"runtime"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version is the module version without the leading "v".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// Banner is the one-line version string command-line hosts print for
// -version.
func Banner(program string) string {
	return fmt.Sprintf("%s v%s (%s/%s, %s)", program, Version(), runtime.GOOS, runtime.GOARCH, runtime.Version())
}

// IsSemver reports whether v is a SemVer 2.0.0 version without "v".
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
