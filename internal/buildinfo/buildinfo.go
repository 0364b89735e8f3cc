// Package buildinfo holds version metadata stamped in at build time via
// -ldflags "-X github.com/naveenspark/pinestore/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("pinestore %s (commit=%s, date=%s)", Version, Commit, Date)
}

// UserAgent is sent on every catalog request made by the CLI.
func UserAgent() string {
	return "pinestore-cli/" + Version
}
