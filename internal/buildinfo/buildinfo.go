// Package buildinfo exposes version metadata stamped into the binary at
// link time via -ldflags:
//
//	go build -ldflags "-X .../internal/buildinfo.buildVersion=v1.2.3 \
//	                   -X .../internal/buildinfo.buildDate=2026-09-01 \
//	                   -X .../internal/buildinfo.buildCommit=abc1234"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// PrintBuildData writes the build version, date and commit to w, one per line.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
