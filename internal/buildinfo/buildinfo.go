// Package buildinfo prints build metadata injected with -ldflags:
//
//	go build -ldflags "-X github.com/dmitrijs2005/gophgallery/internal/buildinfo.buildVersion=v1.0.0 \
//	  -X github.com/dmitrijs2005/gophgallery/internal/buildinfo.buildDate=2026-01-01 \
//	  -X github.com/dmitrijs2005/gophgallery/internal/buildinfo.buildCommit=abc123" ./cmd/cli
package buildinfo

import (
	"fmt"
	"io"
)

const notAvailable = "N/A"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func valueOrNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// PrintBuildData writes version, date and commit to w, using N/A for values
// that were not set at build time.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", valueOrNA(buildVersion))
	fmt.Fprintf(w, "Build date: %s\n", valueOrNA(buildDate))
	fmt.Fprintf(w, "Build commit: %s\n", valueOrNA(buildCommit))
}
