// Package buildinfo exposes build metadata injected at link time.
//
// Populate the variables with ldflags, e.g.:
//
//	go build -ldflags "-X inkwell/internal/buildinfo.Version=v1.0.0 \
//	  -X inkwell/internal/buildinfo.Date=$(date -u +%Y-%m-%d) \
//	  -X inkwell/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// PrintBuildData writes the build version, date, and commit to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", Date)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}
