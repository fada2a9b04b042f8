// Package buildinfo holds the version stamped into plotplotplot at link time.
//
//	go build -ldflags "-X github.com/spred/plotplotplot/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/spred/plotplotplot/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/spred/plotplotplot/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Render caches key on [Renderer], so figures cached by one build are never
// served by another.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Renderer identifies the drawing code of this build. Development builds
// include the commit because their version string never changes.
func Renderer() string {
	if Version == "dev" && Commit != "none" {
		return Version + "+" + Commit
	}
	return Version
}

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
