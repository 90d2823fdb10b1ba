// Package build holds version information set with -ldflags.
package build

import (
	"runtime/debug"
	"time"
)

var (
	commit  = ""
	date    = ""
	version = "dev"
	repoURL = "https://github.com/ItsNotGoodName/x-cwm"
)

var Current Build

func init() {
	Current = newBuild(commit, date, version, repoURL)

	// go install builds carry the module version instead of ldflags.
	if info, ok := debug.ReadBuildInfo(); ok && Current.Version == "dev" {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			Current.Version = v
		}
	}
}

func newBuild(commit, date, version, repoURL string) Build {
	parsed, _ := time.Parse(time.RFC3339, date)

	b := Build{
		Commit:  commit,
		Version: version,
		Date:    parsed,
		RepoURL: repoURL,
	}
	if repoURL != "" && commit != "" {
		b.CommitURL = repoURL + "/tree/" + commit
	}
	if repoURL != "" && version != "dev" {
		b.ReleaseURL = repoURL + "/releases/tag/" + version
	}
	return b
}

type Build struct {
	Commit     string    `json:"commit,omitempty"`
	Version    string    `json:"version,omitempty"`
	Date       time.Time `json:"date,omitempty"`
	RepoURL    string    `json:"repo_url,omitempty"`
	CommitURL  string    `json:"commit_url,omitempty"`
	ReleaseURL string    `json:"release_url,omitempty"`
}

// String is the version followed by the short commit when known.
func (b Build) String() string {
	if len(b.Commit) >= 7 {
		return b.Version + " (" + b.Commit[:7] + ")"
	}
	return b.Version
}
