package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/mmonari/syntaxdemo/internal/cmd"
)

func main() {
	cmd.SetVersion(buildVersionString())
	cmd.Execute()
}

const shortHashLength = 7

// buildVersionString joins the version, commit and build date. Values not set
// through ldflags are taken from the module's VCS build info when present.
func buildVersionString() string {
	parts := []string{"dev"}
	if Version != "" {
		parts[0] = Version
	}

	commit := GitCommit
	if commit == "" {
		commit = vcsSetting("vcs.revision")
		if len(commit) > shortHashLength {
			commit = commit[:shortHashLength]
		}
	}
	if commit != "" {
		parts = append(parts, fmt.Sprintf("commit: %s", commit))
	}

	built := BuildDate
	if built == "" {
		built = vcsSetting("vcs.time")
	}
	if built != "" {
		parts = append(parts, fmt.Sprintf("built: %s", built))
	}

	return strings.Join(parts, ", ")
}

func vcsSetting(key string) string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range buildInfo.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}
	return ""
}
