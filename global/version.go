package global

import (
	"fmt"
	"runtime/debug"
)

// Set at build time with
//
//	go build -ldflags "-X github.com/nathanieltooley/pokemon-term/global.Version=1.0.0"
var (
	Version     = "N/A"
	Authors     = "N/A"
	GitRevision = ""
)

// VersionShort is the -v output.
func VersionShort() string {
	return fmt.Sprintf("%s %s", AppName, Version)
}

// VersionLong is the --version output, which also carries the git revision and the authors.
func VersionLong() string {
	return fmt.Sprintf("%s %s (rev %s)\n%s", AppName, Version, gitRevision(), Authors)
}

func gitRevision() string {
	if GitRevision != "" {
		return GitRevision
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			return setting.Value
		}
	}

	return ""
}
