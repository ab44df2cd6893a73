package version

import (
	"fmt"
	"runtime/debug"
)

// Set the version at build time with something like:
// go build -ldflags "-X github.com/rossnomann/fretboard/version.Version=$(git describe --dirty)"

var Version string

var Hash = func() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return vcsHash(info.Settings)
	}
	return ""
}()

var VersionOrHash = func() string {
	if Version != "" {
		return Version
	}
	return Hash
}()

func vcsHash(settings []debug.BuildSetting) string {
	modified := false
	for _, setting := range settings {
		if setting.Key == "vcs.modified" && setting.Value == "true" {
			modified = true
			break
		}
	}
	for _, setting := range settings {
		if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
			shortHash := setting.Value[:7]
			if modified {
				return shortHash + "-dirty"
			}
			return shortHash
		}
	}
	return ""
}

// Line returns what the -version flag of the binary called name prints.
func Line(name string) string {
	v := VersionOrHash
	if v == "" {
		v = "devel"
	}
	return fmt.Sprintf("%s %s", name, v)
}
