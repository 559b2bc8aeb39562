package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// ModulePath is the import path of the knife module.
const ModulePath = "github.com/kbukum/knife"

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
)

// Info represents version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	IsRelease bool   `json:"is_release"`
	IsDirty   bool   `json:"is_dirty"`
}

// GetVersionInfo returns the version of this build.
func GetVersionInfo() *Info {
	info := &Info{Version: Version, GitCommit: GitCommit}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		fromBuildInfo(info, buildInfo)
	}
	info.IsRelease = info.Version != "dev" && !info.IsDirty && !strings.Contains(info.Version, "dirty")
	return info
}

func fromBuildInfo(info *Info, bi *debug.BuildInfo) {
	info.GoVersion = bi.GoVersion
	if info.Version == "dev" {
		if bi.Main.Path == ModulePath && validModuleVersion(bi.Main.Version) {
			info.Version = bi.Main.Version
		}
		for _, dep := range bi.Deps {
			if dep.Path == ModulePath && validModuleVersion(dep.Version) {
				info.Version = dep.Version
			}
		}
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = setting.Value
			}
		case "vcs.modified":
			info.IsDirty = setting.Value == "true"
		}
	}
	if len(info.GitCommit) > 7 {
		info.GitCommit = info.GitCommit[:7]
	}
}

func validModuleVersion(v string) bool {
	return v != "" && v != "(devel)"
}

// GetShortVersion returns the version with the short commit appended.
func GetShortVersion() string {
	info := GetVersionInfo()
	if info.GitCommit != "" {
		if info.IsDirty {
			return fmt.Sprintf("%s-%s-dirty", info.Version, info.GitCommit)
		}
		return fmt.Sprintf("%s-%s", info.Version, info.GitCommit)
	}
	return info.Version
}
