package version

import (
	"fmt"
	"runtime/debug"
	"sync"
)

// Set with -ldflags "-X"; empty values fall back to the embedded build info.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)

// Info contains version information
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Package string `json:"package"`
}

var (
	infoOnce sync.Once
	info     Info
)

// GetInfo returns complete version information. Link-time values win over
// the module and VCS data recorded by the Go toolchain.
func GetInfo() Info {
	infoOnce.Do(func() {
		info = Info{Version: Version, Commit: Commit, Date: Date, Package: "dendra-fileops"}
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.Commit == "":
				info.Commit = s.Value
			case s.Key == "vcs.time" && info.Date == "":
				info.Date = s.Value
			}
		}
	})
	out := info
	if out.Version == "" {
		out.Version = "development"
	}
	return out
}

// GetVersion returns the version string
func GetVersion() string {
	return GetInfo().Version
}

// GetCommit returns the VCS revision, or "" if unknown.
func GetCommit() string {
	return GetInfo().Commit
}

// GetFullVersion returns a formatted version string with commit and date
func GetFullVersion() string {
	i := GetInfo()
	if len(i.Commit) < 7 {
		return i.Version
	}
	if i.Date != "" {
		return fmt.Sprintf("%s (%s, built %s)", i.Version, i.Commit[:7], i.Date)
	}
	return fmt.Sprintf("%s (%s)", i.Version, i.Commit[:7])
}
