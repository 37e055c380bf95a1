package jsonsum

import (
	"runtime/debug"
)

const version = "0.1.0" // version of jsonsum
const revisionSize = 7

// VersionInfo holds the version of jsonsum and VCS info.
type VersionInfo struct {
	Version string // version of jsonsum
	// VCS info
	Revision     string
	Time         string
	Experimental string
}

// GetVersionInfo returns VersionInfo of jsonsum.
func GetVersionInfo() *VersionInfo {
	info := &VersionInfo{
		Version: version,
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				info.Revision = setting.Value
				if len(info.Revision) >= revisionSize {
					info.Revision = info.Revision[:revisionSize]
				}
			case "vcs.time":
				info.Time = setting.Value
			case "vcs.modified":
				info.Experimental = setting.Value
			}
		}
	}
	return info
}

// String renders the version with the VCS revision when known, e.g.:
// "0.1.0 (a1b2c3d, 2026-10-19T08:00:00Z)".
func (v *VersionInfo) String() string {
	if v.Revision == "" {
		return v.Version
	}
	s := v.Version + " (" + v.Revision
	if v.Time != "" {
		s += ", " + v.Time
	}
	if v.Experimental == "true" {
		s += ", modified"
	}
	return s + ")"
}
