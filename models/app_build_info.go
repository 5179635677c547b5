package models

import "fmt"

const unknownBuildValue = "N/A"

// AppBuildInfo is the build metadata stamped into the server binary with
// -ldflags. Version falls back to "dev" for local builds.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	if version == "" {
		version = "dev"
	}

	return AppBuildInfo{version: version, date: date, commit: commit}
}

// Version returns the stamped version, empty for a zero AppBuildInfo.
func (a AppBuildInfo) Version() string { return a.version }

func (a AppBuildInfo) Date() string { return a.date }

func (a AppBuildInfo) Commit() string { return a.commit }

// String renders "version (commit, date)" with N/A for missing parts.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", orUnknown(a.version), orUnknown(a.commit), orUnknown(a.date))
}

func orUnknown(v string) string {
	if v == "" {
		return unknownBuildValue
	}
	return v
}
