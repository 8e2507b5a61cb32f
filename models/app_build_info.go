// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "runtime/debug"

// notAvailable is printed for build metadata that was not injected.
const notAvailable = "N/A"

// BuildInfo is the JSON body of GET /version/build.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// AppBuildInfo carries immutable build-time metadata embedded into the server
// binary through linker flags.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the injected version, or "N/A".
func (a AppBuildInfo) BuildVersion() string {
	return orNotAvailable(a.buildVersion)
}

// BuildDate returns the injected build timestamp, or "N/A".
func (a AppBuildInfo) BuildDate() string {
	return orNotAvailable(a.buildDate)
}

// BuildCommit returns the injected commit hash, or "N/A".
func (a AppBuildInfo) BuildCommit() string {
	return orNotAvailable(a.buildCommit)
}

// Version is the version reported by GET /version when none is configured:
// the injected version, then the main module version recorded by the Go
// toolchain, then "dev".
func (a AppBuildInfo) Version() string {
	if a.buildVersion != "" {
		return a.buildVersion
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
