// Package misc keeps build-time program identification in one place.
package misc

// Set during build with -ldflags "-X dtc/misc.version=... -X dtc/misc.gitHash=...".
var (
	appName = "dtc"
	version = "0.0.0-dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
