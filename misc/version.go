// Package misc keeps program identity, values are set by the linker:
//
//	go build -ldflags "-X csel/misc.version=1.0.0 -X csel/misc.gitHash=$(git rev-parse --short HEAD)"
package misc

var (
	appName = "csel"
	version = "dev"
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
