// Package version formats build information stamped in with -ldflags
package version

import (
	"fmt"
	"runtime"
)

// Info describes a build
type Info struct {
	Version   string
	Commit    string
	BuildTime string
}

// Short returns "version-commit" with the commit cut to seven characters
func (i Info) Short() string {
	v := i.Version
	if v == "" {
		v = "dev"
	}
	if i.Commit == "" {
		return v
	}
	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s-%s", v, commit)
}

// String returns detailed version information
func (i Info) String() string {
	v, commit, built := i.Version, i.Commit, i.BuildTime
	if v == "" {
		v = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	if built == "" {
		built = "unknown"
	}

	return fmt.Sprintf(`decode-dimm (SPD and EDID decoder)
Version:    %s
Commit:     %s
Built:      %s
Go version: %s
OS/Arch:    %s/%s`,
		v, commit, built,
		runtime.Version(),
		runtime.GOOS, runtime.GOARCH)
}
