// Package version reports the build version of the texttable binary.
package version

import (
	"runtime/debug"
	"sync"
)

// Get returns the main module version recorded in the build info.
var Get = sync.OnceValue(func() string {
	info, ok := debug.ReadBuildInfo()
	if ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "development"
})
