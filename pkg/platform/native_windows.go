//go:build windows

package platform

import (
	"os"
	"path/filepath"
)

// nativeConfigHome resolves the roaming AppData folder. It is trusted
// as-is: Windows has no dotted config-dir convention to append.
func nativeConfigHome() (Dir, bool) {
	dir, err := os.UserConfigDir()
	if err != nil || !filepath.IsAbs(dir) {
		return Dir{}, false
	}
	return Dir{Path: dir, Trusted: true}, true
}
