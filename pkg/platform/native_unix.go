//go:build !windows

package platform

import (
	"os"
	"path/filepath"
)

// nativeConfigHome prefers $XDG_CONFIG_HOME when it is set to an absolute
// path. A relative value is ignored, per the XDG basedir spec. The home
// directory fallback is untrusted so callers append their own segment.
func nativeConfigHome() (Dir, bool) {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" && filepath.IsAbs(v) {
		return Dir{Path: v, Trusted: true}, true
	}

	home, err := os.UserHomeDir()
	if err != nil || !filepath.IsAbs(home) {
		return Dir{}, false
	}
	return Dir{Path: home}, true
}
