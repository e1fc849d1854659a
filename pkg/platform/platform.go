// Package platform resolves user directories from the operating system.
package platform

// Dir is a resolved platform directory.
type Dir struct {
	// Path is the resolved absolute directory.
	Path string
	// Trusted reports whether Path already points at a config location
	// and must be used as-is, without the conventional config segment.
	Trusted bool
}

// Info supplies the user directories the candidate builder needs.
//
// Implementations must only return absolute paths and must report
// ok=false instead of failing hard; a caller may retry later if the
// environment changes.
type Info interface {
	// ConfigHome resolves the user's config home directory.
	//
	// On unix-likes this is $XDG_CONFIG_HOME when set to an absolute
	// path (trusted), falling back to the home directory (untrusted).
	// On Windows it is the roaming AppData folder (trusted).
	ConfigHome() (Dir, bool)
}

// Native resolves directories from the current process environment.
type Native struct{}

func (Native) ConfigHome() (Dir, bool) {
	return nativeConfigHome()
}
