//go:build !windows

package configdirs

// RootEtc is the system-wide configuration location.
const RootEtc = "/etc"

// AddRootEtc adds /etc to the list of paths to check, if not
// previously added. The conventional Segment is not appended.
func (d *ConfigDirs) AddRootEtc() *ConfigDirs {
	if !d.addedEtc {
		d.addPath(RootEtc, false)
		d.addedEtc = true
	}
	return d
}
