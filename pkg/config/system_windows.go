//go:build windows

package config

import "configfinder/pkg/configdirs"

// Windows has no system-wide /etc convention; the roaming folder
// added by AddPlatformConfigDir covers the machine-level location.
func addSystemDirs(d *configdirs.ConfigDirs) {}
