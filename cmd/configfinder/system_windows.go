//go:build windows

package main

import "configfinder/pkg/configdirs"

// The roaming folder added by AddPlatformConfigDir is the closest
// Windows equivalent of a system config directory.
func addSystemDir(d *configdirs.ConfigDirs) {}
