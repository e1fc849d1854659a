//go:build !windows

package config

import "configfinder/pkg/configdirs"

func addSystemDirs(d *configdirs.ConfigDirs) {
	d.AddRootEtc()
}
