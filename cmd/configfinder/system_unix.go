//go:build !windows

package main

import "configfinder/pkg/configdirs"

func addSystemDir(d *configdirs.ConfigDirs) {
	d.AddRootEtc()
}
