package main

import (
	"fmt"
	"slices"

	"configfinder/pkg/config"
	"configfinder/pkg/configdirs"

	"github.com/spf13/cobra"
)

// searchFlags are shared by every subcommand that builds a search.
// Settings from the tool's own config file provide the defaults; an
// explicitly passed flag wins over them.
type searchFlags struct {
	roots     []string
	walkFrom  string
	walkUntil string
	cwd       bool
	platform  bool
	etc       bool
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.roots, "root", nil, "Extra directory to search (repeatable)")
	cmd.Flags().StringVar(&f.walkFrom, "walk-from", "", "Also search this directory and its ancestors")
	cmd.Flags().StringVar(&f.walkUntil, "walk-until", "", "Stop the ancestor walk at this directory (inclusive)")
	cmd.Flags().BoolVar(&f.cwd, "cwd", true, "Search the current directory")
	cmd.Flags().BoolVar(&f.platform, "platform", true, "Search the platform config home")
	cmd.Flags().BoolVar(&f.etc, "etc", true, "Search the system config directory")
	cmd.MarkFlagsRequiredTogether("walk-from", "walk-until")
}

// dirs builds the accumulator in precedence order: current directory,
// ancestor walk, explicit roots, platform config home, system dir.
func (f *searchFlags) dirs(cmd *cobra.Command, cfg *config.Config) (*configdirs.ConfigDirs, error) {
	useCWD := cfg.UseCWD
	if cmd.Flags().Changed("cwd") {
		useCWD = f.cwd
	}
	usePlatform := cfg.UsePlatform
	if cmd.Flags().Changed("platform") {
		usePlatform = f.platform
	}
	useEtc := cfg.UseEtc
	if cmd.Flags().Changed("etc") {
		useEtc = f.etc
	}

	d := configdirs.Empty()
	if useCWD {
		if err := d.AddCurrentDir(); err != nil {
			return nil, fmt.Errorf("failed to resolve current directory: %w", err)
		}
	}
	if f.walkFrom != "" {
		d.AddAllPathsUntil(f.walkFrom, f.walkUntil)
	}
	for _, root := range slices.Concat(cfg.Roots, f.roots) {
		d.AddPath(root)
	}
	if usePlatform {
		d.AddPlatformConfigDir()
	}
	if useEtc {
		addSystemDir(d)
	}
	return d, nil
}
