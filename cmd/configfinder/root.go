package main

import (
	"log/slog"
	"os"

	"configfinder/pkg/registry"
	"configfinder/pkg/version"

	"github.com/spf13/cobra"
)

var Registry registry.CommandRegistry

func main() {
	var verbose bool

	cmd := &cobra.Command{
		Use:     "configfinder",
		Short:   "configfinder - locate configuration files the way CLI tools do",
		Version: version.Version(),
		PersistentPreRun: func(c *cobra.Command, args []string) {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	Registry.FillCommands(cmd)

	if err := cmd.Execute(); err != nil {
		slog.Error("error", "err", err)
		os.Exit(1)
	}
}
