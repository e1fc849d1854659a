package main

import (
	"fmt"
	"os"

	"configfinder/pkg/config"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
)

func init() {
	Registry.Register(func(parent *cobra.Command) {
		flags := &searchFlags{}

		cmd := &cobra.Command{
			Use:   "pick <app> <base> [ext]",
			Short: "Fuzzy-select among the config files that actually exist",
			Args:  cobra.RangeArgs(2, 3),
			RunE: func(c *cobra.Command, args []string) error {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				d, err := flags.dirs(c, cfg)
				if err != nil {
					return err
				}

				ext := ""
				if len(args) == 3 {
					ext = args[2]
				}

				var existing []string
				candidates := d.Search(args[0], args[1], ext)
				for {
					wl, ok := candidates.Next()
					if !ok {
						break
					}
					for _, path := range []string{wl.Path(), wl.LocalPath()} {
						if _, err := os.Stat(path); err == nil {
							existing = append(existing, path)
						}
					}
				}

				if len(existing) == 0 {
					return fmt.Errorf("no configuration file found for %s/%s", args[0], args[1])
				}

				idx, err := fuzzyfinder.Find(
					existing,
					func(i int) string {
						return existing[i]
					},
				)
				if err != nil {
					if err == fuzzyfinder.ErrAbort {
						return nil
					}
					return fmt.Errorf("fuzzy finder failed: %w", err)
				}

				fmt.Println(existing[idx])
				return nil
			},
		}

		flags.register(cmd)
		parent.AddCommand(cmd)
	})
}
