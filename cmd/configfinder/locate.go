package main

import (
	"fmt"
	"log/slog"
	"os"

	"configfinder/pkg/config"

	"github.com/spf13/cobra"
)

func init() {
	Registry.Register(func(parent *cobra.Command) {
		flags := &searchFlags{}
		var preferLocal bool

		cmd := &cobra.Command{
			Use:   "locate <app> <base> [ext]",
			Short: "Print the first existing config file for an application",
			Long: `Walk the candidate paths in search order and print the first file
that exists. At each location the base file is checked before the
.local variant; --local flips that preference.`,
			Args: cobra.RangeArgs(2, 3),
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

				candidates := d.Search(args[0], args[1], ext)
				for {
					wl, ok := candidates.Next()
					if !ok {
						break
					}

					first, second := wl.Paths()
					if preferLocal {
						first, second = second, first
					}
					for _, path := range []string{first, second} {
						if _, err := os.Stat(path); err != nil {
							slog.Debug("candidate missing", "path", path)
							continue
						}
						fmt.Println(path)
						return nil
					}
				}

				return fmt.Errorf("no configuration file found for %s/%s", args[0], args[1])
			},
		}

		flags.register(cmd)
		cmd.Flags().BoolVar(&preferLocal, "local", false, "Prefer the .local variant at each location")
		parent.AddCommand(cmd)
	})
}
