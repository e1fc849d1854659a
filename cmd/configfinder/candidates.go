package main

import (
	"fmt"

	"configfinder/pkg/config"

	"github.com/spf13/cobra"
)

func init() {
	Registry.Register(func(parent *cobra.Command) {
		flags := &searchFlags{}
		var local bool

		cmd := &cobra.Command{
			Use:   "candidates <app> <base> [ext]",
			Short: "Print every candidate config path in search order",
			Long: `Print the ordered list of paths where <app>/<base>.<ext> could live,
one per line, without checking whether any of them exists.

With --local, the .local override variant of each candidate is printed
instead (e.g. my-app/main.local.kdl).`,
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
					if local {
						fmt.Println(wl.LocalPath())
					} else {
						fmt.Println(wl.Path())
					}
				}
				return nil
			},
		}

		flags.register(cmd)
		cmd.Flags().BoolVar(&local, "local", false, "Print the .local override variants")
		parent.AddCommand(cmd)
	})
}
