// Package registry collects cobra commands registered from init
// functions, so each command file stays self-contained.
package registry

import "github.com/spf13/cobra"

// CommandRegistry accumulates functions that attach commands to a
// parent. The zero value is ready to use.
type CommandRegistry struct {
	fillers []func(parent *cobra.Command)
}

// Register queues a function that adds one or more commands to a
// parent command. Typically called from init().
func (r *CommandRegistry) Register(fill func(parent *cobra.Command)) {
	r.fillers = append(r.fillers, fill)
}

// FillCommands attaches every registered command to parent.
func (r *CommandRegistry) FillCommands(parent *cobra.Command) {
	for _, fill := range r.fillers {
		fill(parent)
	}
}

// GetCommand fills parent and returns it, for use as an expression.
func (r *CommandRegistry) GetCommand(parent *cobra.Command) *cobra.Command {
	r.FillCommands(parent)
	return parent
}
