package client

import (
	"github.com/spf13/cobra"
)

// NewRoot constructs a root Cobra command for the dtqueue client.
// It registers the queue command group and the health command.
func NewRoot(baseURL BaseURLFunc) *cobra.Command {
	root := &cobra.Command{
		Use:   "dtqueue",
		Short: "dtqueue client commands",
	}
	root.AddCommand(NewQueueCommand(baseURL))
	root.AddCommand(NewHealthCommand(baseURL))
	return root
}
