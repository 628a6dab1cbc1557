package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// New builds the wheresmy command tree.
func New() *cobra.Command {
	root := &cobra.Command{
		Use:   "wheresmy",
		Short: "Never lose your stuff again",
		Long: `wheresmy tracks where your things are: record an item's location, look it
up later, and browse its location history.

By default everything stays in a local data directory. Join a room with
'wheresmy room join CODE' to share a live-synced list with other devices
through a sync server.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("path", defaultPath, "data directory")
	root.PersistentFlags().String("server", defaultServer, "sync server URL")
	viper.BindPFlag("path", root.PersistentFlags().Lookup("path"))
	viper.BindPFlag("server", root.PersistentFlags().Lookup("server"))

	root.AddCommand(
		newAddCommand(),
		newMoveCommand(),
		newRemoveCommand(),
		newListCommand(),
		newHistoryCommand(),
		newSuggestCommand(),
		newRoomCommand(),
		newWatchCommand(),
	)

	return root
}
