package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wheresmy/internal/local"
	"wheresmy/internal/remote"
)

func newRoomCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Share items live with others through a room code",
	}
	cmd.AddCommand(
		newRoomCreateCommand(),
		newRoomJoinCommand(),
		newRoomLeaveCommand(),
		newRoomStatusCommand(),
	)
	return cmd
}

func newRoomCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create [CODE]",
		Short: "Create a shared room (a code is generated when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := ""
			if len(args) > 0 {
				code = args[0]
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			client := remote.NewClient(cfg.Server)
			code, joined, err := client.CreateRoom(cmd.Context(), code)
			if err != nil {
				return roomFriendly(err)
			}

			slot := local.Open(cfg.Path)
			if err := slot.SetRoomCode(code); err != nil {
				return fmt.Errorf("saving room code: %w", err)
			}

			if joined {
				fmt.Printf("Room %s already exists, joined it instead\n", code)
			} else {
				fmt.Printf("Created room %s\n", code)
			}
			fmt.Println("Share this code so others can join with: wheresmy room join", code)
			return nil
		},
	}
}

func newRoomJoinCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "join CODE",
		Short: "Join an existing shared room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			client := remote.NewClient(cfg.Server)
			code, err := client.JoinRoom(cmd.Context(), args[0])
			if err != nil {
				return roomFriendly(err)
			}

			slot := local.Open(cfg.Path)
			if err := slot.SetRoomCode(code); err != nil {
				return fmt.Errorf("saving room code: %w", err)
			}

			fmt.Printf("Joined room %s\n", code)
			return nil
		},
	}
}

func newRoomLeaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "leave",
		Short: "Leave the shared room and go back to local tracking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			slot := local.Open(cfg.Path)
			code := slot.RoomCode()
			if err := slot.ClearRoomCode(); err != nil {
				return fmt.Errorf("clearing room code: %w", err)
			}

			if code == "" {
				fmt.Println("Not in a room")
			} else {
				fmt.Printf("Left room %s, tracking locally again\n", code)
			}
			return nil
		},
	}
}

func newRoomStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether items are tracked locally or in a room",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			code := local.Open(cfg.Path).RoomCode()
			if code == "" {
				fmt.Println("Tracking locally at", cfg.Path)
				return nil
			}

			c := color.New(color.Bold)
			_, _ = c.Printf("In room %s", code)
			fmt.Printf(" (server %s)\n", cfg.Server)
			return nil
		},
	}
}
