package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wheresmy/internal/model"
)

func newAddCommand() *cobra.Command {
	var icon string
	cmd := &cobra.Command{
		Use:   "add NAME LOCATION",
		Short: "Start tracking an item at a location",
		Example: `
wheresmy add Keys "Front door hook"
wheresmy add "Water bottle" Car --icon 🚰
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}

			item, err := s.store.Add(cmd.Context(), args[0], args[1], icon)
			if err != nil {
				return s.friendly(err)
			}
			if item == nil {
				return errors.New("name and location must not be empty")
			}

			fmt.Printf("%s %s is now at %s\n", item.Icon, item.Name, item.Location)
			return nil
		},
	}
	cmd.Flags().StringVar(&icon, "icon", "", "icon to use (derived from the name when omitted)")
	return cmd
}

func newMoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move ITEM LOCATION",
		Short: "Record that an item moved to a new location",
		Long:  "ITEM is an item name (case-insensitive) or a numeric item id.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}

			item, ok := findItem(s.store.List(""), args[0])
			if !ok {
				return fmt.Errorf("no tracked item matches %q", args[0])
			}

			moved, err := s.store.Move(cmd.Context(), item.ID, args[1])
			if err != nil {
				return s.friendly(err)
			}
			if moved == nil {
				return errors.New("location must not be empty")
			}

			fmt.Printf("%s %s moved to %s\n", moved.Icon, moved.Name, moved.Location)
			return nil
		},
	}
}

func newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove ITEM",
		Short: "Stop tracking an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}

			item, ok := findItem(s.store.List(""), args[0])
			if !ok {
				return fmt.Errorf("no tracked item matches %q", args[0])
			}

			if err := s.store.Remove(cmd.Context(), item.ID); err != nil {
				return s.friendly(err)
			}

			fmt.Printf("%s %s removed\n", item.Icon, item.Name)
			return nil
		},
	}
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [FILTER]",
		Short: "List tracked items and where they are",
		Long:  "With FILTER, only items whose name or location contains it are shown.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}

			filter := ""
			if len(args) > 0 {
				filter = args[0]
			}

			items := s.store.List(filter)
			model.SortByUpdated(items)
			renderItems(cmd.OutOrStdout(), items, filter, time.Now())
			return nil
		},
	}
}

func newHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history ITEM",
		Short: "Show an item's location history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}

			item, ok := findItem(s.store.List(""), args[0])
			if !ok {
				return fmt.Errorf("no tracked item matches %q", args[0])
			}

			renderHistory(cmd.OutOrStdout(), item, time.Now())
			return nil
		},
	}
}

func newSuggestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Show commonly tracked items and locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderSuggestions(cmd.OutOrStdout())
			return nil
		},
	}
}

// findItem resolves a numeric id or a case-insensitive exact name.
func findItem(items []model.Item, ref string) (model.Item, bool) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		for _, item := range items {
			if item.ID == id {
				return item, true
			}
		}
	}
	lower := strings.ToLower(ref)
	for _, item := range items {
		if strings.ToLower(item.Name) == lower {
			return item, true
		}
	}
	return model.Item{}, false
}
