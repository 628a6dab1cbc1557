package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wheresmy/internal/model"
)

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the shared room live, printing items as they change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			if s.room == "" {
				return errors.New("not in a room, join one first with: wheresmy room join CODE")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			faint := color.New(color.Faint, color.Italic)
			_, _ = faint.Printf("watching room %s, press ctrl-c to stop\n\n", s.room)

			cancel := s.client.Subscribe(ctx, s.room,
				func(items []model.Item) {
					fmt.Printf("%s\n", time.Now().Format("15:04:05"))
					renderItems(cmd.OutOrStdout(), items, "", time.Now())
					fmt.Println()
				},
				func(err error) {
					_, _ = faint.Printf("connection lost, retrying (%v)\n", err)
				})
			defer cancel()

			<-ctx.Done()
			return nil
		},
	}
}
