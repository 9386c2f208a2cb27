// Command seatctl runs operational tasks against the seating database and
// broker: applying the schema and announcing catalog changes so running
// servers drop their cached responses.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/iliyamo/event-seating/internal/config"
	"github.com/iliyamo/event-seating/internal/database"
	"github.com/iliyamo/event-seating/internal/queue"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "seatctl",
		Short:        "Operational commands for the event seating service",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			_ = godotenv.Load()
		},
	}
	root.AddCommand(newMigrateCmd(), newInvalidateCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the events, sections, seats and attendees tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
			if err != nil {
				return fmt.Errorf("database: %w", err)
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			if err := database.ApplySchema(ctx, db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema applied")
			return nil
		},
	}
}

type invalidateOpts struct {
	url     string
	queue   string
	eventID uint64
	action  string
}

func newInvalidateCmd() *cobra.Command {
	var o invalidateOpts
	cmd := &cobra.Command{
		Use:   "invalidate",
		Short: "Publish a catalog change so servers drop cached responses of an event",
		RunE: func(cmd *cobra.Command, _ []string) error {
			url := o.url
			if url == "" {
				url = os.Getenv("AMQP_URL")
			}
			if url == "" {
				url = os.Getenv("RABBITMQ_URL")
			}
			if url == "" {
				return fmt.Errorf("no broker: set --url, AMQP_URL or RABBITMQ_URL")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			ev := queue.CatalogChangedEvent{EventID: o.eventID, Action: o.action}
			if err := queue.PublishCatalogChanged(ctx, url, o.queue, ev); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published %s for event %d\n", o.action, o.eventID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.url, "url", "", "AMQP broker URL")
	f.StringVar(&o.queue, "queue", queue.DefaultQueue, "queue name")
	f.Uint64Var(&o.eventID, "event", 0, "id of the changed event")
	f.StringVar(&o.action, "action", queue.ActionUpdated, "created, updated or deleted")
	_ = cmd.MarkFlagRequired("event")
	return cmd
}
