package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/the-flavor-must-flow/internal/cli"
	"github.com/Veraticus/the-flavor-must-flow/internal/storage"
)

func snapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage library snapshots",
		Long: `Create, list, restore, and delete library snapshots.

Snapshots save the whole library database before risky changes. Reclassify
takes one automatically; the newest automatic snapshots are kept.`,
		Example: `  # Snapshot before a big import
  flavor snapshot create --tag pre-import

  # List snapshots
  flavor snapshot list

  # Roll back
  flavor snapshot restore pre-import`,
	}

	cmd.AddCommand(createSnapshotCmd())
	cmd.AddCommand(listSnapshotsCmd())
	cmd.AddCommand(restoreSnapshotCmd())
	cmd.AddCommand(deleteSnapshotCmd())

	return cmd
}

// withSnapshots opens the library and hands its snapshot manager to fn.
func withSnapshots(cmd *cobra.Command, fn func(*storage.SQLiteStorage, *storage.SnapshotManager) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStorage(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	manager, err := store.NewSnapshotManager()
	if err != nil {
		closeStorage(store)
		return fmt.Errorf("failed to create snapshot manager: %w", err)
	}
	return fn(store, manager)
}

func createSnapshotCmd() *cobra.Command {
	var tag string
	var description string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSnapshots(cmd, func(store *storage.SQLiteStorage, manager *storage.SnapshotManager) error {
				defer closeStorage(store)

				info, err := manager.Create(cmd.Context(), tag, description)
				if err != nil {
					return fmt.Errorf("failed to create snapshot: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s Created snapshot %s (%s, %s)\n",
					cli.SuccessStyle.Render(cli.SuccessIcon),
					cli.InfoStyle.Render(info.ID),
					plural(info.Movies, "movie"),
					cli.FormatFileSize(info.FileSize))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&tag, "tag", "t", "", "snapshot name (auto-generated if not provided)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "description of the snapshot")

	return cmd
}

func listSnapshotsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all snapshots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSnapshots(cmd, func(store *storage.SQLiteStorage, manager *storage.SnapshotManager) error {
				defer closeStorage(store)

				snapshots, err := manager.List(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to list snapshots: %w", err)
				}

				out := cmd.OutOrStdout()
				if len(snapshots) == 0 {
					fmt.Fprintln(out, cli.SubtitleStyle.Render("No snapshots found."))
					return nil
				}

				now := time.Now()
				rows := make([][]string, len(snapshots))
				for i, s := range snapshots {
					kind := "manual"
					if s.IsAuto {
						kind = "auto"
					}
					rows[i] = []string{
						s.ID,
						cli.FormatRelativeTime(s.CreatedAt, now),
						cli.FormatFileSize(s.FileSize),
						strconv.Itoa(s.Movies),
						kind,
						s.Description,
					}
				}
				fmt.Fprintln(out, cli.RenderTable([]string{"NAME", "CREATED", "SIZE", "MOVIES", "TYPE", "DESCRIPTION"}, rows))
				return nil
			})
		},
	}
}

func restoreSnapshotCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "restore <snapshot-id>",
		Short: "Replace the library with a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if !force && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
				fmt.Sprintf("%s This will replace your library with snapshot %s. Continue?", cli.WarningIcon, id)) {
				fmt.Fprintln(cmd.OutOrStdout(), cli.SubtitleStyle.Render("Restore cancelled."))
				return nil
			}

			err := withSnapshots(cmd, func(store *storage.SQLiteStorage, manager *storage.SnapshotManager) error {
				// Restore closes the store itself on success.
				if err := manager.Restore(cmd.Context(), id); err != nil {
					closeStorage(store)
					return fmt.Errorf("failed to restore snapshot: %w", err)
				}
				return nil
			})
			if err != nil {
				return err
			}

			// Older snapshots may predate the current schema.
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := openStorage(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			closeStorage(store)

			fmt.Fprintf(cmd.OutOrStdout(), "%s Restored from snapshot %s\n",
				cli.SuccessStyle.Render(cli.SuccessIcon),
				cli.InfoStyle.Render(id))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}

func deleteSnapshotCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <snapshot-id>",
		Short: "Delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if !force && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
				fmt.Sprintf("%s This will permanently delete snapshot %s. Continue?", cli.WarningIcon, id)) {
				fmt.Fprintln(cmd.OutOrStdout(), cli.SubtitleStyle.Render("Deletion cancelled."))
				return nil
			}

			return withSnapshots(cmd, func(store *storage.SQLiteStorage, manager *storage.SnapshotManager) error {
				defer closeStorage(store)

				if err := manager.Delete(cmd.Context(), id); err != nil {
					return fmt.Errorf("failed to delete snapshot: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Deleted snapshot %s\n",
					cli.SuccessStyle.Render(cli.SuccessIcon),
					cli.InfoStyle.Render(id))
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}
