package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"business-catalog-api/internal/migration"
	"business-catalog-api/internal/repositories"
	"business-catalog-api/internal/services"
)

func (a *app) newPublishCmd() *cobra.Command {
	var notes, by string
	cmd := &cobra.Command{
		Use:   "publish <version>",
		Short: "Record the current catalog as a named snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.snapshots()
			if err != nil {
				return err
			}
			if by == "" {
				by = os.Getenv("USER")
			}
			result, err := c.CatalogService.Publish(cmd.Context(), &services.PublishRequest{
				Version:     args[0],
				Notes:       notes,
				PublishedBy: by,
			})
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.print(cmd.OutOrStdout(), result)
			}
			if result.Unchanged {
				fmt.Fprintf(cmd.OutOrStdout(), "unchanged since %s, nothing published\n", result.Snapshot.Version)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published %s (%d paths, %d operations) %s\n",
				result.Snapshot.Version, result.Snapshot.PathCount, result.Snapshot.OperationCount, result.Snapshot.Checksum)
			return nil
		},
	}
	cmd.Flags().StringVarP(&notes, "notes", "m", "", "Release notes")
	cmd.Flags().StringVar(&by, "by", "", "Publisher name (default $USER)")
	return cmd
}

func (a *app) newDiffCmd() *cobra.Command {
	var failOnBreaking bool
	cmd := &cobra.Command{
		Use:   "diff <from> [to]",
		Short: "Compare two snapshots; to defaults to the current catalog",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to := services.CurrentVersion
			if len(args) == 2 {
				to = args[1]
			}
			c, err := a.snapshots()
			if err != nil {
				return err
			}
			diff, err := c.CatalogService.Diff(cmd.Context(), args[0], to)
			if err != nil {
				return err
			}

			if a.jsonOutput {
				if err := a.print(cmd.OutOrStdout(), diff); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				if diff.Empty() {
					fmt.Fprintf(out, "%s and %s document the same contract\n", diff.From, diff.To)
				}
				section := func(title, sign string, items []string) {
					for _, item := range items {
						fmt.Fprintf(out, "%s %s %s\n", sign, title, item)
					}
				}
				section("path", "+", diff.AddedPaths)
				section("path", "-", diff.RemovedPaths)
				section("operation", "+", diff.AddedOperations)
				section("operation", "-", diff.RemovedOperations)
				section("schema", "+", diff.AddedSchemas)
				section("schema", "-", diff.RemovedSchemas)
				for _, change := range diff.ChangedRequired {
					if len(change.Added) > 0 {
						fmt.Fprintf(out, "! required %s +%s\n", change.Schema, strings.Join(change.Added, ","))
					}
					if len(change.Removed) > 0 {
						fmt.Fprintf(out, "~ required %s -%s\n", change.Schema, strings.Join(change.Removed, ","))
					}
				}
			}

			if failOnBreaking && diff.Breaking() {
				return fmt.Errorf("breaking changes between %s and %s", diff.From, diff.To)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&failOnBreaking, "fail-on-breaking", false, "Exit non-zero when the diff is breaking")
	return cmd
}

func (a *app) newSnapshotsCmd() *cobra.Command {
	var opts repositories.ListOptions
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "List published snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.snapshots()
			if err != nil {
				return err
			}
			list, err := c.CatalogService.ListSnapshots(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.print(cmd.OutOrStdout(), list)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "VERSION\tPATHS\tOPERATIONS\tCREATED\tCHECKSUM")
			for _, s := range list {
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%.12s\n", s.Version, s.PathCount, s.OperationCount,
					s.CreatedAt.Format("2006-01-02 15:04:05"), s.Checksum)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&opts.Limit, "limit", repositories.DefaultLimit, "Maximum number of snapshots")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "Number of snapshots to skip")

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <version>",
		Short: "Delete a snapshot and its lint run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.snapshots()
			if err != nil {
				return err
			}
			if err := c.CatalogService.DeleteSnapshot(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return err
		},
	})
	return cmd
}

func (a *app) newImportCmd() *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:   "import <dir>",
		Short: "Import exported documents (<version>.json or <version>/openapi.json) as snapshots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.snapshots()
			if err != nil {
				return err
			}
			result, err := migration.NewSnapshotImporter(c.Repositories(), args[0], a.logger).Import(cmd.Context(), by)
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.print(cmd.OutOrStdout(), result)
			}
			out := cmd.OutOrStdout()
			for _, v := range result.Imported {
				fmt.Fprintf(out, "imported %s\n", v)
			}
			for _, v := range result.Skipped {
				fmt.Fprintf(out, "skipped %s (exists)\n", v)
			}
			for _, w := range result.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&by, "by", "import", "Publisher recorded on imported snapshots")
	return cmd
}
