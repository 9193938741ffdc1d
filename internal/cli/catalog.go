package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"business-catalog-api/internal/adapters/storage"
	"business-catalog-api/internal/services"
)

func (a *app) newExportCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write openapi.json, openapi.yaml, lint.json and one document per domain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.catalog()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = a.cfg.Export.Dir
			}
			store, err := storage.New(&storage.Config{Type: storage.TypeLocal, BasePath: dir}, storage.DefaultRetryConfig(), a.logger)
			if err != nil {
				return err
			}
			defer store.Close()

			result, err := c.CatalogService.Export(cmd.Context(), store)
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.print(cmd.OutOrStdout(), result)
			}
			for _, artifact := range result.Artifacts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d bytes\n", artifact.Key, artifact.Size)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "checksum %s\n", result.Checksum)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Output directory (default EXPORT_DIR)")
	return cmd
}

func (a *app) newLintCmd() *cobra.Command {
	var rule string
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check the catalog for consistency; fails when errors are found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.catalog()
			if err != nil {
				return err
			}
			report := c.CatalogService.Lint()
			findings := report.Findings
			if rule != "" {
				findings = report.ByRule(rule)
			}

			if a.jsonOutput {
				if err := a.print(cmd.OutOrStdout(), findings); err != nil {
					return err
				}
			} else {
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, f := range findings {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Level, f.Rule, f.Path, f.Message)
				}
				w.Flush()
				fmt.Fprintf(cmd.OutOrStdout(), "%d errors, %d warnings\n", report.Errors(), report.Warnings())
			}

			if !report.OK() {
				return fmt.Errorf("lint failed with %d errors", report.Errors())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rule, "rule", "", "Only show findings of one rule")
	return cmd
}

func (a *app) newRoutesCmd() *cobra.Command {
	var domain string
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List every documented operation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.catalog()
			if err != nil {
				return err
			}
			routes, err := c.CatalogService.Routes(domain)
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.print(cmd.OutOrStdout(), routes)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range routes {
				fmt.Fprintf(w, "%s\t%s\t%s\n", strings.ToUpper(r.Method), r.Path, r.Summary)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&domain, "domain", "d", "", "Restrict to one domain")
	return cmd
}

func (a *app) newVerbsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "verbs <path>",
		Short:   "Show the verbs documented for a URL template",
		Example: "  catalogctl verbs '/store/group/{uuid}'",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.catalog()
			if err != nil {
				return err
			}
			verbs, err := c.CatalogService.Verbs(args[0])
			if err != nil {
				return err
			}
			if a.jsonOutput {
				return a.print(cmd.OutOrStdout(), verbs)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(verbs, " "))
			return err
		},
	}
}

func (a *app) newGetCmd() *cobra.Command {
	var domain string
	var yamlOut bool
	cmd := &cobra.Command{
		Use:   "get [query]",
		Short: "Print the document, or the value at a gjson path",
		Long: `Without arguments get prints the rendered document. With a gjson path it
prints the matching value.

Example:
  catalogctl get
  catalogctl get --domain hr --yaml
  catalogctl get 'paths./store/group.post.summary'
  catalogctl get 'components.schemas.store\.group.required'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.catalog()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				res, err := c.CatalogService.Query(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), res.String())
				return err
			}

			format := services.FormatJSON
			if yamlOut {
				format = services.FormatYAML
			}
			data, err := c.CatalogService.Render(domain, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&domain, "domain", "d", "", "Render one domain only")
	cmd.Flags().BoolVar(&yamlOut, "yaml", false, "Render as YAML")
	return cmd
}

func (a *app) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <domain>/<resource> <file|->",
		Short: "Validate a create payload against a resource schema",
		Example: `  catalogctl check store/brand brand.json
  echo '{"name":"Lenovo"}' | catalogctl check store/brand -`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts := strings.SplitN(args[0], "/", 2)
			if len(parts) != 2 {
				return fmt.Errorf("invalid resource format. Expected <domain>/<resource>")
			}

			payload, err := readInput(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}

			c, err := a.catalog()
			if err != nil {
				return err
			}
			result, err := c.CatalogService.Check(parts[0], parts[1], payload)
			if err != nil {
				return err
			}
			if a.jsonOutput {
				if err := a.print(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else {
				for _, e := range result.Errors {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", e.Location, e.Message)
				}
			}
			if !result.Valid {
				return fmt.Errorf("payload does not match %s", result.Resource)
			}
			if !a.jsonOutput {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", result.Resource)
			}
			return nil
		},
	}
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}
