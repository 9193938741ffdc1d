// Package cli implements catalogctl, the command line interface to the
// business API catalog
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"business-catalog-api/internal/config"
	"business-catalog-api/pkg/server"
)

// app carries the global flags and the lazily built container of one
// invocation
type app struct {
	jsonOutput bool
	verbose    bool

	cfg       *config.Config
	logger    *logrus.Logger
	container *server.Container
}

// NewRootCmd creates a new root command for the CLI
func NewRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "catalogctl",
		Short: "catalogctl inspects, exports and publishes the business API catalog",
		Long: `catalogctl renders the OpenAPI catalog of the store, hr, delivery and work
endpoints. It can export the documents, lint them, query them and record
published versions in the snapshot store.`,
		SilenceErrors:      true,
		SilenceUsage:       true,
		PersistentPreRunE:  a.load,
		PersistentPostRunE: a.close,
	}

	cmd.PersistentFlags().BoolVarP(&a.jsonOutput, "json", "j", false, "Output in JSON format")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(
		a.newExportCmd(),
		a.newLintCmd(),
		a.newRoutesCmd(),
		a.newVerbsCmd(),
		a.newGetCmd(),
		a.newCheckCmd(),
		a.newPublishCmd(),
		a.newDiffCmd(),
		a.newSnapshotsCmd(),
		a.newImportCmd(),
		a.newTokenCmd(),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = logrus.New()
	a.logger.SetOutput(cmd.ErrOrStderr())
	a.logger.SetLevel(logrus.WarnLevel)
	if a.verbose {
		a.logger.SetLevel(logrus.DebugLevel)
	}
	return nil
}

func (a *app) close(*cobra.Command, []string) error {
	if a.container == nil {
		return nil
	}
	err := a.container.Close()
	a.container = nil
	return err
}

// catalog returns a container without a snapshot store
func (a *app) catalog() (*server.Container, error) {
	if a.container != nil {
		return a.container, nil
	}
	c, err := server.NewReadOnlyContainer(a.cfg, a.logger)
	if err != nil {
		return nil, err
	}
	a.container = c
	return c, nil
}

// snapshots returns a container with the snapshot store opened
func (a *app) snapshots() (*server.Container, error) {
	if a.container != nil && a.container.Migrations() != nil {
		return a.container, nil
	}
	if err := a.close(nil, nil); err != nil {
		return nil, err
	}
	c, err := server.NewContainer(a.cfg, a.logger)
	if err != nil {
		return nil, err
	}
	a.container = c
	return c, nil
}

// print writes v as indented JSON with --json and as YAML otherwise
func (a *app) print(w io.Writer, v any) error {
	if a.jsonOutput {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format JSON output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	_, err = fmt.Fprint(w, string(data))
	return err
}
