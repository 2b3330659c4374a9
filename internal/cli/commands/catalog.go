package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/buildsim-labs/oslens/internal/catalog"
	"github.com/buildsim-labs/oslens/internal/cli/config"
	"github.com/buildsim-labs/oslens/internal/loader"
)

// CatalogOptions holds options for the catalog command.
type CatalogOptions struct {
	Class   string
	Keyword string
	JSON    bool
}

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand() *cobra.Command {
	opts := &CatalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog <model.osm>",
		Short: "Print the object type and method catalog for a model",
		Long: `Load a model file and print every object type found in it together
with the methods callable on that type, one row per type/method pair.`,
		Example: `  # Full catalog
  oslens catalog building.osm

  # Only OS:Space rows
  oslens catalog building.osm --class OS:Space

  # Only setters, as JSON
  oslens catalog building.osm --keyword set --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.Class, "class", "", "Only show rows for this object type")
	cmd.Flags().StringVar(&opts.Keyword, "keyword", "", "Only show methods containing this keyword (case-insensitive)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}

func runCatalog(cmd *cobra.Command, path string, opts *CatalogOptions) error {
	cfg := config.GetCurrentConfig()
	logger := config.GetLogger(cmd.Context())

	ld := loader.New(logger)
	model, err := ld.Load(path, cfg.Translate)
	if err != nil {
		return err
	}

	builder := catalog.NewBuilder(logger)

	// Progress bar on stderr so stdout stays parseable
	pw := progress.NewWriter()
	pw.SetOutputWriter(cmd.ErrOrStderr())
	pw.SetUpdateFrequency(50 * time.Millisecond)
	tracker := &progress.Tracker{
		Message: "Analyzing objects",
		Total:   int64(model.NumObjects()),
		Units:   progress.UnitsDefault,
	}
	pw.AppendTracker(tracker)
	go pw.Render()

	builder.Progress = func(processed, _ int) {
		tracker.SetValue(int64(processed))
	}
	cat := builder.Build(model)

	tracker.MarkAsDone()
	pw.Stop()

	rows := cat.FilterRows(opts.Class, opts.Keyword)

	if opts.JSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Object Type (Class)", "Available Methods"})
	for _, row := range rows {
		t.AppendRow(table.Row{row.ObjectType, row.Method})
	}
	t.Render()
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "(%d of %d rows)\n", len(rows), len(cat.Rows()))

	return nil
}
