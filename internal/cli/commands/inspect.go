package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/buildsim-labs/oslens/internal/catalog"
	"github.com/buildsim-labs/oslens/internal/cli/config"
	"github.com/buildsim-labs/oslens/internal/loader"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <model.osm> <object-type>",
		Short: "Show one example object of a type with its methods",
		Long: `Load a model file and print the first object of the given type:
its name, the methods callable on it, and its full IDF text.`,
		Example: `  oslens inspect building.osm OS:Space`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], args[1])
		},
	}
}

func runInspect(cmd *cobra.Command, path, typeName string) error {
	cfg := config.GetCurrentConfig()
	logger := config.GetLogger(cmd.Context())

	ld := loader.New(logger)
	model, err := ld.Load(path, cfg.Translate)
	if err != nil {
		return err
	}

	builder := catalog.NewBuilder(logger)
	cat := builder.Build(model)

	handle, ok := cat.Representative(typeName)
	if !ok {
		return fmt.Errorf("no objects of type %s in model", typeName)
	}
	obj, ok := model.Object(handle)
	if !ok {
		return fmt.Errorf("failed to retrieve example object for %s", typeName)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Object Type: %s\n", typeName)

	name := obj.Name()
	if name == "" {
		name = "N/A (no name)"
	}
	_, _ = fmt.Fprintf(out, "Name:        %s\n\n", name)

	if methods, ok := cat.Methods(typeName); ok && len(methods) > 0 {
		_, _ = fmt.Fprintln(out, "Methods:")
		_, _ = fmt.Fprintf(out, "  %s\n\n", strings.Join(methods, "\n  "))
	}

	_, _ = fmt.Fprintln(out, "Object Text (IDF Format):")
	_, _ = fmt.Fprintln(out, obj.Text())

	return nil
}
