package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/datasets/internal/core"
)

type showFlags struct {
	path       string
	schemaPath string
	rows       int
	subset     int
}

func newShowCmd(a *app) *cobra.Command {
	f := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show [dataset]",
		Short: "Print the structure and first rows of a dataset, then of a subset",
		Example: `  datasets show icfes
  datasets show student --path data/students.csv --rows 10
  datasets show --schema schemas/custom.yaml`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("accepts at most one dataset, received %d", len(args))
			}
			if len(args) == 0 && f.schemaPath == "" {
				return fmt.Errorf("a dataset name or --schema is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return a.runShow(cmd, name, f)
		},
	}

	cmd.Flags().StringVar(&f.path, "path", "", "Data file (default: the dataset's conventional path)")
	cmd.Flags().StringVar(&f.schemaPath, "schema", "", "YAML schema file to use instead of a built-in dataset")
	cmd.Flags().IntVar(&f.rows, "rows", -1, "Preview rows of the full load (default from config)")
	cmd.Flags().IntVar(&f.subset, "subset", -1, "Rows in the subset load (default from config)")
	return cmd
}

func (a *app) runShow(cmd *cobra.Command, name string, f *showFlags) error {
	ds, err := resolveDataset(name, f.schemaPath)
	if err != nil {
		return err
	}

	// ICFES_PATH and STUDENT_PATH apply to the built-in datasets only; a
	// schema file's own path is not overridden.
	path := f.path
	if path == "" && f.schemaPath == "" {
		path = a.cfg.PathFor(ds.Name)
	}
	path = ds.Path(path)

	rows := a.cfg.Preview.Rows
	if f.rows >= 0 {
		rows = f.rows
	}
	subset := a.cfg.Preview.SubsetRows
	if f.subset >= 0 {
		subset = f.subset
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	full, err := core.LoadAll(ctx, path, ds.Schema)
	if err != nil {
		return err
	}
	if err := printTable(out, fmt.Sprintf("%s (%s)", ds.Label, path), full, rows); err != nil {
		return err
	}

	sub, err := core.LoadFirst(ctx, path, ds.Schema, subset)
	if err != nil {
		return err
	}
	return printTable(out, "Subset:", sub, subset)
}

// resolveDataset picks the schema file if given, otherwise a registered dataset.
func resolveDataset(name, schemaPath string) (core.Dataset, error) {
	if schemaPath != "" {
		return core.LoadSchemaFile(schemaPath)
	}
	ds, ok := core.Get(name)
	if !ok {
		return core.Dataset{}, fmt.Errorf("unknown dataset %q (known: %v)", name, core.Names())
	}
	return ds, nil
}

func printTable(w io.Writer, title string, tbl *core.Table, rows int) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", title); err != nil {
		return err
	}
	if err := tbl.Info(w); err != nil {
		return err
	}
	return tbl.Render(w, rows)
}
