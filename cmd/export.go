package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"plexcsv/export"
)

var (
	outputPath string
	exportAll  bool
	force      bool
	filterExpr string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [library-id]",
	Short: "Export a library's metadata to a CSV file",
	Long: `Export the metadata of one Plex library to a CSV file, or every
supported library with --all. Movie, TV and music libraries each get
their own column schema. Pages are fetched sequentially; a failed page
aborts that library's export but not the rest of a batch run.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (default derives from the library name)")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "export every supported library")
	exportCmd.Flags().BoolVar(&force, "force", false, "overwrite existing output files")
	exportCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "only export records matching this expression")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportAll == (len(args) > 0) {
		return fmt.Errorf("specify either a library id or --all")
	}

	var opts []export.ExporterOption
	if !quiet {
		opts = append(opts, export.WithProgress(os.Stderr))
	}
	if filterExpr != "" {
		filter, err := export.NewFilter(filterExpr)
		if err != nil {
			return err
		}
		opts = append(opts, export.WithFilter(filter))
	}

	exporter := export.NewExporter(plexClient, logger, opts...)
	dispatcher := export.NewDispatcher(plexClient, exporter, logger, force)

	ctx := context.Background()

	if exportAll {
		if outputPath != "" {
			return fmt.Errorf("--output cannot be combined with --all; use export.dir")
		}
		results, err := dispatcher.ExportAll(ctx, cfg.Export.Dir)
		for _, result := range results {
			printResult(cmd.OutOrStdout(), result)
		}
		return err
	}

	key := args[0]
	out := outputPath
	if out == "" {
		lib, err := plexClient.Library(ctx, key)
		if err != nil {
			return err
		}
		out = filepath.Join(cfg.Export.Dir, lib.Title+".csv")
	}

	result, err := dispatcher.ExportLibrary(ctx, key, out)
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), result)
	return nil
}

func printResult(w io.Writer, result *export.Result) {
	fmt.Fprintf(w, "%s: %d records (%s)", result.Path, result.Exported, result.Status)
	if result.Skipped > 0 {
		fmt.Fprintf(w, ", %d skipped without title", result.Skipped)
	}
	if result.Filtered > 0 {
		fmt.Fprintf(w, ", %d filtered out", result.Filtered)
	}
	fmt.Fprintln(w)
}
