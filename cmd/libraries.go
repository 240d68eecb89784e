package cmd

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// librariesCmd represents the libraries command
var librariesCmd = &cobra.Command{
	Use:     "libraries",
	Short:   "List the server's library sections",
	Long:    `List every library section the server reports, with its id, kind and whether plexcsv can export it.`,
	PreRunE: initializeApp,
	RunE:    runLibraries,
}

func init() {
	rootCmd.AddCommand(librariesCmd)
}

func runLibraries(cmd *cobra.Command, args []string) error {
	libs, err := plexClient.Libraries(context.Background())
	if err != nil {
		return err
	}

	if len(libs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No libraries found.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"ID", "Title", "Kind", "Exportable"})
	for _, lib := range libs {
		exportable := "no"
		if lib.Supported() {
			exportable = "yes"
		}
		t.AppendRow(table.Row{lib.Key, lib.Title, lib.Type, exportable})
	}
	t.Render()

	return nil
}
