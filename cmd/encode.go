package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toonlab/toonbench/internal/encoding"
)

var (
	encodeDataset string
	encodeKind    string
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Print the dataset in one or both notations without any API call",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(encodeDataset)
		if err != nil {
			return err
		}

		var kinds []encoding.Kind
		switch encodeKind {
		case "json":
			kinds = []encoding.Kind{encoding.KindJSON}
		case "toon":
			kinds = []encoding.Kind{encoding.KindTOON}
		case "both":
			kinds = []encoding.Kind{encoding.KindJSON, encoding.KindTOON}
		default:
			return fmt.Errorf("invalid --kind %q (want json, toon, or both)", encodeKind)
		}

		for _, kind := range kinds {
			p, err := encoding.Encode(ds, kind)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "--- %s (%d bytes) ---\n%s\n", kind, len(p.Text), p.Text)
		}
		return nil
	},
}

func init() {
	encodeCmd.Flags().StringVar(&encodeDataset, "dataset", "", "path to a JSON or YAML dataset (default: built-in sample)")
	encodeCmd.Flags().StringVar(&encodeKind, "kind", "both", "notation to print: json, toon, or both")
	rootCmd.AddCommand(encodeCmd)
}
