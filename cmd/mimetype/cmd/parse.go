package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mimetype"
)

var parseCmd = &cobra.Command{
	Use:   "parse value",
	Short: "Parse a media type and print its normalized form",
	Args:  cobra.ExactArgs(1),
	RunE:  RunParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func RunParse(cmd *cobra.Command, args []string) error {
	mt, err := mimetype.Parse(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, mt.String())
	fmt.Fprintf(out, "type:    %s\n", mt.Type())
	fmt.Fprintf(out, "subtype: %s\n", mt.Subtype())
	for _, name := range mt.Parameters().Names() {
		fmt.Fprintf(out, "param:   %s=%s\n", name, mt.Parameter(name))
	}

	return nil
}
