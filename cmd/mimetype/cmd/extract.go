package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mimetype"
)

var extractCmd = &cobra.Command{
	Use:   "extract [value...]",
	Short: "Apply the header merge rule to a list of Content-type values",
	Long: `Apply the standard merge rule to a list of Content-type values, given
in the order they occurred in the message. Values that fail to parse and
wildcard values are skipped, and a charset established by an earlier
value carries forward across later values of the same essence. With no
arguments, values are read from stdin, one per line.`,
	RunE: RunExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func RunExtract(cmd *cobra.Command, args []string) error {
	values := args
	if len(values) == 0 {
		s := bufio.NewScanner(cmd.InOrStdin())
		for s.Scan() {
			values = append(values, s.Text())
		}
		if err := s.Err(); err != nil {
			return err
		}
	}

	mt, err := mimetype.Extract(values)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), mt.String())
	return nil
}
