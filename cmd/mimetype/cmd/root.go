package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "mimetype",
	Short: "Tools for inspecting and normalizing media types from HTTP-style headers",
}

func Execute() error {
	return rootCmd.Execute()
}
