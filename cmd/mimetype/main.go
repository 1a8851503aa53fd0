package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-mimetype/cmd/mimetype/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
