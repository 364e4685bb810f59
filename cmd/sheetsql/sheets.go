package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/sheetsql/pkg/source"
)

func init() {
	rootCmd.AddCommand(sheetsCmd)
}

var sheetsCmd = &cobra.Command{
	Use:   "sheets <file>",
	Short: "List the sheet names in a workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wb, err := source.Open(args[0], 0)
		if err != nil {
			return err
		}
		defer wb.Close()

		for _, name := range wb.Sheets() {
			fmt.Println(name)
		}
		return nil
	},
}
