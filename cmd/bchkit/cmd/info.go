package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe the selected BCH code",
	Long: `Describe the BCH code selected by the global flags: its codeword
length, the number of bit errors it repairs, and how much payload fits.

Example:
  bchkit info -m 8 -t 2`,
	Run: func(cmd *cobra.Command, args []string) {
		codec, ok := codecFromContext(cmd)
		if !ok {
			fmt.Printf("Error: codec not found in context\n")
			return
		}
		defer codec.Close()

		fmt.Printf("Code:             %s\n", codec.String())
		fmt.Printf("Codeword length:  %d bits\n", codec.N())
		fmt.Printf("Correctable:      %d bit errors\n", codec.T())
		fmt.Printf("Parity:           %d bits (%d bytes)\n", codec.ECCBits(), codec.ECCBytes())
		fmt.Printf("Max payload:      %d bytes\n", codec.MaxPayload())
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
