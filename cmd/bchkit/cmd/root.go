package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fecforge/bchkit/pkg/bch"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bchkit",
	Short: "bchkit - BCH forward error correction toolkit",
	Long: `bchkit encodes payloads with BCH parity and repairs bit errors in
received codewords, from the command line or over a REST API.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		fieldOrder, _ := cmd.Flags().GetUint("field-order")
		correction, _ := cmd.Flags().GetInt("correction")
		primPoly, _ := cmd.Flags().GetUint32("prim-poly")

		codec, err := bch.New(bch.Config{
			FieldOrder:    fieldOrder,
			MinCorrection: correction,
			PrimitivePoly: primPoly,
		})
		if err != nil {
			return fmt.Errorf("failed to create codec: %w", err)
		}
		// Store in command context
		cmd.SetContext(context.WithValue(cmd.Context(), "codec", codec))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global code-selection flags
	rootCmd.PersistentFlags().UintP("field-order", "m", 8, "Galois field exponent m (codeword length 2^m-1 bits)")
	rootCmd.PersistentFlags().IntP("correction", "t", 2, "Minimum number of correctable bit errors")
	rootCmd.PersistentFlags().Uint32("prim-poly", 0, "Primitive polynomial override (0 = field default)")
}

// codecFromContext fetches the codec PersistentPreRunE placed on the command.
func codecFromContext(cmd *cobra.Command) (*bch.Codec, bool) {
	codec, ok := cmd.Context().Value("codec").(*bch.Codec)
	return codec, ok
}
