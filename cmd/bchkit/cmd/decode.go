package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fecforge/bchkit/pkg/bch"
	"github.com/fecforge/bchkit/pkg/frame"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <input-file>",
	Short: "Recover a file from BCH frames",
	Long: `Decode a sequence of frames produced by encode, repairing bit
errors along the way.

Example:
  bchkit decode firmware.bch -o firmware.bin`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		verbose, _ := cmd.Flags().GetBool("verbose")
		fieldOrder, _ := cmd.Flags().GetUint("field-order")
		correction, _ := cmd.Flags().GetInt("correction")

		codec, ok := codecFromContext(cmd)
		if !ok {
			fmt.Printf("Error: codec not found in context\n")
			return
		}
		defer codec.Close()

		input, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Error reading input: %v\n", err)
			return
		}

		var out []byte
		frames := 0
		corrected := 0
		for off := 0; off < len(input); {
			f, consumed, err := frame.Unmarshal(input[off:])
			if err != nil {
				fmt.Printf("Error parsing frame %d at offset %d: %v\n", frames, off, err)
				return
			}
			off += consumed

			if f.FieldOrder != uint8(fieldOrder) || f.Correction != uint8(correction) {
				fmt.Printf("Error: frame %d was encoded with m=%d t=%d, decoder is running m=%d t=%d\n",
					frames, f.FieldOrder, f.Correction, fieldOrder, correction)
				return
			}

			var positions []int
			count, err := codec.DecodeSplit(f.Payload, f.Parity, &positions)
			if errors.Is(err, bch.ErrUncorrectable) {
				fmt.Printf("Error: frame %d is uncorrectable, %s repairs at most %d bit errors\n",
					frames, codec.String(), codec.T())
				return
			}
			if err != nil {
				fmt.Printf("Error decoding frame %d: %v\n", frames, err)
				return
			}
			if verbose && count > 0 {
				fmt.Printf("frame %d: repaired %d bit errors at %v\n", frames, count, positions)
			}

			out = append(out, f.Payload...)
			corrected += count
			frames++
		}

		if output == "" {
			output = args[0] + ".out"
		}
		if err := os.WriteFile(output, out, 0644); err != nil {
			fmt.Printf("Error writing output: %v\n", err)
			return
		}

		fmt.Printf("Decoded %d frames into %d bytes, repaired %d bit errors\n",
			frames, len(out), corrected)
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringP("output", "o", "", "Output file (default: <input>.out)")
	decodeCmd.Flags().BoolP("verbose", "v", false, "Report repaired bit positions per frame")
}
