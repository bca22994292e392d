package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fecforge/bchkit/pkg/frame"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <input-file>",
	Short: "Protect a file with BCH parity",
	Long: `Encode a file into a sequence of self-describing frames, each
carrying one payload chunk and its BCH parity.

Example:
  bchkit encode firmware.bin -o firmware.bch`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
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
		if output == "" {
			output = args[0] + ".bch"
		}

		chunk := codec.MaxPayload()
		var out []byte
		frames := 0
		for off := 0; off < len(input) || frames == 0; off += chunk {
			end := off + chunk
			if end > len(input) {
				end = len(input)
			}
			payload := input[off:end]

			var parity []byte
			if _, err := codec.EncodeSplit(payload, &parity); err != nil {
				fmt.Printf("Error encoding chunk %d: %v\n", frames, err)
				return
			}

			raw, err := frame.New(uint8(fieldOrder), uint8(correction), payload, parity).Marshal()
			if err != nil {
				fmt.Printf("Error framing chunk %d: %v\n", frames, err)
				return
			}
			out = append(out, raw...)
			frames++
		}

		if err := os.WriteFile(output, out, 0644); err != nil {
			fmt.Printf("Error writing output: %v\n", err)
			return
		}

		fmt.Printf("Encoded %d bytes into %d frames (%d bytes) using %s\n",
			len(input), frames, len(out), codec.String())
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringP("output", "o", "", "Output file (default: <input>.bch)")
}
