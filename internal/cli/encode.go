package cli

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/hufftree"
)

func (a *app) encodeCommand() *cobra.Command {
	var table, output, format string

	cmd := &cobra.Command{
		Use:   "encode [FILE]",
		Short: "Encode a file with a Huffman code table",
		Long: `Encode a file with a Huffman code table.

In binary format the bits are packed most significant bit first and the last
byte is padded with zeros; pass the reported bit count to "decode --bits" to
ignore the padding.`,
		Example: `hufftree encode -t book.codes book.txt -o book.bin`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = stringFlag(cmd, "format", format, a.cfg.BitsFormat)
			if !lo.Contains(bitFormats, format) {
				return errors.Errorf("unknown bit format %q", format)
			}

			t, err := a.readTable(stringFlag(cmd, "table", table, a.cfg.Table))
			if err != nil {
				return err
			}

			in, err := a.open(cmd, argOr(args, 0, "-"))
			if err != nil {
				return err
			}
			data, err := io.ReadAll(in)
			in.Close()
			if err != nil {
				return errors.WithMessage(err, "read input")
			}

			var bits int64
			err = a.writeOutput(cmd, output, func(bufw *bufio.Writer) error {
				var err error
				switch format {
				case formatBinary:
					bw := hufftree.NewBitWriter(bufw)
					err = t.Encode(bw, data)
					if err == nil {
						err = bw.Flush()
					}
					bits = bw.Bits()
				case formatText:
					tw := hufftree.NewTextBitWriter(bufw)
					err = t.Encode(tw, data)
					bits = tw.Bits()
				}
				return errors.WithMessage(err, "encode")
			})
			if err != nil {
				return err
			}

			pterm.Debug.Printfln("encoded %d symbols into %d bits", len(data), bits)
			if output != "-" {
				pterm.Success.Printfln("wrote %d bits to %s", bits, output)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&table, "table", "t", "", "code table to read (default $"+EnvTable+")")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "where to write the bits")
	cmd.Flags().StringVar(&format, "format", formatBinary, "bit format: binary or text (default $"+EnvBitsFormat+")")
	return cmd
}
