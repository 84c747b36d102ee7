package cli

import (
	"bufio"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/hufftree"
)

// errSource is a BitSource that may fail partway through.
type errSource interface {
	hufftree.BitSource
	Err() error
}

func (a *app) decodeCommand() *cobra.Command {
	var table, output, format string
	var bits int64
	var strict bool

	cmd := &cobra.Command{
		Use:     "decode [FILE]",
		Short:   "Decode bits with a Huffman code table",
		Example: `hufftree decode -t book.codes book.bin --bits 81234 -o book.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = stringFlag(cmd, "format", format, a.cfg.BitsFormat)
			if !lo.Contains(bitFormats, format) {
				return errors.Errorf("unknown bit format %q", format)
			}
			if !cmd.Flags().Changed("strict") {
				strict = a.cfg.Strict
			}

			t, err := a.readTable(stringFlag(cmd, "table", table, a.cfg.Table))
			if err != nil {
				return err
			}

			in, err := a.open(cmd, argOr(args, 0, "-"))
			if err != nil {
				return err
			}
			defer in.Close()

			var src errSource
			bufr := bufio.NewReader(in)
			switch format {
			case formatBinary:
				src = hufftree.NewBitReader(bufr, bits)
			case formatText:
				src = hufftree.NewTextBitReader(bufr)
			}

			d := hufftree.NewDecoder(t)
			var n int
			err = a.writeOutput(cmd, output, func(bufw *bufio.Writer) error {
				var err error
				n, err = d.Translate(src, bufw)
				if err == nil {
					err = src.Err()
				}
				return errors.WithMessage(err, "decode")
			})
			if err != nil {
				return err
			}

			pterm.Debug.Printfln("decoded %d symbols", n)
			if d.Truncated() {
				if strict {
					return hufftree.ErrTruncatedStream
				}
				pterm.Warning.Println("input ended partway through a code; the trailing bits were ignored")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&table, "table", "t", "", "code table to read (default $"+EnvTable+")")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "where to write the decoded text")
	cmd.Flags().StringVar(&format, "format", formatBinary, "bit format: binary or text (default $"+EnvBitsFormat+")")
	cmd.Flags().Int64Var(&bits, "bits", -1, "number of bits to decode in binary format; -1 reads to EOF")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail if the input ends partway through a code (default $"+EnvStrict+")")
	return cmd
}
