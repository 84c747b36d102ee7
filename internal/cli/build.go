package cli

import (
	"bufio"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/hufftree"
)

func (a *app) buildCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "build [FILE]",
		Short:   "Build a Huffman code table from the symbol frequencies of a file",
		Example: `hufftree build book.txt -o book.codes`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ft, err := a.countFile(cmd, argOr(args, 0, "-"))
			if err != nil {
				return err
			}
			t, err := hufftree.Build(ft)
			if err != nil {
				return err
			}
			pterm.Debug.Printfln("built %s", t)

			err = a.writeOutput(cmd, output, func(bufw *bufio.Writer) error {
				_, err := hufftree.WriteTable(bufw, t)
				return errors.WithMessage(err, "write table")
			})
			if err != nil {
				return err
			}
			if output != "-" {
				pterm.Success.Printfln("wrote %d codes to %s", t.NumLeaves(), output)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "where to write the code table (never defaults to $"+EnvTable+")")
	return cmd
}
