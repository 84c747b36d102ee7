package cli

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/chronos-tachyon/hufftree"
)

func (a *app) countCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "count [FILE]",
		Short:   "Print the symbol frequencies of a file",
		Example: `hufftree count book.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ft, err := a.countFile(cmd, argOr(args, 0, "-"))
			if err != nil {
				return err
			}

			data := pterm.TableData{{"Symbol", "Char", "Count"}}
			for _, sym := range symbolsByFrequency(&ft) {
				data = append(data, []string{
					strconv.Itoa(int(sym)),
					printable(sym),
					strconv.FormatUint(ft[sym], 10),
				})
			}
			out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// symbolsByFrequency lists the symbols present in ft, most frequent first.
func symbolsByFrequency(ft *hufftree.FrequencyTable) []hufftree.Symbol {
	syms := ft.Symbols()
	slices.SortFunc(syms, func(a, b hufftree.Symbol) bool {
		if ft[a] != ft[b] {
			return ft[a] > ft[b]
		}
		return a < b
	})
	return syms
}

func printable(sym hufftree.Symbol) string {
	return strconv.QuoteToASCII(string([]byte{byte(sym)}))
}
