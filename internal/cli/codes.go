package cli

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/chronos-tachyon/hufftree"
)

type symbolCode struct {
	sym hufftree.Symbol
	hc  hufftree.Code
}

func (a *app) codesCommand() *cobra.Command {
	var table, output string

	cmd := &cobra.Command{
		Use:     "codes",
		Short:   "List the codes in a Huffman code table",
		Example: `hufftree codes -t book.codes --output yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.readTable(stringFlag(cmd, "table", table, a.cfg.Table))
			if err != nil {
				return err
			}

			var text []byte
			switch output {
			case "table":
				var codes []symbolCode
				t.Walk(func(sym hufftree.Symbol, hc hufftree.Code) {
					codes = append(codes, symbolCode{sym, hc})
				})
				rows := lo.Map(codes, func(item symbolCode, index int) []string {
					return []string{
						strconv.Itoa(int(item.sym)),
						printable(item.sym),
						strconv.Itoa(item.hc.Len()),
						item.hc.Path(),
					}
				})
				data := append(pterm.TableData{{"Symbol", "Char", "Bits", "Code"}}, rows...)
				str, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
				if err != nil {
					return err
				}
				text = []byte(str + "\n")
			case "json":
				text, err = json.MarshalIndent(t, "", "  ")
				text = append(text, '\n')
			case "yaml":
				text, err = yaml.Marshal(t)
			default:
				return errors.Errorf("unknown output format %q", output)
			}
			if err != nil {
				return errors.WithMessage(err, "format codes")
			}

			_, err = cmd.OutOrStdout().Write(text)
			return err
		},
	}
	cmd.Flags().StringVarP(&table, "table", "t", "", "code table to read (default $"+EnvTable+")")
	cmd.Flags().StringVar(&output, "output", "table", "output format: table, json, or yaml")
	return cmd
}
