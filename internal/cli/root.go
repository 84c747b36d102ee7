package cli

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/hufftree"
)

const (
	formatBinary = "binary"
	formatText   = "text"
)

var bitFormats = []string{formatBinary, formatText}

type app struct {
	fs        afero.Fs
	lookupEnv func(string) (string, bool)
	cfg       Config
	debug     bool
}

// NewRootCommand returns the hufftree command tree.  All files are read from
// and written to fs; lookupEnv is consulted for configuration.
func NewRootCommand(fs afero.Fs, lookupEnv func(string) (string, bool)) *cobra.Command {
	a := &app{fs: fs, lookupEnv: lookupEnv}

	rootCmd := &cobra.Command{
		Use:           "hufftree",
		Short:         "Build, store, and apply Huffman code tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Output files default to stdout, so messages go elsewhere.
			pterm.SetDefaultOutput(cmd.ErrOrStderr())
			if a.debug {
				pterm.EnableDebugMessages()
			} else {
				pterm.DisableDebugMessages()
			}
			cfg, err := LoadConfig(a.fs, a.lookupEnv, DefaultEnvFiles...)
			if err != nil {
				return errors.WithMessage(err, "load config")
			}
			a.cfg = cfg
			pterm.Debug.Printfln("config: %+v", cfg)
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "print debug messages")

	rootCmd.AddCommand(
		a.countCommand(),
		a.buildCommand(),
		a.codesCommand(),
		a.encodeCommand(),
		a.decodeCommand(),
	)
	return rootCmd
}

// stringFlag returns the flag's value if it was given on the command line,
// and fallback otherwise.
func stringFlag(cmd *cobra.Command, name string, value string, fallback string) string {
	if cmd.Flags().Changed(name) || fallback == "" {
		return value
	}
	return fallback
}

func argOr(args []string, index int, fallback string) string {
	if index < len(args) {
		return args[index]
	}
	return fallback
}

func (a *app) open(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := a.fs.Open(path)
	if err != nil {
		return nil, errors.WithMessage(err, "open input")
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func (a *app) create(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}
	f, err := a.fs.Create(path)
	if err != nil {
		return nil, errors.WithMessage(err, "create output")
	}
	return f, nil
}

// writeOutput hands a buffered writer for path to fn, then flushes and
// closes it.  The output is closed exactly once, whether or not fn fails.
func (a *app) writeOutput(cmd *cobra.Command, path string, fn func(bufw *bufio.Writer) error) error {
	out, err := a.create(cmd, path)
	if err != nil {
		return err
	}
	bufw := bufio.NewWriter(out)
	err = fn(bufw)
	if err == nil {
		err = errors.WithMessage(bufw.Flush(), "write output")
	}
	if closeErr := out.Close(); err == nil {
		err = errors.WithMessage(closeErr, "write output")
	}
	return err
}

func (a *app) readTable(path string) (*hufftree.Tree, error) {
	if path == "" {
		return nil, errors.Errorf("no code table given, use --table or %s", EnvTable)
	}
	f, err := a.fs.Open(path)
	if err != nil {
		return nil, errors.WithMessage(err, "open table")
	}
	defer f.Close()

	t, err := hufftree.ReadTable(f)
	if err != nil {
		return nil, errors.WithMessage(err, "read table "+path)
	}
	pterm.Debug.Printfln("loaded %s from %s", t, path)
	return t, nil
}

func (a *app) countFile(cmd *cobra.Command, path string) (hufftree.FrequencyTable, error) {
	in, err := a.open(cmd, path)
	if err != nil {
		return hufftree.FrequencyTable{}, err
	}
	defer in.Close()
	return hufftree.CountFrequencies(in)
}
