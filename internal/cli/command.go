package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	searchCommandName = "search"
	statePathFlag     = "--state-path"
)

// NewRootCommand builds the docsearch command tree. The exit code of the
// command that ran is stored in *code.
func NewRootCommand(s Streams, code *int) *cobra.Command {
	var (
		statePath string
		verbose   bool
	)
	resolveStatePath := func() string {
		if statePath != "" {
			return statePath
		}
		p, err := DefaultStatePath()
		if err != nil {
			newLogger(s.Err, verbose).Warn("state disabled", "err", err)
			return ""
		}
		return p
	}

	root := &cobra.Command{
		Use:           "docsearch",
		Short:         "Incremental search inside a document, from the cursor onward",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(s.In)
	root.SetOut(s.Out)
	root.SetErr(s.Err)
	root.PersistentFlags().StringVar(&statePath, statePathFlag[2:], "", "file holding the previous query (default $XDG_STATE_HOME/docsearch/state.toml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	search := DefaultConfig()
	searchCmd := &cobra.Command{
		Use:   searchCommandName + " FILE",
		Short: "Find the next occurrence of a query after the cursor",
		Long: "Find the next occurrence of a query after the cursor, wrapping to the top\n" +
			"of the document. FILE - reads stdin. Exits 0 if found, 1 if not, 2 on error.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			search.Path = args[0]
			search.StatePath = resolveStatePath()
			search.Verbose = verbose
			*code = Run(search, s)
			return nil
		},
	}
	fs := searchCmd.Flags()
	fs.StringVarP(&search.Query, "query", "q", "", "text to find (default: the selected text)")
	fs.BoolVar(&search.Regex, "regex", false, "treat the query as a regular expression")
	fs.BoolVar(&search.MatchCase, "match-case", false, "match case exactly")
	addSessionFlags(fs, &search)

	repeat := DefaultConfig()
	repeat.Repeat = true
	repeatCmd := &cobra.Command{
		Use:   "repeat FILE",
		Short: "Repeat the previous search from the cursor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repeat.Path = args[0]
			repeat.StatePath = resolveStatePath()
			repeat.Verbose = verbose
			*code = Run(repeat, s)
			return nil
		},
	}
	addSessionFlags(repeatCmd.Flags(), &repeat)

	var clear bool
	stateCmd := &cobra.Command{
		Use:   "state",
		Short: "Print or clear the stored previous query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := resolveStatePath()
			if p == "" {
				*code = ExitError
				return nil
			}
			*code = RunState(p, clear, verbose, s)
			return nil
		},
	}
	stateCmd.Flags().BoolVar(&clear, "clear", false, "forget the stored query")

	root.AddCommand(searchCmd, repeatCmd, stateCmd)
	return root
}

func addSessionFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Cursor, "cursor", cfg.Cursor, "cursor offset in characters")
	fs.IntVar(&cfg.SelectFrom, "select-from", cfg.SelectFrom, "select from this offset to the cursor (-1: no selection)")
	fs.IntVarP(&cfg.Count, "count", "n", cfg.Count, "number of consecutive searches")
	fs.BoolVar(&cfg.NoWrap, "no-wrap", false, "do not wrap to the start of the document")
	fs.BoolVarP(&cfg.PCRE, "pcre", "P", false, "use PCRE (lookaround, backreferences)")
	fs.BoolVar(&cfg.JSONOutput, "json", false, "print JSON Lines")
	fs.Var(&cfg.Color, "color", "colorize output: auto, always, never")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "viewport width in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "viewport height in lines")
	fs.Int64Var(&cfg.MmapThreshold, "mmap-threshold", cfg.MmapThreshold, "map files of at least this many bytes")
}

// Execute runs docsearch with args (without the program name) after the
// config file defaults, and returns the exit code.
func Execute(args []string, s Streams) int {
	code := ExitFound // help and usage
	root := NewRootCommand(s, &code)
	root.SetArgs(withConfigArgs(args, LoadConfigArgs()))
	if err := root.Execute(); err != nil {
		newLogger(s.Err, false).Error(err.Error())
		return ExitError
	}
	return code
}

// Main is the entry point for cmd/docsearch.
func Main() {
	os.Exit(Execute(os.Args[1:], StdStreams()))
}
