package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jask/finkit/internal/config"
	"github.com/jask/finkit/internal/ledger"
	"github.com/jask/finkit/internal/logging"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	store  *ledger.Store
	out    *ledger.Printer
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{out: ledger.NewPrinter(stdout)}
	var file string

	root := &cobra.Command{
		Use:           "ledger",
		Short:         "Personal finance ledger",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if file != "" {
				cfg.Ledger.Path = file
			}
			a.logger = logging.New(stderr, cfg.Log)
			a.store = ledger.NewStore(cfg.Ledger.Path)
			a.logger.Debug("ledger opened", "path", cfg.Ledger.Path)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				a.out.Usage("ledger <command> [args]")
				return nil
			}
			a.out.Unknown(args[0])
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&file, "file", "", "ledger file (default from config ledger.path)")

	root.AddCommand(a.addCmd(), a.balanceCmd(), a.historyCmd())
	return root
}

// addCmd takes its arguments verbatim so negative amounts are not read as
// flags. --file is picked out of the arguments by hand, and "--" ends that scan.
func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "add <amount> <category> <description...>",
		Short:              "Record a transaction (expenses are negative)",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
				return cmd.Help()
			}
			file, args, err := splitFileFlag(args)
			if err != nil {
				return err
			}
			if file != "" {
				a.store = ledger.NewStore(file)
				a.logger.Debug("ledger opened", "path", file)
			}
			if len(args) < 3 {
				a.out.Usage("add <amount> <category> <description>")
				return nil
			}
			amount, category, description := args[0], args[1], strings.Join(args[2:], " ")

			known, err := a.store.Categories()
			if err != nil {
				return err
			}
			tx, err := a.store.Add(amount, category, description)
			if err != nil {
				return err
			}
			a.logger.Debug("transaction added", "id", tx.ID, "category", tx.Category)
			a.out.Added(tx)
			if suggestion, ok := ledger.SuggestCategory(category, known); ok {
				a.out.Hint(category, suggestion)
			}
			return nil
		},
	}
}

// splitFileFlag removes --file <path> and --file=<path> from args. Everything
// after "--" is positional.
func splitFileFlag(args []string) (file string, rest []string, err error) {
	rest = make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return file, append(rest, args[i+1:]...), nil
		case arg == "--file":
			if i+1 >= len(args) {
				return "", nil, fmt.Errorf("flag needs an argument: --file")
			}
			file = args[i+1]
			i++
		case strings.HasPrefix(arg, "--file="):
			file = strings.TrimPrefix(arg, "--file=")
		default:
			rest = append(rest, arg)
		}
	}
	return file, rest, nil
}

func (a *app) balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the sum of all transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := a.store.Balance()
			if err != nil {
				return err
			}
			a.out.Balance(total)
			return nil
		},
	}
}

func (a *app) historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List the last ten transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			txs, err := a.store.History()
			if err != nil {
				return err
			}
			a.out.History(txs)
			return nil
		},
	}
}
