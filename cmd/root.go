package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"currency-registry/app"
	"currency-registry/codec"
	"currency-registry/config"
	"currency-registry/logging"
	"currency-registry/metrics"
	"currency-registry/registry"
	"currency-registry/store"
)

var (
	// Shared across commands and REPL iterations.
	currencyService *app.CurrencyService
	moneyCodec      *codec.Codec
	logger          zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "currency-cli",
	Short: "Look up currencies and round money amounts",
	Long: `currency-cli works against an in-memory registry seeded with ISO-4217.

It looks up currency definitions by code and namespace, lists namespaces,
registers custom currencies and rounds amounts to a currency's minor unit.
Custom registrations only live for the process, so use the repl command to
chain them.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	if currencyService != nil {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	currencyService = newService(cfg, prometheus.NewRegistry())
	moneyCodec = codec.New(currencyService.Registry(), cfg.Rounding())
	return nil
}

func newService(cfg *config.Config, promReg prometheus.Registerer) *app.CurrencyService {
	logger = logging.New(cfg)

	var opts []registry.Option
	if !cfg.SeedHistoric {
		opts = append(opts, registry.WithoutHistoric())
	}
	reg := registry.NewISO4217(opts...)
	logger.Debug().Int("currencies", reg.Len()).Bool("historic", cfg.SeedHistoric).Msg("registry seeded")

	return app.NewCurrencyService(reg,
		store.NewInMemoryEventStore(),
		store.NewInMemorySnapshotStore(),
		app.WithLogger(logger),
		app.WithMetrics(metrics.New(promReg)),
		app.WithSnapshotFrequency(cfg.SnapshotFrequency),
		app.WithRoundingMode(cfg.Rounding()),
	)
}

// resetFlags puts every flag that was set back to its default so a REPL line
// does not inherit flags from the previous one.
func resetFlags(c *cobra.Command) {
	c.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long:  `Starts a Read-Eval-Print Loop so custom registrations persist between commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Starting currency CLI REPL. Type 'exit' or 'quit' to exit.")

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				break
			}
			input := strings.TrimSpace(scanner.Text())
			if input == "exit" || input == "quit" {
				break
			}
			if input == "" {
				continue
			}

			commandArgs, err := splitArgs(input)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				continue
			}
			if len(commandArgs) > 0 && commandArgs[0] == "repl" {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error: already in a REPL session")
				continue
			}

			resetFlags(rootCmd)
			rootCmd.SetArgs(commandArgs)
			// cobra has already printed the error
			_ = rootCmd.Execute()
		}

		fmt.Fprintln(out, "Exiting REPL.")
		return scanner.Err()
	},
}

// splitArgs splits a REPL line on spaces, keeping double-quoted runs together.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quoted  bool
		started bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case r == ' ' && !quoted:
			if started {
				args = append(args, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}
	if quoted {
		return nil, fmt.Errorf("unterminated quote in %q", line)
	}
	if started {
		args = append(args, current.String())
	}
	return args, nil
}
