package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"currency-registry/app"
	"currency-registry/events"
)

var (
	historySkip  int
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the custom currency journal",
	Long:  `Prints the register and unregister events of this session, oldest first, with optional pagination.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := currencyService.History(app.GetHistoryQuery{Skip: historySkip, Limit: historyLimit})
		if err != nil {
			return fmt.Errorf("failed to get history: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(history) == 0 {
			fmt.Fprintln(out, "No custom currency changes recorded.")
			return nil
		}
		fmt.Fprintln(out, "--------------------------------------------------")
		for i, event := range history {
			fmt.Fprintf(out, "Event %d:\n", historySkip+i+1)
			printEventDetails(out, event)
			fmt.Fprintln(out, "--------------------------------------------------")
		}
		return nil
	},
}

func printEventDetails(out io.Writer, event events.Event) {
	base := event.GetBase()
	fmt.Fprintf(out, "  Type:      %s\n", base.Type)
	fmt.Fprintf(out, "  EventID:   %s\n", base.EventID)
	fmt.Fprintf(out, "  Version:   %d\n", base.Version)
	fmt.Fprintf(out, "  Timestamp: %s\n", base.Timestamp.Format(time.RFC3339))

	switch e := event.(type) {
	case events.CurrencyRegisteredEvent:
		fmt.Fprintf(out, "  Currency:  %s in %s (digits %s)\n", e.Currency.Code, e.Currency.Namespace, e.Currency.Digits)
	case events.CurrencyUnregisteredEvent:
		fmt.Fprintf(out, "  Currency:  %s in %s\n", e.Currency.Code, e.Currency.Namespace)
		if e.Reason != "" {
			fmt.Fprintf(out, "  Reason:    %s\n", e.Reason)
		}
	default:
		jsonData, err := json.MarshalIndent(event, "    ", "  ")
		if err != nil {
			fmt.Fprintf(out, "    Error marshalling event: %v\n", err)
			return
		}
		fmt.Fprintf(out, "  Details:\n    %s\n", jsonData)
	}
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historySkip, "skip", 0, "Number of events to skip")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "Maximum number of events to show (0 for no limit)")
}
