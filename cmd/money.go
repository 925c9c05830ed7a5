package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"currency-registry/app"
	"currency-registry/codec"
)

var (
	roundMode string
	parseJSON bool
)

var roundCmd = &cobra.Command{
	Use:   "round AMOUNT CURRENCY",
	Short: "Round an amount to a currency's minor unit",
	Long: `Rounds AMOUNT for CURRENCY, given as CODE or CODE;NAMESPACE.

e.g. round 10.005 EUR            -> 10.00 EUR
     round 1.3 MRU               -> 1.2 MRU
     round 10.5 JPY --mode half-away-from-zero -> 11 JPY`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := currencyService.Value(app.ValueCommand{Amount: args[0], Currency: args[1], Mode: roundMode})
		if err != nil {
			return fmt.Errorf("failed to round: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), codec.Format(m))
		return nil
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse TEXT",
	Short: "Parse a money value and print it normalised",
	Long: `Parses "<amount> <code>[;<namespace>]" or, with --json, the JSON form
{"amount":"10.00","currency":"EUR"}, and prints the rounded value in the other form.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if parseJSON {
			m, err := moneyCodec.Unmarshal([]byte(args[0]))
			if err != nil {
				return fmt.Errorf("failed to parse: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), codec.Format(m))
			return nil
		}

		m, err := moneyCodec.Parse(args[0])
		if err != nil {
			return fmt.Errorf("failed to parse: %w", err)
		}
		data, err := codec.Marshal(m)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(roundCmd, parseCmd)

	roundCmd.Flags().StringVarP(&roundMode, "mode", "m", "", "Rounding mode (half-even, half-away-from-zero, toward-zero, toward-positive-infinity, toward-negative-infinity)")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Input is JSON")
}
