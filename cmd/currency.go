package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"currency-registry/app"
	"currency-registry/domain"
)

var (
	lookupNamespace string

	listNamespace string
	listValidOn   string

	regCmd   app.RegisterCurrencyCommand
	unregCmd app.UnregisterCurrencyCommand
)

var lookupCmd = &cobra.Command{
	Use:   "lookup CODE",
	Short: "Show a currency definition",
	Long: `Looks up a currency code. Without --namespace every namespace is searched
and a code defined in more than one of them is reported as ambiguous.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := currencyService.Lookup(app.LookupQuery{Code: args[0], Namespace: lookupNamespace})
		if err != nil {
			return fmt.Errorf("lookup failed: %w", err)
		}
		printCurrency(cmd.OutOrStdout(), c)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List currency definitions",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := app.ListQuery{Namespace: listNamespace}
		if listValidOn != "" {
			t, err := time.Parse(time.DateOnly, listValidOn)
			if err != nil {
				return fmt.Errorf("invalid --valid-on %q, expected YYYY-MM-DD", listValidOn)
			}
			q.ValidOn = t
		}

		currencies := currencyService.List(q)
		if len(currencies) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No currencies found.")
			return nil
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tNUM\tDIGITS\tNAMESPACE\tVALIDITY\tNAME")
		for _, c := range currencies {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				c.Code(), c.NumericCode(), c.Digits(), c.Namespace(), validity(c), c.EnglishName())
		}
		return w.Flush()
	},
}

var namespacesCmd = &cobra.Command{
	Use:   "namespaces",
	Short: "List namespaces holding at least one currency",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, ns := range currencyService.Namespaces() {
			fmt.Fprintln(cmd.OutOrStdout(), ns)
		}
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a custom currency",
	Long: `Registers a custom currency in a namespace. Digits is a number of
fractional digits (0-28), "N.A." for units without a subdivision, or "1/5"
for currencies divided into fifths.

e.g. register --code XYZ --namespace CUSTOM --digits 3 --name "Test unit"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := currencyService.Register(regCmd)
		if err != nil {
			return fmt.Errorf("failed to register currency: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Currency '%s' registered in %s.\n", c.Code(), c.Namespace())
		return nil
	},
}

var unregisterCmd = &cobra.Command{
	Use:   "unregister CODE",
	Short: "Remove a custom currency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		unregCmd.Code = args[0]
		c, err := currencyService.Unregister(unregCmd)
		if err != nil {
			return fmt.Errorf("failed to unregister currency: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Currency '%s' removed from %s.\n", c.Code(), c.Namespace())
		return nil
	},
}

func validity(c domain.Currency) string {
	from, hasFrom := c.ValidFrom()
	to, hasTo := c.ValidTo()
	switch {
	case !hasFrom && !hasTo:
		return "-"
	case !hasTo:
		return "from " + from.Format(time.DateOnly)
	case !hasFrom:
		return "until " + to.Format(time.DateOnly)
	}
	return from.Format(time.DateOnly) + ".." + to.Format(time.DateOnly)
}

func printCurrency(out io.Writer, c domain.Currency) {
	fmt.Fprintf(out, "Code:         %s\n", c.Code())
	fmt.Fprintf(out, "Namespace:    %s\n", c.Namespace())
	if c.NumericCode() != "" {
		fmt.Fprintf(out, "Numeric code: %s\n", c.NumericCode())
	}
	fmt.Fprintf(out, "Name:         %s\n", c.EnglishName())
	fmt.Fprintf(out, "Symbol:       %s\n", c.Symbol())
	fmt.Fprintf(out, "Digits:       %s (minor unit %s)\n", c.Digits(), c.Digits().MinorUnit())
	fmt.Fprintf(out, "Validity:     %s\n", validity(c))
	if !c.IsValid() {
		fmt.Fprintln(out, "Status:       not valid today")
	}
}

func init() {
	rootCmd.AddCommand(lookupCmd, listCmd, namespacesCmd, registerCmd, unregisterCmd)

	lookupCmd.Flags().StringVarP(&lookupNamespace, "namespace", "n", "", "Namespace to search (all namespaces if empty)")

	listCmd.Flags().StringVarP(&listNamespace, "namespace", "n", "", "Only list this namespace")
	listCmd.Flags().StringVar(&listValidOn, "valid-on", "", "Only list currencies valid on this date (YYYY-MM-DD)")

	registerCmd.Flags().StringVar(&regCmd.Code, "code", "", "Currency code (required)")
	registerCmd.Flags().StringVarP(&regCmd.Namespace, "namespace", "n", "", "Namespace for the currency (required)")
	registerCmd.Flags().StringVar(&regCmd.Digits, "digits", "2", "Fractional digits, N.A. or 1/5")
	registerCmd.Flags().StringVar(&regCmd.NumericCode, "numeric", "", "Numeric code")
	registerCmd.Flags().StringVar(&regCmd.EnglishName, "name", "", "English name")
	registerCmd.Flags().StringVar(&regCmd.Symbol, "symbol", "", "Display symbol")
	registerCmd.Flags().StringVar(&regCmd.ValidFrom, "valid-from", "", "First valid day (YYYY-MM-DD)")
	registerCmd.Flags().StringVar(&regCmd.ValidTo, "valid-to", "", "Last valid day (YYYY-MM-DD)")
	_ = registerCmd.MarkFlagRequired("code")
	_ = registerCmd.MarkFlagRequired("namespace")

	unregisterCmd.Flags().StringVarP(&unregCmd.Namespace, "namespace", "n", "", "Namespace of the currency (required)")
	unregisterCmd.Flags().StringVar(&unregCmd.Reason, "reason", "", "Why the currency is removed")
	_ = unregisterCmd.MarkFlagRequired("namespace")
}
