package cmd

import (
	"fmt"

	"github.com/posener/complete"
	"github.com/spf13/cobra"

	"github.com/Privex/go-steemengine/seng"
)

var orderbookParams = seng.OrderbookParams{Side: seng.Buy}

// orderbookCmd represents the orderbook command
var orderbookCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orderbook SYMBOL",
		Short: "Show open market orders for a token",
		Args:  cobra.ExactArgs(1),
		Run:   getOrderbook,
	}
	cmd.Flags().StringVar((*string)(&orderbookParams.Side), "side", "buy",
		`Order book side: "buy" or "sell"`)
	cmd.Flags().StringVar(&orderbookParams.Account, "account", "",
		"Only show orders placed by this account")
	cmd.Flags().IntVar(&orderbookParams.Limit, "limit", 200,
		"Amount of orders to retrieve")
	cmd.Flags().IntVar(&orderbookParams.Offset, "offset", 0,
		"Amount of orders to skip")
	rootCmd.AddCommand(cmd)
	orderbookCmplCmd := complete.Command{Flags: mergeFlags(apiCmplFlags,
		complete.Flags{"--side": complete.PredictSet("buy", "sell")})}
	rootCmplCmd.Sub["orderbook"] = orderbookCmplCmd
	rootCmplCmd.Sub["help"].Sub["orderbook"] = complete.Command{}
	generateCmplFlags(cmd, orderbookCmplCmd.Flags)
	return cmd
}()

func getOrderbook(_ *cobra.Command, args []string) {
	orderbookParams.Symbol = args[0]
	orders, err := Client.GetOrderbook(cmdCtx(), orderbookParams)
	if err != nil {
		errExit(err)
	}
	for _, o := range orders {
		fmt.Printf("%s\t%s x %s @ %s\t%s\n", o.Account, o.Symbol,
			o.Quantity, o.Price, o.Time())
	}
}
