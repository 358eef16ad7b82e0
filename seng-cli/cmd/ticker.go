package cmd

import (
	"fmt"

	"github.com/posener/complete"
	"github.com/spf13/cobra"

	"github.com/Privex/go-steemengine/seng"
)

// tickerCmd represents the ticker command
var tickerCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticker [SYMBOL]",
		Short: "Show market tickers",
		Args:  cobra.MaximumNArgs(1),
		Run:   getTicker,
	}
	rootCmd.AddCommand(cmd)
	tickerCmplCmd := complete.Command{Flags: mergeFlags(apiCmplFlags)}
	rootCmplCmd.Sub["ticker"] = tickerCmplCmd
	rootCmplCmd.Sub["help"].Sub["ticker"] = complete.Command{}
	generateCmplFlags(cmd, tickerCmplCmd.Flags)
	return cmd
}()

func getTicker(_ *cobra.Command, args []string) {
	if len(args) == 1 {
		t, err := Client.GetTicker(cmdCtx(), args[0])
		if err != nil {
			errExit(err)
		}
		printTicker(*t)
		return
	}
	tickers, err := Client.GetTickers(cmdCtx(), 0, 0)
	if err != nil {
		errExit(err)
	}
	for _, t := range tickers {
		printTicker(t)
	}
}

func printTicker(t seng.Ticker) {
	fmt.Printf("%s\tlast: %s\task: %s\tbid: %s\tvolume: %s\tchange: %s\n",
		t.Symbol, t.LastPrice, t.LowestAsk, t.HighestBid,
		t.Volume, t.PriceChangePercent)
}
