package cmd

import (
	"fmt"

	"github.com/posener/complete"
	"github.com/spf13/cobra"

	"github.com/Privex/go-steemengine/rpc"
)

var historyParams rpc.HistoryParams

// historyCmd represents the history command
var historyCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history ACCOUNT",
		Short: "Get token transaction history for an account",
		Args:  cobra.ExactArgs(1),
		Run:   getHistory,
	}
	cmd.Flags().StringVarP(&historyParams.Symbol, "symbol", "s", "",
		"Only show transactions of this token")
	cmd.Flags().IntVar(&historyParams.Limit, "limit", 100,
		"Return this many transactions")
	cmd.Flags().IntVar(&historyParams.Offset, "offset", 0,
		"Skip this many transactions (for pagination)")
	rootCmd.AddCommand(cmd)
	historyCmplCmd := complete.Command{Flags: mergeFlags(apiCmplFlags)}
	rootCmplCmd.Sub["history"] = historyCmplCmd
	rootCmplCmd.Sub["help"].Sub["history"] = complete.Command{}
	generateCmplFlags(cmd, historyCmplCmd.Flags)
	return cmd
}()

func getHistory(_ *cobra.Command, args []string) {
	historyParams.Account = args[0]
	txs, err := Client.ListTransactions(cmdCtx(), historyParams)
	if err != nil {
		errExit(err)
	}
	for _, tx := range txs {
		fmt.Printf("%s\t%s sent %s %s to %s\t%s\n", tx.Timestamp,
			tx.From, tx.Quantity, tx.Symbol, tx.To, tx.Memo)
	}
}
