package cmd

import (
	"fmt"

	"github.com/posener/complete"
	"github.com/spf13/cobra"
)

var balanceSymbol string

// balanceCmd represents the balance command
var balanceCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "balance ACCOUNT",
		Aliases: []string{"balances"},
		Short:   "Get token balances for an account",
		Long: `
Get all Engine token balances for ACCOUNT, or a single balance with --symbol.

An account with no balance row for a token holds zero of it; this is printed
as 0, not treated as an error.`[1:],
		Args: cobra.ExactArgs(1),
		Run:  getBalance,
	}
	cmd.Flags().StringVarP(&balanceSymbol, "symbol", "s", "",
		"Only show the balance of this token")
	rootCmd.AddCommand(cmd)
	balanceCmplCmd := complete.Command{Flags: mergeFlags(apiCmplFlags)}
	rootCmplCmd.Sub["balance"] = balanceCmplCmd
	rootCmplCmd.Sub["help"].Sub["balance"] = complete.Command{}
	generateCmplFlags(cmd, balanceCmplCmd.Flags)
	return cmd
}()

func getBalance(_ *cobra.Command, args []string) {
	account := args[0]
	if balanceSymbol != "" {
		bal, err := Client.GetTokenBalance(cmdCtx(), account, balanceSymbol)
		if err != nil {
			errExit(err)
		}
		fmt.Println(bal)
		return
	}
	balances, err := Client.GetBalances(cmdCtx(), account)
	if err != nil {
		errExit(err)
	}
	for _, bal := range balances {
		fmt.Printf("%s\t%s\n", bal.Symbol, bal.Balance)
	}
}
