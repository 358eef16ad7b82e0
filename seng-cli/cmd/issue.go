package cmd

import (
	"fmt"

	"github.com/posener/complete"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var issueMemo string

// issueCmd represents the issue command
var issueCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue SYMBOL TO AMOUNT",
		Short: "Issue new tokens to an account",
		Long: `
Issue AMOUNT of SYMBOL to the account TO. The issuing account is taken from
the token's definition and the wallet daemon must hold its active key.`[1:],
		Args: cobra.ExactArgs(3),
		Run:  issueToken,
	}
	cmd.Flags().StringVarP(&issueMemo, "memo", "m", "",
		"Memo to attach to the issuance")
	rootCmd.AddCommand(cmd)
	issueCmplCmd := complete.Command{Flags: mergeFlags(apiCmplFlags)}
	rootCmplCmd.Sub["issue"] = issueCmplCmd
	rootCmplCmd.Sub["help"].Sub["issue"] = complete.Command{}
	generateCmplFlags(cmd, issueCmplCmd.Flags)
	return cmd
}()

func issueToken(_ *cobra.Command, args []string) {
	symbol, to := args[0], args[1]
	amount, err := decimal.NewFromString(args[2])
	if err != nil {
		errExit(fmt.Errorf("invalid amount %q: %v", args[2], err))
	}
	rec, err := Client.IssueToken(cmdCtx(), symbol, to, amount, issueMemo)
	printTxRecord(rec, err)
}
