package cmd

import (
	"fmt"

	"github.com/posener/complete"
	"github.com/spf13/cobra"
)

var (
	listLimit  int
	listOffset int
)

// tokensCmd represents the tokens command
var tokensCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "List all tokens on the Engine sidechain",
		Args:  cobra.ExactArgs(0),
		Run:   listTokens,
	}
	cmd.Flags().IntVar(&listLimit, "limit", 1000, "Amount of tokens to retrieve")
	cmd.Flags().IntVar(&listOffset, "offset", 0, "Amount of tokens to skip")
	rootCmd.AddCommand(cmd)
	tokensCmplCmd := complete.Command{Flags: mergeFlags(apiCmplFlags)}
	rootCmplCmd.Sub["tokens"] = tokensCmplCmd
	rootCmplCmd.Sub["help"].Sub["tokens"] = complete.Command{}
	generateCmplFlags(cmd, tokensCmplCmd.Flags)
	return cmd
}()

func listTokens(_ *cobra.Command, _ []string) {
	tokens, err := Client.ListTokens(cmdCtx(), listLimit, listOffset)
	if err != nil {
		errExit(err)
	}
	for _, t := range tokens {
		fmt.Printf("%s\t%d dp\tissuer: %s\tsupply: %s/%s\t%s\n",
			t.Symbol, t.Precision, t.Issuer,
			t.Supply, t.MaxSupply, t.Name)
	}
}
