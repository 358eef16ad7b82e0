package cmd

import (
	"fmt"

	"github.com/posener/complete"
	"github.com/spf13/cobra"
)

// tokenCmd represents the token command
var tokenCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token SYMBOL",
		Short: "Show one token's definition",
		Args:  cobra.ExactArgs(1),
		Run:   getToken,
	}
	rootCmd.AddCommand(cmd)
	tokenCmplCmd := complete.Command{Flags: mergeFlags(apiCmplFlags)}
	rootCmplCmd.Sub["token"] = tokenCmplCmd
	rootCmplCmd.Sub["help"].Sub["token"] = complete.Command{}
	generateCmplFlags(cmd, tokenCmplCmd.Flags)
	return cmd
}()

func getToken(_ *cobra.Command, args []string) {
	t, err := Client.GetToken(cmdCtx(), args[0])
	if err != nil {
		errExit(err)
	}
	if t == nil {
		errExit(fmt.Errorf("token %s does not exist", args[0]))
	}
	fmt.Println("Symbol:            ", t.Symbol)
	fmt.Println("Name:              ", t.Name)
	fmt.Println("Issuer:            ", t.Issuer)
	fmt.Println("Precision:         ", t.Precision)
	fmt.Println("Supply:            ", t.Supply)
	fmt.Println("Max Supply:        ", t.MaxSupply)
	fmt.Println("Circulating Supply:", t.CirculatingSupply)
	if t.Metadata.URL != "" {
		fmt.Println("URL:               ", t.Metadata.URL)
	}
}
