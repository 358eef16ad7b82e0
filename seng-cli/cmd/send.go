package cmd

import (
	"errors"
	"fmt"

	"github.com/posener/complete"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Privex/go-steemengine/seng"
)

var sendMemo string

// sendCmd represents the send command
var sendCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send SYMBOL FROM TO AMOUNT",
		Short: "Send tokens from one account to another",
		Long: `
Send AMOUNT of SYMBOL from the account FROM to the account TO. The wallet
daemon must hold FROM's active key.

The amount is truncated to the token's precision before broadcast. After
broadcasting, the account history is polled to confirm the operation; a
confirmation timeout does not mean the transfer failed.`[1:],
		Args: cobra.ExactArgs(4),
		Run:  sendToken,
	}
	cmd.Flags().StringVarP(&sendMemo, "memo", "m", "",
		"Memo to attach to the transfer")
	rootCmd.AddCommand(cmd)
	sendCmplCmd := complete.Command{Flags: mergeFlags(apiCmplFlags)}
	rootCmplCmd.Sub["send"] = sendCmplCmd
	rootCmplCmd.Sub["help"].Sub["send"] = complete.Command{}
	generateCmplFlags(cmd, sendCmplCmd.Flags)
	return cmd
}()

func sendToken(_ *cobra.Command, args []string) {
	symbol, from, to := args[0], args[1], args[2]
	amount, err := decimal.NewFromString(args[3])
	if err != nil {
		errExit(fmt.Errorf("invalid amount %q: %v", args[3], err))
	}
	rec, err := Client.SendToken(cmdCtx(), symbol, from, to, amount, sendMemo)
	printTxRecord(rec, err)
}

func printTxRecord(rec *seng.TxRecord, err error) {
	if errors.Is(err, seng.ErrTxNotFound) {
		fmt.Println("Broadcast accepted, TxID:", rec.TxID)
		fmt.Println("Not yet found in account history; " +
			"it may still confirm.")
		return
	}
	if err != nil {
		errExit(err)
	}
	fmt.Println("TxID:     ", rec.TxID)
	if rec.Confirmed {
		fmt.Println("Block:    ", rec.Block)
		fmt.Println("Timestamp:", rec.Timestamp)
	}
}
