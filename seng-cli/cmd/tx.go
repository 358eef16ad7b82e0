package cmd

import (
	"fmt"

	"github.com/posener/complete"
	"github.com/spf13/cobra"
)

// txCmd represents the tx command
var txCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx TXID",
		Short: "Show a sidechain transaction's execution record",
		Args:  cobra.ExactArgs(1),
		Run:   getTx,
	}
	rootCmd.AddCommand(cmd)
	txCmplCmd := complete.Command{Flags: mergeFlags(apiCmplFlags)}
	rootCmplCmd.Sub["tx"] = txCmplCmd
	rootCmplCmd.Sub["help"].Sub["tx"] = complete.Command{}
	generateCmplFlags(cmd, txCmplCmd.Flags)
	return cmd
}()

func getTx(_ *cobra.Command, args []string) {
	info, err := Client.GetTransactionInfo(cmdCtx(), args[0])
	if err != nil {
		errExit(err)
	}
	if info == nil {
		errExit(fmt.Errorf("transaction %s not found", args[0]))
	}
	fmt.Println("Transaction ID:", info.TransactionID)
	fmt.Println("Block:         ", info.BlockNumber)
	fmt.Println("Sender:        ", info.Sender)
	fmt.Println("Contract:      ", info.Contract)
	fmt.Println("Action:        ", info.Action)
	fmt.Println("Payload:       ", string(info.Payload))
	for _, err := range info.Logs.Errors {
		fmt.Println("Error:         ", err)
	}
	for _, ev := range info.Logs.Events {
		fmt.Printf("Event:          %s/%s %s\n",
			ev.Contract, ev.Event, string(ev.Data))
	}
}
