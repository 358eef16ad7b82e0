package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Privex/go-steemengine/log"
	"github.com/Privex/go-steemengine/network"
	"github.com/Privex/go-steemengine/seng"
	"github.com/Privex/go-steemengine/wallet"
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var (
	cfgFile string

	netName    string
	contracts  string
	blockchain string
	history    string
	walletd    string
	nodes      []string
	timeout    time.Duration
	Debug      bool

	// Client is rebuilt by initClient before any command runs.
	Client *seng.Client
	Wallet = wallet.NewClient()
)

func init() {
	cobra.OnInitialize(initConfig, initClient)
}

// initClient wires the Engine client from flags, config file and SENG_ env
// vars, in that order of precedence.
func initClient() {
	log.SetDebug(Debug)
	net, err := network.Parse(viper.GetString("network"))
	if err != nil {
		errExit(err)
	}
	Client = seng.NewClient(net)
	if s := viper.GetString("contracts"); s != "" {
		Client.RPC.ContractsServer = s
	}
	if s := viper.GetString("blockchain"); s != "" {
		Client.RPC.BlockchainServer = s
	}
	if s := viper.GetString("history"); s != "" {
		Client.History.HistoryServer = s
	}
	if n := viper.GetStringSlice("node"); len(n) > 0 {
		Client.Chain.Nodes = n
	}
	if s := viper.GetString("walletd"); s != "" {
		Wallet.WalletdServer = s
	}
	Client.Signer = Wallet

	Client.RPC.DebugRequest = Debug
	Client.Chain.DebugRequest = Debug
	Wallet.DebugRequest = Debug
	Client.RPC.Timeout = timeout
	Client.History.Timeout = timeout
	Client.Chain.Timeout = timeout
	Wallet.Timeout = timeout
}

func errExit(err error) {
	fmt.Println(err)
	os.Exit(1)
}

// cmdCtx returns the context commands run under. Cancellation rides on the
// per-request HTTP timeouts, so this is just Background for now.
func cmdCtx() context.Context { return context.Background() }

var apiFlags = func() *flag.FlagSet {
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.StringVarP(&netName, "network", "n", "hive",
		`Network to use: "steem" or "hive"`)
	flags.StringVar(&contracts, "contracts", "",
		"Override the Engine contracts JSON-RPC endpoint")
	flags.StringVar(&blockchain, "blockchain", "",
		"Override the Engine blockchain JSON-RPC endpoint")
	flags.StringVar(&history, "history", "",
		"Override the Engine account history endpoint")
	flags.StringSliceVar(&nodes, "node", nil,
		"Base chain RPC node(s), tried in order")
	flags.StringVarP(&walletd, "walletd", "w", wallet.WalletdDefault,
		"scheme://host:port for the wallet daemon")
	flags.DurationVar(&timeout, "timeout", 15*time.Second,
		"Timeout for all API requests (i.e. 10s, 1m)")
	flags.BoolVar(&Debug, "debug", false,
		"Print all RPC requests and debug logs")
	return flags
}()

// rootCmd represents the base command when called without any subcommands.
var rootCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seng-cli",
		Short: "Steem/Hive Engine token CLI",
		Long: `seng-cli queries the Steem Engine and Hive Engine token layer and
broadcasts token operations.

Read commands (tokens, token, balance, history, orderbook, ticker, tx) only
need the hosted Engine APIs, selected with --network.

Write commands (send, issue) additionally need a wallet daemon holding the
relevant active keys. Use --walletd to point at it, if not on
` + wallet.WalletdDefault + `.`,
		Args:    cobra.ExactArgs(0),
		PreRunE: validateRunCompletionFlags,
		Run:     runCompletion,
	}
	cmd.Flags().AddFlagSet(installCompletionFlags)
	flags := cmd.PersistentFlags()
	flags.AddFlagSet(apiFlags)
	flags.StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.seng-cli.yaml)")

	generateCmplFlags(cmd, rootCmplCmd.Flags)
	return cmd
}()

// initConfig reads in config file and SENG_ environment variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			errExit(err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".seng-cli")
	}

	viper.SetEnvPrefix("seng")
	viper.AutomaticEnv()
	viper.BindPFlags(rootCmd.PersistentFlags())

	if err := viper.ReadInConfig(); err == nil && Debug {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
