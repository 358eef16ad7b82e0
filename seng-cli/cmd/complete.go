package cmd

import (
	"fmt"

	"github.com/posener/complete"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
)

// Complete runs the CLI completion.
func Complete() bool {
	comp := complete.New("seng-cli", rootCmplCmd)
	comp.CLI.InstallName = "installcompletion"
	comp.CLI.UninstallName = "uninstallcompletion"
	comp.AddFlags(nil)
	return comp.Complete()
}

var (
	installCompletion   bool
	uninstallCompletion bool

	installCompletionFlags = func() *flag.FlagSet {
		flags := flag.NewFlagSet("", flag.ContinueOnError)
		flags.BoolVar(&installCompletion, "installcompletion", false,
			"Install shell completion for seng-cli")
		flags.BoolVar(&uninstallCompletion, "uninstallcompletion", false,
			"Uninstall shell completion for seng-cli")
		return flags
	}()
)

var rootCmplCmd = complete.Command{
	Flags: apiCmplFlags,
	Sub:   complete.Commands{"help": complete.Command{Sub: complete.Commands{}}},
}
var apiCmplFlags = complete.Flags{
	"--help":    complete.PredictNothing,
	"--network": complete.PredictSet("steem", "hive"),
	"-n":        complete.PredictSet("steem", "hive"),
}

func validateRunCompletionFlags(cmd *cobra.Command, _ []string) error {
	// Ensure that the install completion flags are not ever used with any
	// other flags.
	flags := cmd.Flags()
	installCompletionMode := false
	otherFlags := false
	flags.Visit(func(flg *flag.Flag) {
		switch flg.Name {
		case "installcompletion", "uninstallcompletion":
			installCompletionMode = true
		default:
			otherFlags = true
		}
	})
	if installCompletionMode && otherFlags {
		return fmt.Errorf("--installcompletion and --uninstallcompletion " +
			"may not be used with any other flags")
	}
	return nil
}

func runCompletion(cmd *cobra.Command, _ []string) {
	// Complete() returns true if it attempts to install completion,
	// otherwise just output the help page.
	if !Complete() {
		cmd.Help()
	}
}

// generateCmplFlags adds completion for all cmd.Flags() not already present
// in cmplFlags.
func generateCmplFlags(cmd *cobra.Command, cmplFlags complete.Flags) {
	// Due to a bug in cobra.Command.Flags(), we must call LocalFlags()
	// first to get any parent flags merged into cmd.Flags().
	// https://github.com/spf13/cobra/issues/412
	cmd.LocalFlags()
	cmd.Flags().VisitAll(func(flg *flag.Flag) {
		name := "--" + flg.Name
		// If the flag already has a custom completion, there is
		// nothing to do.
		if _, ok := cmplFlags[name]; ok {
			return
		}
		// Add a predictor
		var predict complete.Predictor = complete.PredictAnything
		if flg.Value.Type() == "bool" {
			predict = complete.PredictNothing
		}
		cmplFlags[name] = predict
	})
}

// mergeFlags returns a new complete.Flags that merges all flgs.
func mergeFlags(flgs ...complete.Flags) complete.Flags {
	var size int
	for _, flg := range flgs {
		size += len(flg)
	}
	f := make(complete.Flags, size)
	for _, flg := range flgs {
		for k, v := range flg {
			f[k] = v
		}
	}
	return f
}
