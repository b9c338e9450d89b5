package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"stakepool/logx"
)

var rootCmd = &cobra.Command{
	Use:   "stakepool",
	Short: "Fixed-pool staking ledger CLI",
	Long:  "Command line interface for replaying staking scenarios against a fixed-pool staking ledger and printing the proportional reward distribution.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed:", err)
		os.Exit(1)
	}
}
