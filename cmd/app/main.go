package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ecoandino/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "ecoandino",
	Short: "EcoAndino recycling-point directory API",
	Long: `EcoAndino serves the directory of recyclable material categories,
materials and recycling drop-off points, including a nearby search by
coordinates.

Configuration is read from the environment and an optional .env file.`,
	Version:       config.DefaultAppVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
