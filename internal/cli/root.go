// Package cli implements the skillmatch command line: offline resume analysis
// against the same job catalog the HTTP server uses.
package cli

import (
	"context"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app       = "skillmatch"
	envPrefix = "SKILLMATCH"
)

var rootCmd = &cobra.Command{
	Use:           app,
	Short:         "skillmatch compares resumes with job descriptions and suggests careers",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// ExecuteContext executes the root command.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().String("catalog", "", "path to a YAML job catalog (default is the embedded catalog)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	for _, name := range []string{"catalog", "debug", "json"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			log.Fatalf("binding %s flag: %v", name, err)
		}
	}
}
