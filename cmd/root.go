// Package cmd is for command line interactions with the plexer application
package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var stderr = log.New(os.Stderr, "", 0)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "plexer",
	Short: `Design and screen multiplex PCR primer sets.
Predict duplex thermodynamics, secondary structure, restriction digests,
and partition primer pairs into non-conflicting reaction pools`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// writeJSON prints v to stdout as indented JSON.
func writeJSON(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		stderr.Fatalf("failed to marshal output: %v", err)
	}
	fmt.Println(string(b))
}
