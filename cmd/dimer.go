package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"plexer/internal/fold"
)

// dimerCmd scans two primers against each other for cross-dimers.
var dimerCmd = &cobra.Command{
	Use:   "dimer [primer-a] [primer-b]",
	Short: "Find the most stable cross-dimer between two primers",
	Run:   runDimer,
}

func init() {
	rootCmd.AddCommand(dimerCmd)
}

func runDimer(cmd *cobra.Command, args []string) {
	if len(args) != 2 {
		cmd.Help()
		stderr.Fatalln("\nexpecting two primer sequences.")
	}

	d := fold.DimerScan(args[0], args[1])
	if d == nil {
		fmt.Println("no cross-dimer found")
		return
	}

	class := fold.ClassifyDG(d.DG, d.Touches3)
	fmt.Printf("overlap: %s\n", d.Overlap)
	fmt.Printf("offset: %d\n", d.Offset)
	fmt.Printf("dG: %.2f kcal/mol\n", d.DG)
	fmt.Printf("class: %s (%s)\n", class.Label, class.Severity)
	if d.Touches3 {
		fmt.Println("the interaction reaches the 3' end and is extendable")
	}
}
