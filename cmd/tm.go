package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"plexer/config"
	"plexer/internal/seq"
	"plexer/internal/thermo"
)

// tmCmd computes the salt-corrected nearest-neighbor melting temperature.
var tmCmd = &cobra.Command{
	Use:   "tm [sequence]",
	Short: "Nearest-neighbor melting temperature of a primer",
	Run:   runTm,
}

func init() {
	rootCmd.AddCommand(tmCmd)

	tmCmd.Flags().Float64("na", 50, "monovalent cation concentration, mM")
	tmCmd.Flags().Float64("mg", 0, "magnesium concentration, mM")
	tmCmd.Flags().Float64("primer-conc", 500, "total primer concentration, nM")
	viper.BindPFlag("na", tmCmd.Flags().Lookup("na"))
	viper.BindPFlag("mg", tmCmd.Flags().Lookup("mg"))
	viper.BindPFlag("primer-conc", tmCmd.Flags().Lookup("primer-conc"))
}

func runTm(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno sequence passed.")
	}
	conf := config.New()

	s := seq.Normalize(args[0])
	est := thermo.AccumulateWorstCase(s)
	if est == nil {
		stderr.Fatalf("%q is too short for the nearest-neighbor model\n", args[0])
	}

	tm := thermo.TmNN(s, conf.NaMM, conf.MgMM, conf.PrimerNM)
	if math.IsNaN(tm) {
		stderr.Fatalln("melting temperature undefined for these conditions")
	}

	fmt.Printf("seq: %s (%d nt, %.1f%% GC)\n", s, len(s), seq.GCPct(s))
	fmt.Printf("dH: %.2f kcal/mol\n", est.DH)
	fmt.Printf("dS: %.2f cal/mol·K\n", est.DS)
	fmt.Printf("dG37: %.2f kcal/mol\n", est.DG37())
	fmt.Printf("Tm: %.2f °C at %g mM Na+, %g mM Mg2+, %g nM primer\n",
		tm, conf.NaMM, conf.MgMM, conf.PrimerNM)
}
