package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"plexer/config"
	"plexer/internal/fold"
	"plexer/internal/seq"
	"plexer/internal/thermo"
)

// scanCmd reports the quality of one or more primers: GC content, Tm,
// homopolymers, hairpins, self-dimers and 3' end stability.
var scanCmd = &cobra.Command{
	Use:   "scan [primer ...]",
	Short: "Screen primers for Tm, hairpins, self-dimers and 3' stability",
	Run:   runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func fmtDG(dg float64) string {
	if math.IsNaN(dg) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", dg)
}

func runScan(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno primer sequences passed.")
	}
	conf := config.New()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintln(w, "primer\tlen\tGC%\tTm\thomopolymer\thairpin dG\tself-dimer dG\tself-dimer\t3' dG")
	for _, raw := range args {
		s := seq.Normalize(raw)
		if s == "" {
			stderr.Printf("warning: %q has no valid bases, skipping\n", raw)
			continue
		}

		tm := thermo.TmNN(s, conf.NaMM, conf.MgMM, conf.PrimerNM)
		homo := "-"
		if seq.HasHomopolymer(s, conf.HomopolymerMax) {
			homo = fmt.Sprintf(">=%d", conf.HomopolymerMax)
		}

		hairpinDG := math.NaN()
		if h := fold.HairpinScan(s); h != nil {
			hairpinDG = h.DG
		}

		dimerDG := math.NaN()
		dimerClass := "none"
		if d := fold.SelfDimerScan(s); d != nil {
			dimerDG = d.DG
			dimerClass = fold.ClassifyDG(d.DG, d.Touches3).Label
		}

		fmt.Fprintf(w, "%s\t%d\t%.1f\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s,
			len(s),
			seq.GCPct(s),
			fmtDG(tm),
			homo,
			fmtDG(hairpinDG),
			fmtDG(dimerDG),
			dimerClass,
			fmtDG(fold.ThreePrimeDG(s, 0)),
		)
	}
	w.Flush()
}
