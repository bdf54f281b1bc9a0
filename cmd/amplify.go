package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"plexer/config"
	"plexer/internal/amplicon"
	"plexer/internal/circ"
	"plexer/internal/seq"
)

var (
	amplifyCircular bool
	amplifyJSON     bool
)

// amplifyCmd predicts the products a primer pair forms on a template.
var amplifyCmd = &cobra.Command{
	Use:   "amplify [template] [fwd-primer] [rev-primer]",
	Short: "Predict PCR products of a primer pair on a template",
	Long: `Scans the template for tolerant binding sites of the forward primer and
of the reverse primer's reverse complement, then pairs hits into candidate
products. The last bases of each primer (the 3' seed) must match exactly;
the rest tolerates a bounded mismatch fraction.

On a circular template the two complementary products between the first
forward and reverse hits are reported as well.`,
	Run: runAmplify,
}

func init() {
	rootCmd.AddCommand(amplifyCmd)

	amplifyCmd.Flags().BoolVarP(&amplifyCircular, "circular", "c", false, "treat the template as a circle")
	amplifyCmd.Flags().BoolVar(&amplifyJSON, "json", false, "write amplicons as JSON")
}

func runAmplify(cmd *cobra.Command, args []string) {
	if len(args) != 3 {
		cmd.Help()
		stderr.Fatalln("\nexpecting a template, a forward primer and a reverse primer.")
	}
	conf := config.New()

	template, fwd, rev := args[0], args[1], args[2]
	amps := amplicon.Find(template, fwd, rev, conf.SeedLen, conf.MaxMismatchRatio)

	if amplifyJSON {
		writeJSON(amps)
		return
	}

	if len(amps) == 0 {
		fmt.Println("no amplicons found")
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
		fmt.Fprintln(w, "fwd\trev\tstart\tend\tlength")
		for _, a := range amps {
			fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\n", a.FwdPos, a.RevPos, a.Start, a.End, a.Length)
		}
		w.Flush()
	}

	if amplifyCircular && len(amps) > 0 {
		t := seq.Normalize(template)
		first := amps[0]
		f3 := first.FwdPos + len(seq.Normalize(fwd)) - 1
		r3 := first.RevPos
		cands := circ.ProductCandidates(t, f3, r3)
		fmt.Printf("\ncircular products between 3' ends %d and %d:\n", f3, r3)
		fmt.Printf("  shorter: %d bp\n", cands.Shorter().Length)
		fmt.Printf("  longer:  %d bp\n", cands.Longer().Length)
	}
}
