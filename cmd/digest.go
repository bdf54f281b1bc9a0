package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"plexer/internal/enzyme"
)

var (
	digestEnzymes  []string
	digestCircular bool
	digestJSON     bool
)

// digestCmd cuts a sequence with one or more Type II enzymes.
var digestCmd = &cobra.Command{
	Use:   "digest [sequence]",
	Short: "Digest a linear or circular sequence with restriction enzymes",
	Run:   runDigest,
}

func init() {
	rootCmd.AddCommand(digestCmd)

	digestCmd.Flags().StringSliceVarP(&digestEnzymes, "enzymes", "e", nil, "comma separated enzyme names (required)")
	digestCmd.Flags().BoolVarP(&digestCircular, "circular", "c", false, "treat the sequence as a circle")
	digestCmd.Flags().BoolVar(&digestJSON, "json", false, "write fragments as JSON")
}

func runDigest(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno sequence passed.")
	}
	if len(digestEnzymes) == 0 {
		stderr.Fatalln("no enzymes passed. see 'plexer enzymes' for the list")
	}

	var frags []enzyme.Fragment
	var err error
	if digestCircular {
		frags, err = enzyme.DigestCircularMulti(args[0], digestEnzymes)
	} else {
		frags, err = enzyme.DigestLinearMulti(args[0], digestEnzymes)
	}
	if err != nil {
		stderr.Fatalln(err)
	}

	if digestJSON {
		writeJSON(frags)
		return
	}

	fmt.Printf("%d fragment(s) from %s\n", len(frags), strings.Join(digestEnzymes, ", "))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 3, ' ', 0)
	fmt.Fprintln(w, "start\tend\tlength\tsequence")
	for _, f := range frags {
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\n", f.Start, f.End, len(f.Seq), f.Seq)
	}
	w.Flush()
}
