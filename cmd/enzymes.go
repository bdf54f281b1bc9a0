package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"plexer/internal/enzyme"
)

// enzymesCmd is for listing the enzymes available for digestion. With an
// argument it looks the name up, falling back to similar names.
var enzymesCmd = &cobra.Command{
	Use:   "enzymes [name]",
	Short: "List available restriction enzymes",
	Long: `Lists the enzymes in the reference database by name along with their
recognition site and cut behavior. Pass a name to look one up; close or
containing names are suggested when there is no exact match.`,
	Run: runEnzymes,
}

func init() {
	rootCmd.AddCommand(enzymesCmd)
}

func describe(e enzyme.Enzyme) string {
	if e.Class == enzyme.TypeIIS {
		return fmt.Sprintf("%s\t%s/%s\t%s, overhang %d", e.Name, e.Site, e.RC, e.Class, e.OverhangLen)
	}
	end := "blunt"
	if e.Sticky() {
		end = "overhang " + e.Overhang
	}
	return fmt.Sprintf("%s\t%s\t%s, %s", e.Name, e.Site, e.Class, end)
}

func runEnzymes(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)

	if len(args) < 1 {
		for _, name := range enzyme.Names() {
			e, _ := enzyme.Get(name)
			fmt.Fprintln(w, describe(e))
		}
		w.Flush()
		return
	}

	name := args[0]
	if e, exists := enzyme.Get(name); exists {
		fmt.Fprintln(w, describe(e))
		w.Flush()
		return
	}

	// no exact match: suggest names that contain the query or sit within
	// a small edit distance of it
	ldCutoff := 2
	var suggestions []string
	for _, candidate := range enzyme.Names() {
		if strings.Contains(strings.ToLower(candidate), strings.ToLower(name)) ||
			ld(strings.ToLower(name), strings.ToLower(candidate)) <= ldCutoff {
			suggestions = append(suggestions, candidate)
		}
	}

	if len(suggestions) == 0 {
		stderr.Fatalf("failed to find any enzymes for %s\n", name)
	}
	fmt.Printf("no enzyme named %s. did you mean:\n", name)
	for _, s := range suggestions {
		e, _ := enzyme.Get(s)
		fmt.Fprintln(w, describe(e))
	}
	w.Flush()
}

// ld is the levenshtein distance between two strings.
func ld(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
