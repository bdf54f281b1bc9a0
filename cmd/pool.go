package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"plexer/config"
	"plexer/internal/pool"
)

var poolJSON bool

// poolCmd partitions primer pairs into non-conflicting reaction pools.
var poolCmd = &cobra.Command{
	Use:   "pool [pairs-file]",
	Short: "Partition multiplex primer pairs into compatible reaction pools",
	Long: `Reads tab separated primer pairs, one per line:

	<id>	<fwd>	<rev>	[product-length]	[off-target,names]

builds a conflict graph from severe cross-dimers, colliding product sizes
and shared off-targets, and colors it greedily in input order. The number
of colors is the number of reaction tubes needed.`,
	Run: runPool,
}

func init() {
	rootCmd.AddCommand(poolCmd)

	poolCmd.Flags().BoolVar(&poolJSON, "json", false, "write pools as JSON")
}

// readPairs parses the tab separated pairs file.
func readPairs(path string) ([]pool.Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pairs []pool.Pair
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		columns := strings.Split(text, "\t")
		if len(columns) < 3 {
			return nil, fmt.Errorf("line %d: expecting at least id, fwd and rev columns", line)
		}

		p := pool.Pair{ID: columns[0], Fwd: columns[1], Rev: columns[2]}
		if len(columns) > 3 && columns[3] != "" {
			size, err := strconv.Atoi(columns[3])
			if err != nil {
				return nil, fmt.Errorf("line %d: bad product length %q", line, columns[3])
			}
			p.ProductLength = size
		}
		if len(columns) > 4 && columns[4] != "" {
			p.OffTargets = strings.Split(columns[4], ",")
		}
		pairs = append(pairs, p)
	}
	return pairs, scanner.Err()
}

func runPool(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno pairs file passed.")
	}
	conf := config.New()

	pairs, err := readPairs(args[0])
	if err != nil {
		stderr.Fatalln(err)
	}
	if len(pairs) == 0 {
		stderr.Fatalln("no primer pairs in the input")
	}

	g := pool.BuildGraph(pairs, pool.Options{
		ConflictThreshold: conf.ConflictThreshold,
		SizeTolerance:     conf.SizeTolerance,
	})
	res := pool.Resolve(g)

	if poolJSON {
		writeJSON(res)
		return
	}

	fmt.Printf("%d pair(s) over %d pool(s)\n", len(pairs), len(res.Pools))
	for c, members := range res.Pools {
		ids := make([]string, len(members))
		for i, m := range members {
			ids[i] = pairs[m].ID
		}
		fmt.Printf("pool %d: %s\n", c+1, strings.Join(ids, ", "))
	}
}
