package amplicon

import (
	"reflect"
	"testing"

	"plexer/internal/seq"
)

func Test_MatchAt(t *testing.T) {
	const template = "AAAACGTACGTACGTTTTT"

	t.Run("exact match", func(t *testing.T) {
		if !MatchAt(template, 4, "CGTACGTACGT", 0, -1) {
			t.Error("exact primer should match")
		}
	})

	t.Run("seed mismatch rejects", func(t *testing.T) {
		// last base differs from the template
		if MatchAt(template, 4, "CGTACGTACGA", 0, -1) {
			t.Error("a 3' mismatch must reject the site")
		}
	})

	t.Run("prefix mismatch within ratio", func(t *testing.T) {
		// 20-mer: seed 10, prefix 10, ratio 0.2 allows 2 mismatches
		tmpl := "AAAAAAAAAACCCCCCCCCC"
		if !MatchAt(tmpl, 0, "TTAAAAAAAACCCCCCCCCC", 0, -1) {
			t.Error("2 mismatches in a 10 nt prefix should pass at ratio 0.2")
		}
		if MatchAt(tmpl, 0, "TTTAAAAAAACCCCCCCCCC", 0, -1) {
			t.Error("3 mismatches in a 10 nt prefix must fail at ratio 0.2")
		}
	})

	t.Run("out of range", func(t *testing.T) {
		if MatchAt("ACGT", 2, "ACGT", 0, -1) {
			t.Error("primer running past the template end must not match")
		}
		if MatchAt("ACGT", -1, "AC", 0, -1) {
			t.Error("negative position must not match")
		}
	})

	t.Run("ambiguous primer base", func(t *testing.T) {
		if !MatchAt("ACGT", 0, "ANGT", 0, -1) {
			t.Error("N in the primer pairs with anything")
		}
	})
}

func Test_Find(t *testing.T) {
	t.Run("single exact amplicon", func(t *testing.T) {
		template := "TTTTGGACTGAAGGGCCCAAACCCTTTGCAGTCCTTTT"
		fwd := "GGACTGAAGG"
		rev := "GGACTGCAAA" // rc = TTTGCAGTCC, found at 24
		got := Find(template, fwd, rev, 0, -1)
		if len(got) != 1 {
			t.Fatalf("got %d amplicons, want 1", len(got))
		}
		a := got[0]
		if a.Start != 4 || a.End != 34 {
			t.Errorf("span = [%d,%d), want [4,34)", a.Start, a.End)
		}
		if a.Seq != template[a.Start:a.End] {
			t.Errorf("seq %q does not equal the template slice", a.Seq)
		}
		if a.Length != 30 {
			t.Errorf("length = %d, want 30", a.Length)
		}
	})

	t.Run("reverse hit upstream of forward is ignored", func(t *testing.T) {
		template := "TTTGCAGTCCAAAAAAAAGGACTGAAGG"
		got := Find(template, "GGACTGAAGG", "GGACTGCAAA", 0, -1)
		if len(got) != 0 {
			t.Errorf("got %v, want none", got)
		}
	})

	t.Run("empty operands", func(t *testing.T) {
		if got := Find("", "ACGT", "ACGT", 0, -1); got != nil {
			t.Errorf("got %v, want nil", got)
		}
		if got := Find("ACGT", "", "ACGT", 0, -1); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})
}

func Test_OffTargets(t *testing.T) {
	fwd := "GGACTGAAGG"
	rev := "GGACTGCAAA"
	hit := "AAAA" + fwd + "CCCCCCCC" + seq.ReverseComplement(rev) + "TTTT"
	templates := []Template{
		{Name: "target", Seq: hit},
		{Name: "clean", Seq: "ACGTACGTACGTACGTACGTACGTACGT"},
		{Name: "offhit", Seq: hit},
	}

	got := OffTargets(fwd, rev, "target", templates, 0, -1)
	want := []string{"offhit"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OffTargets = %v, want %v", got, want)
	}
}
