package circ

import "testing"

func Test_Subseq(t *testing.T) {
	const s = "ABCDEFGH"
	tests := []struct {
		name       string
		start, end int
		want       string
	}{
		{"direct", 1, 4, "BCD"},
		{"wrap", 6, 2, "GHAB"},
		{"whole circle", 3, 3, "DEFGHABC"},
		{"negative reduces", -2, 2, "GHAB"},
		{"beyond length reduces", 9, 12, "BCD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Subseq(s, tt.start, tt.end); got != tt.want {
				t.Errorf("Subseq(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}

	if got := Subseq("", 0, 3); got != "" {
		t.Errorf("empty circle = %q, want empty", got)
	}
}

func Test_Rotate(t *testing.T) {
	tests := []struct {
		offset int
		want   string
	}{
		{0, "ABCDEF"},
		{2, "CDEFAB"},
		{-1, "FABCDE"},
		{8, "CDEFAB"},
	}
	for _, tt := range tests {
		if got := Rotate("ABCDEF", tt.offset); got != tt.want {
			t.Errorf("Rotate(%d) = %q, want %q", tt.offset, got, tt.want)
		}
	}
}

func Test_DistPlus(t *testing.T) {
	tests := []struct {
		from, to int
		want     int
	}{
		{2, 5, 3},
		{5, 2, 7},
		{4, 4, 0},
		{0, 9, 9},
	}
	for _, tt := range tests {
		if got := DistPlus(10, tt.from, tt.to); got != tt.want {
			t.Errorf("DistPlus(10, %d, %d) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func Test_ProductSeq(t *testing.T) {
	const s = "ABCDEFGH"
	if got := ProductSeq(s, 2, 5); got != "CDEF" {
		t.Errorf("inward product = %q, want CDEF", got)
	}
	if got := ProductSeq(s, 6, 1); got != "GHAB" {
		t.Errorf("wrapping product = %q, want GHAB", got)
	}
	if got := ProductSeq(s, 3, 3); got != "D" {
		t.Errorf("same position = %q, want single base", got)
	}
}

func Test_ProductCandidates(t *testing.T) {
	const s = "ABCDEFGH"

	t.Run("lengths sum to L+2", func(t *testing.T) {
		for _, pos := range [][2]int{{0, 0}, {2, 5}, {5, 2}, {7, 0}, {-1, 13}} {
			c := ProductCandidates(s, pos[0], pos[1])
			if c.Inward.Length+c.Outward.Length != len(s)+2 {
				t.Errorf("f3=%d r3=%d: %d + %d != L+2",
					pos[0], pos[1], c.Inward.Length, c.Outward.Length)
			}
		}
	})

	t.Run("same 3' position wraps the outward arc", func(t *testing.T) {
		c := ProductCandidates(s, 3, 3)
		if c.Inward.Seq != "D" {
			t.Errorf("inward = %q, want D", c.Inward.Seq)
		}
		if c.Outward.Seq != "DEFGHABCD" {
			t.Errorf("outward = %q, want the full circle revisiting D", c.Outward.Seq)
		}
	})

	t.Run("shorter and longer", func(t *testing.T) {
		c := ProductCandidates(s, 2, 5)
		if c.Shorter().Seq != "CDEF" {
			t.Errorf("shorter = %q, want CDEF", c.Shorter().Seq)
		}
		if c.Longer().Seq != "FGHABC" {
			t.Errorf("longer = %q, want FGHABC", c.Longer().Seq)
		}
	})

	t.Run("empty template degenerates", func(t *testing.T) {
		c := ProductCandidates("", 3, 7)
		if c.Inward.Seq != "" || c.Outward.Seq != "" ||
			c.Inward.Length != 0 || c.Outward.Length != 0 {
			t.Errorf("want all-empty candidates, got %+v", c)
		}
	})
}
