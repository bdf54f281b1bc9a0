package seq

import (
	"reflect"
	"testing"
)

func Test_Normalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"uppercase and keep", "acgt", "ACGT"},
		{"U to T", "AUGC", "ATGC"},
		{"extended codes to N", "AIPX", "ANNN"},
		{"drop junk", "A C-G\n5T!", "ACGT"},
		{"ambiguity codes kept", "RYSWKMBDHVN", "RYSWKMBDHVN"},
		{"empty", "", ""},
		{"all junk", "123 @@", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_BaseSet(t *testing.T) {
	tests := []struct {
		sym  byte
		want []byte
	}{
		{'A', []byte{'A'}},
		{'R', []byte{'A', 'G'}},
		{'B', []byte{'C', 'G', 'T'}},
		{'N', []byte{'A', 'C', 'G', 'T'}},
		{'Z', nil},
	}
	for _, tt := range tests {
		if got := BaseSet(tt.sym); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("BaseSet(%c) = %v, want %v", tt.sym, got, tt.want)
		}
	}
}

func Test_ReverseComplement(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want string
	}{
		{"concrete", "GAATTC", "GAATTC"},
		{"non palindrome", "ATGC", "GCAT"},
		{"ambiguity aware", "RYKM", "KMRY"},
		{"unknown to N", "A*T", "ANT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReverseComplement(tt.s); got != tt.want {
				t.Errorf("ReverseComplement() = %q, want %q", got, tt.want)
			}
		})
	}
}

// reverse complement is its own inverse on normalized input
func Test_ReverseComplement_roundTrip(t *testing.T) {
	for _, raw := range []string{"acgtACGT", "GAAuuC", "RYSWKMBDHVN", "", "TTTTGGGCCA"} {
		n := Normalize(raw)
		if got := ReverseComplement(ReverseComplement(n)); got != n {
			t.Errorf("double revcomp of %q = %q, want %q", raw, got, n)
		}
	}
}

func Test_Complementary(t *testing.T) {
	tests := []struct {
		a, b byte
		want bool
	}{
		{'A', 'T', true},
		{'A', 'A', false},
		{'G', 'C', true},
		{'R', 'Y', true}, // A/G vs C/T: A-T possible
		{'N', 'A', true},
		{'S', 'W', false}, // C/G vs A/T complement A/T
	}
	for _, tt := range tests {
		if got := Complementary(tt.a, tt.b); got != tt.want {
			t.Errorf("Complementary(%c,%c) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func Test_GCPct(t *testing.T) {
	tests := []struct {
		s    string
		want float64
	}{
		{"", 0},
		{"GCGC", 100},
		{"ATAT", 0},
		{"ATGC", 50},
	}
	for _, tt := range tests {
		if got := GCPct(tt.s); got != tt.want {
			t.Errorf("GCPct(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func Test_HasHomopolymer(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		maxRun int
		want   bool
	}{
		{"run of four", "ATAAAAGC", 4, true},
		{"run of three below limit", "ATAAAGC", 4, false},
		{"case insensitive", "cgggggat", 5, true},
		{"maxRun one never", "A", 1, false},
		{"N breaks the run", "AANNAA", 4, false},
		{"run at end", "GCTTTT", 4, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasHomopolymer(tt.s, tt.maxRun); got != tt.want {
				t.Errorf("HasHomopolymer(%q, %d) = %v, want %v", tt.s, tt.maxRun, got, tt.want)
			}
		})
	}
}
