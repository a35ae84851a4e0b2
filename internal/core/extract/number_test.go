package extract

import "testing"

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1,234,567", 1234567, true},
		{"$1,234,567", 1234567, true},
		{"(234,567)", -234567, true},
		{"$(234,567)", -234567, true},
		{"( 234,567 )", -234567, true},
		{"45.2", 45.2, true},
		{"  7 ", 7, true},
		{"0", 0, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"12abc", 0, false},
		{"(1,2,3", 0, false},
		{"()", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseNumber(tc.in)
		if ok != tc.ok {
			t.Fatalf("ParseNumber(%q) ok = %v, want %v", tc.in, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseNumber(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
