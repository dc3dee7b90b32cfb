package input

import "testing"

func TestCleanQuery(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{name: "plain", raw: "batman", want: "batman", ok: true},
		{name: "surrounding whitespace", raw: "  batman  ", want: "batman", ok: true},
		{name: "inner whitespace", raw: " the dark knight ", want: "the dark knight", ok: true},
		{name: "inner runs collapse", raw: "the  dark \t knight", want: "the dark knight", ok: true},
		{name: "empty", raw: "", want: "", ok: false},
		{name: "whitespace only", raw: "   \t ", want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CleanQuery(tt.raw)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("CleanQuery(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.ok)
			}
		})
	}
}
