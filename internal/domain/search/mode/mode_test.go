package mode

import "testing"

func TestFromSources(t *testing.T) {
	tests := []struct {
		name        string
		hasSemantic bool
		hasKeyword  bool
		want        Mode
	}{
		{"both contributed", true, true, Hybrid},
		{"semantic only", true, false, Semantic},
		{"keyword only", false, true, Keyword},
		{"neither contributed", false, false, Hybrid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromSources(tt.hasSemantic, tt.hasKeyword); got != tt.want {
				t.Errorf("FromSources(%v, %v) = %q, want %q",
					tt.hasSemantic, tt.hasKeyword, got, tt.want)
			}
		})
	}
}
