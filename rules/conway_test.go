package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{"isolated live cell dies", 0, true, false},
		{"one neighbor starves", 1, true, false},
		{"two neighbors survive", 2, true, true},
		{"three neighbors survive", 3, true, true},
		{"four neighbors overcrowd", 4, true, false},
		{"eight neighbors overcrowd", 8, true, false},
		{"dead with two stays dead", 2, false, false},
		{"dead with three is born", 3, false, true},
		{"dead with four stays dead", 4, false, false},
		{"dead with zero stays dead", 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.want {
				t.Fatalf("ApplyConwayRules(%d, %v) = %v, expected %v", tt.neighbors, tt.alive, got, tt.want)
			}
		})
	}
}
