package notify

import "testing"

// The urgency levels are wire values from the freedesktop spec, not
// arbitrary enum ordinals.
func TestUrgency_SpecValues(t *testing.T) {
	tests := []struct {
		urgency Urgency
		want    byte
	}{
		{UrgencyLow, 0},
		{UrgencyNormal, 1},
		{UrgencyCritical, 2},
	}
	for _, tt := range tests {
		if byte(tt.urgency) != tt.want {
			t.Errorf("urgency = %d, want %d", tt.urgency, tt.want)
		}
	}
}
