package player

import "testing"

func TestState_Predicates(t *testing.T) {
	tests := []struct {
		state     State
		str       string
		active    bool
		canPause  bool
		canResume bool
	}{
		{state: Stopped, str: "Stopped", active: false, canPause: false, canResume: false},
		{state: Playing, str: "Playing", active: true, canPause: true, canResume: false},
		{state: Paused, str: "Paused", active: true, canPause: false, canResume: true},
		{state: State(99), str: "Unknown", active: false, canPause: false, canResume: false},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.state.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.state.IsActive(); got != tt.active {
				t.Errorf("IsActive() = %v, want %v", got, tt.active)
			}
			if got := tt.state.CanPause(); got != tt.canPause {
				t.Errorf("CanPause() = %v, want %v", got, tt.canPause)
			}
			if got := tt.state.CanResume(); got != tt.canResume {
				t.Errorf("CanResume() = %v, want %v", got, tt.canResume)
			}
		})
	}
}
