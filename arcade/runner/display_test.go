package runner

import "testing"

func TestText(t *testing.T) {
	cases := []struct {
		s    GameState
		want string
	}{
		{GameState{Mode: ModeHome}, HomeText},
		{GameState{Mode: ModePlaying, Score: 12.9}, "Score: 12"},
		{GameState{Mode: ModePlaying, Score: 3, BoostTimer: 1}, "Score: 3 BOOST!"},
		{GameState{Mode: ModeGameOver, Score: 41.99}, "Game Over! Final Score: 41\nPress Enter to restart"},
	}
	for _, tc := range cases {
		if got := Text(tc.s); got != tc.want {
			t.Fatalf("Text(%+v) = %q, want %q", tc.s, got, tc.want)
		}
	}
}

func TestTuningValidate(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("default tuning: %v", err)
	}
	bad := DefaultTuning()
	bad.PlayerLimit = 0
	if bad.Validate() == nil {
		t.Fatal("expected error for zero player limit")
	}
	bad = DefaultTuning()
	bad.FlightNear = 0
	if bad.Validate() == nil {
		t.Fatal("expected error for zero in-flight distance")
	}
}
