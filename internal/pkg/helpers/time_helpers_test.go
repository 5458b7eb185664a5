package helpers

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"08:00", "08:00:00", false},
		{"8:00", "08:00:00", false},
		{"08:00:30", "08:00:30", false},
		{"23:59", "23:59:00", false},
		{"24:00", "", true},
		{"08:61", "", true},
		{"mediodia", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseDuration(t *testing.T) {
	if d := ParseDuration("90m", time.Hour); d != 90*time.Minute {
		t.Errorf("expected 90m, got %v", d)
	}
	if d := ParseDuration("bogus", time.Hour); d != time.Hour {
		t.Errorf("expected fallback to default, got %v", d)
	}
}
