package schedule

import (
	"testing"
	"time"
)

func TestOpeningHours(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if monday.Weekday() != time.Monday {
		t.Fatal("fixture is not a Monday")
	}

	open, close := OpeningHours(monday)
	if open != 12*60 || close != 18*60 {
		t.Errorf("Monday hours = (%d, %d), want (720, 1080)", open, close)
	}

	for d := 1; d <= 6; d++ {
		day := monday.AddDate(0, 0, d)
		open, close := OpeningHours(day)
		if open != 10*60 || close != 21*60 {
			t.Errorf("%s hours = (%d, %d), want (600, 1260)", day.Weekday(), open, close)
		}
	}
}

func TestSlotGrid(t *testing.T) {
	t.Run("monday grid", func(t *testing.T) {
		grid := SlotGrid(12*60, 18*60)
		if len(grid) != 12 {
			t.Fatalf("got %d slots, want 12", len(grid))
		}
		if grid[0] != 720 {
			t.Errorf("first slot = %s, want 12:00:00", FormatClock(grid[0]))
		}
		if last := grid[len(grid)-1]; last != 17*60+30 {
			t.Errorf("last slot = %s, want 17:30:00", FormatClock(last))
		}
	})

	t.Run("regular grid", func(t *testing.T) {
		grid := SlotGrid(10*60, 21*60)
		if len(grid) != 22 {
			t.Fatalf("got %d slots, want 22", len(grid))
		}
		if last := grid[len(grid)-1]; last != 20*60+30 {
			t.Errorf("last slot = %s, want 20:30:00", FormatClock(last))
		}
	})

	t.Run("last slot always fits before close", func(t *testing.T) {
		grid := SlotGrid(600, 645)
		// 10:00 fits, 10:30 would end at 11:00 past 10:45.
		if len(grid) != 1 || grid[0] != 600 {
			t.Errorf("got %v, want [600]", grid)
		}
	})
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"14:30:00", 870, false},
		{"14:30", 870, false},
		{" 09:00 ", 540, false},
		{"00:00:00", 0, false},
		{"24:00", 0, true},
		{"14:65", 0, true},
		{"garbage", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(870); got != "14:30:00" {
		t.Errorf("FormatClock(870) = %q", got)
	}
	if got := FormatClock(0); got != "00:00:00" {
		t.Errorf("FormatClock(0) = %q", got)
	}
}
