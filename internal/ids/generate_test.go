package ids

import (
	"testing"
	"time"
)

func TestGenerate_Length(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{0, 0},
		{-1, 0},
		{8, 8},
		{16, 16},
	}

	for _, tt := range tests {
		got := Generate("input", tt.length)
		if len(got) != tt.want {
			t.Errorf("Generate(%d) returned %q with length %d, want %d", tt.length, got, len(got), tt.want)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate("same input", DefaultLength)
	b := Generate("same input", DefaultLength)
	if a != b {
		t.Errorf("Generate is not deterministic: %q != %q", a, b)
	}
}

func TestGenerate_Lowercase(t *testing.T) {
	id := Generate("Buy milk", DefaultLength)
	for _, r := range id {
		if r >= 'A' && r <= 'Z' {
			t.Errorf("Generate returned uppercase character in %q", id)
		}
	}
}

func TestGenerateWithTimestamp_DistinctAcrossTime(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	a := GenerateWithTimestamp("same title", base, DefaultLength)
	b := GenerateWithTimestamp("same title", base.Add(time.Nanosecond), DefaultLength)
	if a == b {
		t.Errorf("expected distinct IDs for distinct timestamps, got %q both times", a)
	}
}
