package task

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr error
	}{
		{"valid", "Buy milk", nil},
		{"empty", "", ErrEmptyTitle},
		{"max length", strings.Repeat("a", MaxTitleLength), nil},
		{"too long", strings.Repeat("a", MaxTitleLength+1), ErrTitleTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateTitle() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateColumn(t *testing.T) {
	if err := ValidateColumn(ColumnNow); err != nil {
		t.Errorf("ValidateColumn(now) = %v, want nil", err)
	}
	if err := ValidateColumn("soon"); !errors.Is(err, ErrInvalidColumn) {
		t.Errorf("ValidateColumn(soon) = %v, want ErrInvalidColumn", err)
	}
}

func TestValidatePriority(t *testing.T) {
	for _, p := range Priorities() {
		if err := ValidatePriority(p); err != nil {
			t.Errorf("ValidatePriority(%q) = %v, want nil", p, err)
		}
	}
	if err := ValidatePriority("P9"); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("ValidatePriority(P9) = %v, want ErrInvalidPriority", err)
	}
}
