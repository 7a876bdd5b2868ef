package validation

import (
	"errors"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid", "player_1", false},
		{"empty", "", true},
		{"too short", "ab", true},
		{"illegal characters", "player one", true},
		{"upper bound", "abcdefghijklmnopqrstuvwxyz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("short"); err == nil {
		t.Error("expected error for short password")
	}
	if err := ValidatePassword("longenough"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail(""); err != nil {
		t.Errorf("empty email should be allowed, got %v", err)
	}
	if err := ValidateEmail("not-an-email"); err == nil {
		t.Error("expected error for malformed email")
	}
	if err := ValidateEmail("player@example.com"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRule(t *testing.T) {
	tests := []struct {
		name    string
		divisor int
		word    string
		wantErr bool
	}{
		{"valid", 3, "Fizz", false},
		{"zero divisor", 0, "Fizz", true},
		{"negative divisor", -3, "Fizz", true},
		{"blank word", 3, "  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRule(tt.divisor, tt.word)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRule(%d, %q) error = %v, wantErr %v", tt.divisor, tt.word, err, tt.wantErr)
			}
		})
	}
}

func TestValidationErrorFields(t *testing.T) {
	err := ValidateNumberRange(-1)
	var vErr ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if vErr.Field != "numberRange" {
		t.Errorf("field = %q, want numberRange", vErr.Field)
	}
}
