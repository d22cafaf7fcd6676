package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{New(ErrCodeInvalidArgument, "invalid threshold %v", 1.5), "INVALID_ARGUMENT: invalid threshold 1.5"},
		{Wrap(ErrCodeInvalidInput, errors.New("bad digit"), "row %d column %s", 3, "B"), "INVALID_INPUT: row 3 column B: bad digit"},
		{&MissingImportanceError{Features: []string{"A"}}, `no importance score for feature "A"`},
		{&MissingImportanceError{Features: []string{"A", "B"}}, `no importance score for features ["A" "B"]`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestWrapUnwrapsToCause(t *testing.T) {
	cause := &MissingImportanceError{Features: []string{"x"}}
	err := fmt.Errorf("select: %w", Wrap(ErrCodeMissingImportance, cause, "rank by importance"))

	var mie *MissingImportanceError
	if !errors.As(err, &mie) || mie != cause {
		t.Fatalf("errors.As found %v, want %v", mie, cause)
	}
	if cause.Code() != ErrCodeMissingImportance {
		t.Errorf("Code() = %v", cause.Code())
	}
}

func TestIsAndGetCode(t *testing.T) {
	inner := New(ErrCodeInvalidInput, "row 2 has 3 fields")
	tests := []struct {
		name     string
		err      error
		code     Code
		wantIs   bool
		wantCode Code
	}{
		{"direct", New(ErrCodeConfiguration, "no scores"), ErrCodeConfiguration, true, ErrCodeConfiguration},
		{"other code", New(ErrCodeConfiguration, "no scores"), ErrCodeInvalidArgument, false, ErrCodeConfiguration},
		{"fmt wrapped", fmt.Errorf("invalid options: %w", New(ErrCodeInvalidArgument, "n_select 0")), ErrCodeInvalidArgument, true, ErrCodeInvalidArgument},
		{"outer code", Wrap(ErrCodeConfiguration, inner, "read config"), ErrCodeConfiguration, true, ErrCodeConfiguration},
		{"inner code", Wrap(ErrCodeConfiguration, inner, "read config"), ErrCodeInvalidInput, true, ErrCodeConfiguration},
		{"plain error", errors.New("plain"), ErrCodeInvalidInput, false, ""},
		{"nil", nil, ErrCodeInvalidInput, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.wantIs {
				t.Errorf("Is(%v) = %v, want %v", tt.code, got, tt.wantIs)
			}
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode() = %q, want %q", got, tt.wantCode)
			}
		})
	}
}

func TestIsIgnoresMessagedTargets(t *testing.T) {
	err := New(ErrCodeInvalidInput, "a")
	if errors.Is(err, New(ErrCodeInvalidInput, "b")) {
		t.Error("a target with a message should not match by code")
	}
	if !errors.Is(err, err) {
		t.Error("an error should match itself")
	}
}
