package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	ferrors "github.com/matzehuels/featprune/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"interrupted", fmt.Errorf("correlate: %w", context.Canceled), 130},
		{"bad argument", ferrors.New(ferrors.ErrCodeInvalidArgument, "n_select 0"), 2},
		{"bad config", fmt.Errorf("invalid options: %w", ferrors.New(ferrors.ErrCodeConfiguration, "no scores")), 2},
		{"missing score", ferrors.New(ferrors.ErrCodeMissingImportance, "rank by importance"), 2},
		{"bad input", ferrors.New(ferrors.ErrCodeInvalidInput, "empty matrix"), 1},
		{"plain", errors.New("disk full"), 1},
	}
	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("%s: exitCode() = %d, want %d", tt.name, got, tt.want)
		}
	}
}
