package main

import (
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/trendlens/trendlens/pkg/errors"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "fatal coded error prints the user message",
			err:  apperrors.New(apperrors.ErrCodeFileNotFound, "cannot open data.csv"),
			want: "cannot open data.csv",
		},
		{
			name: "wrapped fatal error still unwraps to the message",
			err: fmt.Errorf("run: %w",
				apperrors.New(apperrors.ErrCodeNoNumericData, "no numeric data in fleet")),
			want: "no numeric data in fleet",
		},
		{
			name: "plain error prints verbatim",
			err:  errors.New("flag needs an argument: --column"),
			want: "flag needs an argument: --column",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorMessage(tt.err); got != tt.want {
				t.Errorf("errorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
