package exitcode

import (
	"errors"
	"testing"

	uniErrors "github.com/unijobs/unijobs/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, Success},
		{"plain error", errors.New("boom"), GeneralError},
		{"login rejected", uniErrors.NewLoginRejectedError(""), AuthError},
		{"session expired", uniErrors.NewSessionExpiredError("/login/"), AuthError},
		{"forbidden", uniErrors.NewForbiddenError(""), PermissionError},
		{"not found", uniErrors.NewNotFoundError("vacancy"), NotFound},
		{"validation", uniErrors.NewValidationError(map[string][]string{"title": {"required"}}), ValidationError},
		{"network", uniErrors.NewNetworkError(errors.New("refused")), NetworkError},
		{"timeout", uniErrors.NewTimeoutError(errors.New("deadline")), NetworkError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.want {
				t.Errorf("DetermineExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
