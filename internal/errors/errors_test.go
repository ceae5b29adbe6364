package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestClientError_Error(t *testing.T) {
	err := New(ErrCodeNotFound, "vacancy not found")
	if got := err.Error(); !strings.Contains(got, "[RES-001]") || !strings.Contains(got, "vacancy not found") {
		t.Errorf("unexpected error string: %q", got)
	}
}

func TestClientError_ErrorWithCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrCodeNetworkUnreachable, "could not reach server", cause)

	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("expected cause in error string, got %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestClientError_Suggestions(t *testing.T) {
	err := New(ErrCodeForbidden, "not allowed").
		WithSuggestion("Ask the owner").
		WithSuggestion("Check your role")

	got := err.Error()
	if !strings.Contains(got, "Suggestions:") {
		t.Errorf("expected suggestions section, got %q", got)
	}
	if !strings.Contains(got, "Ask the owner") || !strings.Contains(got, "Check your role") {
		t.Errorf("expected both suggestions, got %q", got)
	}
}

func TestValidationError_SurfacesEveryField(t *testing.T) {
	err := NewValidationError(map[string][]string{
		"resume_url":   {"Enter a valid URL."},
		"cover_letter": {"This field may not be blank.", "Too short."},
	})

	got := err.Error()
	for _, want := range []string{"resume_url", "Enter a valid URL.", "cover_letter", "This field may not be blank.", "Too short."} {
		if !strings.Contains(got, want) {
			t.Errorf("validation message %q missing from %q", want, got)
		}
	}
}

func TestCodeOf(t *testing.T) {
	if code := CodeOf(NewNotFoundError("vacancy")); code != ErrCodeNotFound {
		t.Errorf("expected RES-001, got %s", code)
	}
	if code := CodeOf(errors.New("plain")); code != "" {
		t.Errorf("expected empty code for plain error, got %s", code)
	}
	wrapped := fmt.Errorf("context: %w", NewForbiddenError(""))
	if code := CodeOf(wrapped); code != ErrCodeForbidden {
		t.Errorf("expected PERM-001 through wrapping, got %s", code)
	}
}

func TestIsAuth(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{NewLoginRejectedError("bad credentials"), true},
		{NewSessionExpiredError("/login/?next=/vacancies/"), true},
		{NewForbiddenError(""), false},
		{NewNetworkError(errors.New("dial tcp")), false},
		{errors.New("plain"), false},
	}
	for _, tc := range cases {
		if got := IsAuth(tc.err); got != tc.want {
			t.Errorf("IsAuth(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestIsNetwork(t *testing.T) {
	if !IsNetwork(NewNetworkError(errors.New("dial tcp"))) {
		t.Error("expected network error to be recognized")
	}
	if !IsNetwork(NewTimeoutError(errors.New("deadline exceeded"))) {
		t.Error("expected timeout to be recognized as network")
	}
	if IsNetwork(NewNotFoundError("vacancy")) {
		t.Error("not-found must not be a network error")
	}
}

func TestRedirectOf(t *testing.T) {
	err := NewSessionExpiredError("/login/?next=/applications/")
	target, ok := RedirectOf(err)
	if !ok || target != "/login/?next=/applications/" {
		t.Errorf("expected redirect target, got %q ok=%v", target, ok)
	}

	if _, ok := RedirectOf(NewForbiddenError("")); ok {
		t.Error("forbidden must not carry a redirect; the session is preserved")
	}
}
