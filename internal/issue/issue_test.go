// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	err := NewErrorContext().
		WithOperation("package extension").
		WithResource("/ext/icons").
		Wrap(errors.New("no such file or directory")).
		Build()

	want := "failed to package extension: /ext/icons: no such file or directory"
	if err.Error() != want {
		t.Errorf("Error(): got %q, want %q", err.Error(), want)
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("root cause")
	err := NewErrorContext().
		WithOperation("update name list").
		Wrap(fmt.Errorf("mid layer: %w", cause)).
		Build()

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	err := NewErrorContext().
		WithOperation("load configuration").
		WithResource("efh.toml").
		WithSuggestion("Check that the file contains valid TOML syntax").
		WithSuggestion("Omit --config to run on built-in defaults").
		Wrap(fmt.Errorf("outer: %w", errors.New("inner"))).
		Build()

	t.Run("non-verbose lists suggestions only", func(t *testing.T) {
		t.Parallel()

		out := err.Format(false)
		if !strings.Contains(out, "• Check that the file contains valid TOML syntax") {
			t.Errorf("first suggestion missing:\n%s", out)
		}
		if !strings.Contains(out, "• Omit --config to run on built-in defaults") {
			t.Errorf("second suggestion missing:\n%s", out)
		}
		if strings.Contains(out, "Error chain:") {
			t.Errorf("error chain should require verbose:\n%s", out)
		}
	})

	t.Run("verbose appends error chain", func(t *testing.T) {
		t.Parallel()

		out := err.Format(true)
		if !strings.Contains(out, "Error chain:") {
			t.Errorf("error chain missing:\n%s", out)
		}
		if !strings.Contains(out, "1. outer: inner") || !strings.Contains(out, "2. inner") {
			t.Errorf("chain entries missing:\n%s", out)
		}
	})
}

func TestActionableError_NoResourceNoCause(t *testing.T) {
	t.Parallel()

	err := NewErrorContext().WithOperation("update name list").Build()
	if err.Error() != "failed to update name list" {
		t.Errorf("Error(): got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Error("Unwrap() should be nil without a cause")
	}
}
