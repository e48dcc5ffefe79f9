// # internal/errors/errors_test.go
package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestDomainErrorMessage(t *testing.T) {
	err := New(CodeInputUnavailable, "cannot read trace file")
	if !strings.Contains(err.Error(), "INPUT_UNAVAILABLE") {
		t.Errorf("Error string missing code: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "cannot read trace file") {
		t.Errorf("Error string missing message: %s", err.Error())
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := Wrap(cause, CodeInputUnavailable, "cannot read trace file")

	if !stderrors.Is(err, cause) {
		t.Error("Wrapped error must unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("Error string missing cause: %s", err.Error())
	}
}

func TestIsCode(t *testing.T) {
	err := New(CodeValidationError, "no stack frames")
	if !IsCode(err, CodeValidationError) {
		t.Error("IsCode should match the error's code")
	}
	if IsCode(err, CodeInputUnavailable) {
		t.Error("IsCode should not match a different code")
	}
	if IsCode(stderrors.New("plain"), CodeInternal) {
		t.Error("IsCode should not match non-domain errors")
	}
}

func TestAddContext(t *testing.T) {
	err := AddContext(New(CodeInputUnavailable, "cannot read trace file"), CtxPath, "/tmp/a.txt")
	if !strings.Contains(err.Error(), "/tmp/a.txt") {
		t.Errorf("Error string missing context: %s", err.Error())
	}

	wrapped := AddContext(stderrors.New("plain"), CtxOperation, "compare")
	if !IsCode(wrapped, CodeInternal) {
		t.Errorf("Plain errors should wrap as internal, got %v", wrapped)
	}
}
