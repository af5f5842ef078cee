package testutil

import (
	"errors"
	"testing"

	apperrors "momoapi/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertAppErrorFields checks the code and the offending fields of an AppError.
func AssertAppErrorFields(t *testing.T, err error, expectedCode string, expectedFields ...string) {
	t.Helper()

	AssertAppError(t, err, expectedCode)

	var appErr *apperrors.AppError
	errors.As(err, &appErr)
	if len(appErr.Fields) != len(expectedFields) {
		t.Fatalf("expected fields %v, got %v", expectedFields, appErr.Fields)
	}
	for i, f := range expectedFields {
		if appErr.Fields[i] != f {
			t.Errorf("expected field %d to be %q, got %q", i, f, appErr.Fields[i])
		}
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
