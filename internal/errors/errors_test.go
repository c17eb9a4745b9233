package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestBuildError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *BuildError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("exit status 1"), CategoryTool, SeverityFatal, "compiler invocation failed"),
			expected: "tool (fatal): compiler invocation failed: exit status 1",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.err.Error()
			if result != test.expected {
				t.Errorf("Error() = %q, want %q", result, test.expected)
			}
		})
	}
}

func TestBuildError_WithContext(t *testing.T) {
	err := ToolFailed("packages/react", fmt.Errorf("exit status 101"))

	if err.Context == nil {
		t.Fatal("Context should not be nil")
	}
	if err.Context["package"] != "packages/react" {
		t.Errorf("Context[package] = %v, want packages/react", err.Context["package"])
	}
}

func TestBuildError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := WriteFailed("dist/react/package.json", cause)

	if !stdErrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	var be *BuildError
	if !stdErrors.As(err, &be) {
		t.Fatal("errors.As should match *BuildError")
	}
	if be.Category != CategoryFileSystem {
		t.Errorf("Category = %v, want %v", be.Category, CategoryFileSystem)
	}
}

func TestConstructors_Categories(t *testing.T) {
	tests := []struct {
		name     string
		err      *BuildError
		category ErrorCategory
	}{
		{"ToolFailed", ToolFailed("pkg", nil), CategoryTool},
		{"ReadFailed", ReadFailed("p", nil), CategoryFileSystem},
		{"WriteFailed", WriteFailed("p", nil), CategoryFileSystem},
		{"ManifestInvalid", ManifestInvalid("p", nil), CategoryFormat},
		{"ConfigInvalid", ConfigInvalid("f", "r"), CategoryConfig},
		{"WorkspaceError", WorkspaceError("remove", nil), CategoryFileSystem},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.err.Category != test.category {
				t.Errorf("Category = %v, want %v", test.err.Category, test.category)
			}
			if test.err.Severity != SeverityFatal {
				t.Errorf("Severity = %v, want fatal", test.err.Severity)
			}
		})
	}
}
