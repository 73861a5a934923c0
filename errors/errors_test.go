package errors

import (
	"fmt"
	"testing"
)

func TestError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeUnknownVariable, "unknown variable")
	if err.Code != ErrCodeUnknownVariable {
		t.Errorf("expected code %s, got %s", ErrCodeUnknownVariable, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeConfigInvalid, "bad config")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeConfigInvalid) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeUnknownStyle) {
		t.Error("Is should return false for non-matching code")
	}

	// Test Is through fmt.Errorf wrapping
	outer := fmt.Errorf("render: %w", wrapped)
	if !Is(outer, ErrCodeConfigInvalid) {
		t.Error("Is should unwrap standard library wrappers")
	}
	if Is(cause, "") {
		t.Error("Is should never match the empty code")
	}

	// Test WithDetail
	detailed := err.WithDetail("variable", "foo").WithDetail("position", 3)
	if detailed.Details["variable"] != "foo" {
		t.Error("WithDetail should add details")
	}
}

func TestErrorConstructors(t *testing.T) {
	err := UnknownVariable("version")
	if err.Code != ErrCodeUnknownVariable {
		t.Errorf("expected code %s, got %s", ErrCodeUnknownVariable, err.Code)
	}
	if err.Details["variable"] != "version" {
		t.Error("UnknownVariable should include variable detail")
	}

	err = TemplateSyntax("unclosed '['", 4)
	if err.Code != ErrCodeTemplateSyntax {
		t.Errorf("expected code %s, got %s", ErrCodeTemplateSyntax, err.Code)
	}
	if err.Details["position"] != 4 {
		t.Error("TemplateSyntax should include position detail")
	}

	err = InvalidStyle("fg:nope", fmt.Errorf("unknown color"))
	if GetCode(err) != ErrCodeInvalidStyle {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidStyle, GetCode(err))
	}
	if err.Cause == nil {
		t.Error("InvalidStyle should keep the parse error as cause")
	}
}

func TestGetCodeNil(t *testing.T) {
	if GetCode(nil) != "" {
		t.Error("GetCode(nil) should be empty")
	}
	if GetCode(fmt.Errorf("plain")) != "" {
		t.Error("GetCode on a plain error should be empty")
	}
}
