package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNewError(t *testing.T) {
	err := New(ErrCodeInvalidScope, "bad id: %s", "x y")
	if err.Code != ErrCodeInvalidScope {
		t.Errorf("Code = %s", err.Code)
	}
	if err.Message != "bad id: x y" {
		t.Errorf("Message = %q", err.Message)
	}
	want := "INVALID_SCOPE: bad id: x y"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodeNetwork, cause, "failed to fetch emoji")
	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause lost from the chain")
	}
	if !Is(err, ErrCodeNetwork) {
		t.Error("Is should match the wrapping code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is matched the wrong code")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodePlaceNotFound, "no such place")
	outer := fmt.Errorf("handling request: %w", inner)
	if !Is(outer, ErrCodePlaceNotFound) {
		t.Error("Is should unwrap through fmt.Errorf")
	}
	if GetCode(outer) != ErrCodePlaceNotFound {
		t.Errorf("GetCode = %s", GetCode(outer))
	}
}

func TestGetCodeNonStructured(t *testing.T) {
	if code := GetCode(stderrors.New("plain")); code != "" {
		t.Errorf("GetCode on plain error = %q, want empty", code)
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInternal, "boom")); got != "boom" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage = %q", got)
	}
}
