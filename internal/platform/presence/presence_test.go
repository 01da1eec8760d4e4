package presence

import (
	"errors"
	"fmt"
	"testing"
)

func TestRequired_ReturnsValue(t *testing.T) {
	v := "hola"
	got, err := Required(&v, "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hola" {
		t.Fatalf("got %q", got)
	}
}

func TestRequired_NilIsNotDefined(t *testing.T) {
	_, err := Required[string](nil, "User with id abc does not exist")
	if err == nil {
		t.Fatal("expected error for nil pointer")
	}
	if !IsNotDefined(err) {
		t.Fatalf("expected NotDefinedError, got %T", err)
	}
	if err.Error() != "User with id abc does not exist" {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestIsNotDefined_SeesThroughWrapping(t *testing.T) {
	_, err := Required[int](nil, "gone")
	wrapped := fmt.Errorf("outer: %w", err)
	if !IsNotDefined(wrapped) {
		t.Fatal("expected wrapped NotDefinedError to be detected")
	}
	if IsNotDefined(errors.New("other")) {
		t.Fatal("plain errors are not NotDefined")
	}
}
