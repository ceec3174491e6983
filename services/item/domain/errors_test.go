package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_NonNil(t *testing.T) {
	if ErrItemNotFound == nil {
		t.Fatal("ErrItemNotFound must not be nil")
	}
	if ErrItemAlreadyExists == nil {
		t.Fatal("ErrItemAlreadyExists must not be nil")
	}
	if ErrInvalidItemName == nil {
		t.Fatal("ErrInvalidItemName must not be nil")
	}
	if ErrInvalidPrice == nil {
		t.Fatal("ErrInvalidPrice must not be nil")
	}
}

func TestSentinelErrors_Messages(t *testing.T) {
	if ErrItemNotFound.Error() != "item not found" {
		t.Fatalf("unexpected message: %q", ErrItemNotFound.Error())
	}
	if ErrItemAlreadyExists.Error() != "item already exists" {
		t.Fatalf("unexpected message: %q", ErrItemAlreadyExists.Error())
	}
	if ErrInvalidItemName.Error() != "invalid item name" {
		t.Fatalf("unexpected message: %q", ErrInvalidItemName.Error())
	}
	if ErrInvalidPrice.Error() != "invalid price" {
		t.Fatalf("unexpected message: %q", ErrInvalidPrice.Error())
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", ErrItemNotFound)
	if !errors.Is(wrapped, ErrItemNotFound) {
		t.Fatal("errors.Is must match wrapped ErrItemNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrInvalidPrice, errors.New("negative"))
	if !errors.Is(wrapped2, ErrInvalidPrice) {
		t.Fatal("errors.Is must match double-wrapped ErrInvalidPrice")
	}
}
