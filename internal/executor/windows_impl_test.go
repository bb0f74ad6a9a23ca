//go:build windows

package executor

import (
	"testing"
	"unsafe"

	"github.com/genricoloni/clickloop/internal/domain"
)

func TestButtonFlags(t *testing.T) {
	down, up, err := buttonFlags(domain.ButtonRight)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if down != mouseEventRightDown || up != mouseEventRightUp {
		t.Errorf("unexpected flags: %#x %#x", down, up)
	}

	if _, _, err := buttonFlags(domain.Button("middle")); err == nil {
		t.Error("expected error for unsupported button")
	}
}

func TestVirtualKey(t *testing.T) {
	tests := []struct {
		key      domain.Key
		expected int
	}{
		{domain.KeySpace, vkSpace},
		{domain.KeyEnter, vkReturn},
		{domain.KeyEscape, vkEscape},
		{domain.KeyMouseLeft, vkLButton},
	}
	for _, tt := range tests {
		got, err := virtualKey(tt.key)
		if err != nil || got != tt.expected {
			t.Errorf("%s: expected %#x, got %#x (%v)", tt.key, tt.expected, got, err)
		}
	}
}

func TestInputLayout(t *testing.T) {
	// SendInput rejects a cbSize that differs from sizeof(INPUT)
	expected := uintptr(28)
	if unsafe.Sizeof(uintptr(0)) == 8 {
		expected = 40
	}
	if got := unsafe.Sizeof(input{}); got != expected {
		t.Errorf("sizeof(input) = %d, want %d", got, expected)
	}
}
