package utils

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSplitCampaignField(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"X1 CAMPAIGN123 foo", []string{"X1", "CAMPAIGN123", "foo"}},
		{"  A_CAMPAIGN   B_CAMPAIGN ", []string{"A_CAMPAIGN", "B_CAMPAIGN"}},
		{`"unbalanced CAMPAIGN1`, []string{`"unbalanced`, "CAMPAIGN1"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := SplitCampaignField(tt.in)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("SplitCampaignField(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestRunLockRejectsSecondHolder(t *testing.T) {
	store := filepath.Join(t.TempDir(), "state.sqlite")

	first, err := NewRunLock(store)
	if err != nil {
		t.Fatalf("NewRunLock: %v", err)
	}
	if err := first.TryLock(); err != nil {
		t.Fatalf("first TryLock: %v", err)
	}

	second, err := NewRunLock(store)
	if err != nil {
		t.Fatalf("NewRunLock: %v", err)
	}
	if err := second.TryLock(); !errors.Is(err, ErrRunLocked) {
		t.Fatalf("expected ErrRunLocked, got %v", err)
	}

	if err := first.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if err := second.TryLock(); err != nil {
		t.Fatalf("TryLock after release: %v", err)
	}
	_ = second.Unlock()
}
