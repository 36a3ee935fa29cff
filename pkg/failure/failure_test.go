package failure

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOfWrapped(t *testing.T) {
	base := errors.New("boom")
	err := fmt.Errorf("run: %w", New(Network, "fetch CAMPAIGN1", base))

	if got := KindOf(err); got != Network {
		t.Fatalf("expected Network, got %v", got)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected the base error to stay reachable")
	}
	if !Is(err, Network) || Is(err, UserInput) {
		t.Fatalf("Is mismatched for %v", err)
	}
	if err.Error() != "run: fetch CAMPAIGN1: boom" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestKindOfUnclassified(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != Unknown {
		t.Fatalf("expected Unknown, got %v", got)
	}
	if Is(nil, Unknown) {
		t.Fatalf("nil must not match any kind")
	}
}
