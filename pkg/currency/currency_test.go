package currency

import (
	"context"
	"reflect"
	"testing"

	"github.com/sw33tLie/bocheck/pkg/failure"
	"github.com/sw33tLie/bocheck/pkg/projects"
	"github.com/sw33tLie/bocheck/pkg/storage"
)

func TestActiveFollowsProjectOrder(t *testing.T) {
	ctx := context.Background()
	sel := NewSelector(storage.NewMemory())

	for _, code := range []string{"USD", "ARS", "EUR"} {
		if _, err := sel.Toggle(ctx, "LuckyBird", code); err != nil {
			t.Fatalf("Toggle %s: %v", code, err)
		}
	}

	got, err := sel.Active(ctx, "LuckyBird")
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	want := []string{"ARS", "EUR", "USD"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestActiveEmptyIsNotAnError(t *testing.T) {
	got, err := NewSelector(storage.NewMemory()).Active(context.Background(), "Viks")
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no active currencies, got %v", got)
	}
}

func TestActiveIsSubsetOfProject(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	// State is keyed by currency code only, so a code active for one
	// project may be stored while another project is selected.
	_ = store.Set(ctx, "BTC", StateActive)
	_ = store.Set(ctx, "EUR", StateActive)
	_ = store.Set(ctx, "", StateActive)

	sel := NewSelector(store)
	for _, p := range projects.All() {
		active, err := sel.Active(ctx, p.Name)
		if err != nil {
			t.Fatalf("Active(%s): %v", p.Name, err)
		}
		for _, code := range active {
			if code == "" || !p.HasCurrency(code) {
				t.Fatalf("project %s reported foreign currency %q", p.Name, code)
			}
		}
	}

	active, _ := sel.Active(ctx, "Viks")
	if !reflect.DeepEqual(active, []string{"EUR"}) {
		t.Fatalf("expected [EUR] for Viks, got %v", active)
	}
}

func TestToggleFlipsAndPersists(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	sel := NewSelector(store)

	on, err := sel.Toggle(ctx, "Viks", "UZS")
	if err != nil || !on {
		t.Fatalf("expected UZS active, got %v err=%v", on, err)
	}
	if v, _, _ := store.Get(ctx, "UZS"); v != StateActive {
		t.Fatalf("expected stored %q, got %q", StateActive, v)
	}

	on, err = sel.Toggle(ctx, "Viks", "UZS")
	if err != nil || on {
		t.Fatalf("expected UZS inactive, got %v err=%v", on, err)
	}
	if v, _, _ := store.Get(ctx, "UZS"); v != StateInactive {
		t.Fatalf("expected stored %q, got %q", StateInactive, v)
	}
}

func TestToggleRejectsForeignCurrency(t *testing.T) {
	sel := NewSelector(storage.NewMemory())
	_, err := sel.Toggle(context.Background(), "Viks", "USD")
	if !failure.Is(err, failure.UserInput) {
		t.Fatalf("expected user input error, got %v", err)
	}
	if _, err := sel.Active(context.Background(), "Nope"); !failure.Is(err, failure.UserInput) {
		t.Fatalf("expected user input error for unknown project, got %v", err)
	}
}

// setOnly hides the Delete method of the wrapped store.
type setOnly struct{ Store }

func TestReset(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	sel := NewSelector(store)
	_ = sel.Set(ctx, "Viks", "EUR", true)
	_ = sel.Set(ctx, "Viks", "UZS", true)
	_ = store.Set(ctx, "BTC", StateActive)

	if err := sel.Reset(ctx, "Viks"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	active, _ := sel.Active(ctx, "Viks")
	if len(active) != 0 {
		t.Fatalf("expected nothing active after reset, got %v", active)
	}
	if _, ok, _ := store.Get(ctx, "EUR"); ok {
		t.Fatalf("expected EUR state to be deleted")
	}
	if v, _, _ := store.Get(ctx, "BTC"); v != StateActive {
		t.Fatalf("reset touched a currency of another project: %q", v)
	}
}

func TestResetWithoutDeleter(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	sel := NewSelector(setOnly{store})
	_ = sel.Set(ctx, "Viks", "EUR", true)

	if err := sel.Reset(ctx, "Viks"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if v, _, _ := store.Get(ctx, "EUR"); v != StateInactive {
		t.Fatalf("expected stored %q, got %q", StateInactive, v)
	}
}
