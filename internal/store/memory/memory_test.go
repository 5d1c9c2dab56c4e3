package memory

import (
	"testing"

	"github.com/shopspring/decimal"

	"sakura/internal/core"
	"sakura/internal/store"
)

var _ store.Entries[core.Gift] = (*Store[core.Gift])(nil)

func gift(id string) core.Gift {
	return core.Gift{
		ID:        core.ID(id),
		Recipient: "Mom",
		Gift:      "Perfume Set",
		Amount:    decimal.NewFromInt(3500),
		Occasion:  core.Birthday,
		Date:      core.NewDate(2024, 1, 20),
	}
}

func ids(items []core.Gift) []core.ID {
	out := make([]core.ID, 0, len(items))
	for _, g := range items {
		out = append(out, g.ID)
	}
	return out
}

func TestMemoryStoreOrder(t *testing.T) {
	s := New(gift("1"))
	if err := s.Append(gift("2")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Prepend(gift("0")); err != nil {
		t.Fatalf("prepend: %v", err)
	}
	got := ids(s.List())
	if len(got) != 3 || got[0] != "0" || got[1] != "1" || got[2] != "2" {
		t.Fatalf("unexpected order: %v", got)
	}
	if err := s.Append(gift("1")); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestMemoryStoreDeleteKeepsSnapshots(t *testing.T) {
	s := New(gift("a"), gift("b"), gift("c"))
	before := s.List()

	if !s.Delete("b") {
		t.Fatalf("expected delete to succeed")
	}
	if s.Delete("b") {
		t.Fatalf("expected second delete to report missing")
	}
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	if got := ids(before); got[1] != "b" {
		t.Fatalf("snapshot mutated: %v", got)
	}
	if got := ids(s.List()); got[0] != "a" || got[1] != "c" {
		t.Fatalf("unexpected order after delete: %v", got)
	}
}
