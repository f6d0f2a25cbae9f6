package domain

import (
	"errors"
	"testing"
)

func mustParseCards(t *testing.T, tokens ...string) []Card {
	t.Helper()
	cards := make([]Card, len(tokens))
	for i, token := range tokens {
		c, err := ParseCard(token)
		if err != nil {
			t.Fatalf("parse %q error: %v", token, err)
		}
		cards[i] = c
	}
	return cards
}

func TestDeckAddAndSubErrors(t *testing.T) {
	d := NewEmptyDeck()
	c := MustCard(SuitSpade, 13)

	if err := d.Add(c); err != nil {
		t.Fatalf("add error: %v", err)
	}
	if err := d.Add(c); !errors.Is(err, ErrDuplicateCard) {
		t.Fatalf("second add error = %v, want ErrDuplicateCard", err)
	}
	if err := d.Sub(c); err != nil {
		t.Fatalf("sub error: %v", err)
	}
	if err := d.Sub(c); !errors.Is(err, ErrCardNotFound) {
		t.Fatalf("second sub error = %v, want ErrCardNotFound", err)
	}
}

func TestDeckBatchAddIsAtomic(t *testing.T) {
	d, err := ParseDeck("♠K,♣A")
	if err != nil {
		t.Fatalf("parse deck error: %v", err)
	}

	// Second element already present: nothing may be applied.
	batch := mustParseCards(t, "♣2", "♠K")
	if err := d.BatchAdd(batch); !errors.Is(err, ErrDuplicateCard) {
		t.Fatalf("batch add error = %v, want ErrDuplicateCard", err)
	}
	if got := d.String(); got != "♣A,♠K" {
		t.Fatalf("deck after failed batch = %q, want unchanged ♣A,♠K", got)
	}

	// A batch repeating its own element must also leave the deck alone.
	if err := d.BatchAdd(mustParseCards(t, "♦5", "♦5")); !errors.Is(err, ErrDuplicateCard) {
		t.Fatalf("self-duplicating batch error = %v, want ErrDuplicateCard", err)
	}
	if d.Size() != 2 {
		t.Fatalf("size = %d, want 2", d.Size())
	}
}

func TestDeckBatchSubIsAtomic(t *testing.T) {
	d, err := ParseDeck("Joker,♣A,♠K")
	if err != nil {
		t.Fatalf("parse deck error: %v", err)
	}

	if err := d.BatchSub(mustParseCards(t, "♣A", "♦9")); !errors.Is(err, ErrCardNotFound) {
		t.Fatalf("batch sub error = %v, want ErrCardNotFound", err)
	}
	if got := d.String(); got != "Joker,♣A,♠K" {
		t.Fatalf("deck after failed batch = %q, want unchanged Joker,♣A,♠K", got)
	}
}

func TestDeckCanonicalOrdering(t *testing.T) {
	d, err := ParseDeck("♠K,♣A")
	if err != nil {
		t.Fatalf("parse deck error: %v", err)
	}
	if got := d.String(); got != "♣A,♠K" {
		t.Fatalf("string = %q, want ♣A,♠K", got)
	}

	if err := d.BatchAdd(mustParseCards(t, "♣2", "Joker")); err != nil {
		t.Fatalf("batch add error: %v", err)
	}
	if got := d.String(); got != "Joker,♣2,♣A,♠K" {
		t.Fatalf("string = %q, want Joker,♣2,♣A,♠K", got)
	}

	if err := d.Add(MustCard(SuitDiamond, 2)); err != nil {
		t.Fatalf("add error: %v", err)
	}
	if err := d.BatchSub(mustParseCards(t, "♣2", "♦2")); err != nil {
		t.Fatalf("batch sub error: %v", err)
	}
	if got := d.String(); got != "Joker,♣A,♠K" {
		t.Fatalf("string = %q, want Joker,♣A,♠K", got)
	}
}

func TestDeckTiesUseStableSuitOrder(t *testing.T) {
	d, err := NewDeckOf(
		MustCard(SuitClub, 9),
		MustCard(SuitSpade, 9),
		MustCard(SuitDiamond, 9),
		MustCard(SuitHeart, 9),
	)
	if err != nil {
		t.Fatalf("new deck error: %v", err)
	}
	if got := d.String(); got != "♠9,♥9,♦9,♣9" {
		t.Fatalf("string = %q, want ♠9,♥9,♦9,♣9", got)
	}
}

func TestDeckParseRoundTrip(t *testing.T) {
	d, err := ParseDeck("Joker,joker,♠2,♥A,♦K,♣3")
	if err != nil {
		t.Fatalf("parse deck error: %v", err)
	}
	again, err := ParseDeck(d.String())
	if err != nil {
		t.Fatalf("reparse error: %v", err)
	}
	if d.Size() != again.Size() {
		t.Fatalf("size = %d, want %d", again.Size(), d.Size())
	}
	for _, id := range d.IDs() {
		if !again.Contains(id) {
			t.Errorf("reparsed deck missing card id %d", id)
		}
	}
}

func TestFullSetHas54UniqueCards(t *testing.T) {
	cards := FullSet()
	if len(cards) != 54 {
		t.Fatalf("full set size = %d, want 54", len(cards))
	}
	seen := make(map[int]bool, 54)
	for _, c := range cards {
		if c.ID < 1 || c.ID > 54 {
			t.Errorf("card id %d out of range", c.ID)
		}
		if seen[c.ID] {
			t.Errorf("duplicate card id %d", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestDeckContainsAll(t *testing.T) {
	d, err := ParseDeck("♠K,♣A,♦5")
	if err != nil {
		t.Fatalf("parse deck error: %v", err)
	}

	if !d.ContainsAll(mustParseCards(t, "♠K", "♦5")) {
		t.Error("expected deck to contain ♠K and ♦5")
	}
	if d.ContainsAll(mustParseCards(t, "♠K", "♥5")) {
		t.Error("deck should not contain ♥5")
	}
	if d.ContainsAll(mustParseCards(t, "♠K", "♠K")) {
		t.Error("repeated card in request must not be satisfiable")
	}
}
