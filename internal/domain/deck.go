package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Deck is a duplicate-free collection of cards owned by exactly one party:
// a player's hand or the landlord bonus. Cards are keyed by ID, so a card
// can appear at most once per deck.
type Deck struct {
	cards map[int]Card
}

// NewEmptyDeck returns a deck holding no cards.
func NewEmptyDeck() *Deck {
	return &Deck{cards: make(map[int]Card)}
}

// NewDeckOf returns a deck holding the given cards.
func NewDeckOf(cards ...Card) (*Deck, error) {
	d := NewEmptyDeck()
	if err := d.BatchAdd(cards); err != nil {
		return nil, err
	}
	return d, nil
}

// ParseDeck builds a deck from a comma-joined list of canonical card tokens.
func ParseDeck(s string) (*Deck, error) {
	d := NewEmptyDeck()
	for _, token := range strings.Split(s, ",") {
		c, err := ParseCard(token)
		if err != nil {
			return nil, err
		}
		if err := d.Add(c); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Add inserts one card.
func (d *Deck) Add(c Card) error {
	if _, ok := d.cards[c.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
	}
	d.cards[c.ID] = c
	return nil
}

// Sub removes one card.
func (d *Deck) Sub(c Card) error {
	if _, ok := d.cards[c.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrCardNotFound, c)
	}
	delete(d.cards, c.ID)
	return nil
}

// BatchAdd inserts all cards or none: the deck is unchanged when any card is
// already present or the batch itself repeats an ID.
func (d *Deck) BatchAdd(cards []Card) error {
	seen := make(map[int]bool, len(cards))
	for _, c := range cards {
		if _, ok := d.cards[c.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		if seen[c.ID] {
			return fmt.Errorf("%w: %s repeated in batch", ErrDuplicateCard, c)
		}
		seen[c.ID] = true
	}
	for _, c := range cards {
		d.cards[c.ID] = c
	}
	return nil
}

// BatchSub removes all cards or none.
func (d *Deck) BatchSub(cards []Card) error {
	seen := make(map[int]bool, len(cards))
	for _, c := range cards {
		if _, ok := d.cards[c.ID]; !ok {
			return fmt.Errorf("%w: %s", ErrCardNotFound, c)
		}
		if seen[c.ID] {
			return fmt.Errorf("%w: %s repeated in batch", ErrCardNotFound, c)
		}
		seen[c.ID] = true
	}
	for _, c := range cards {
		delete(d.cards, c.ID)
	}
	return nil
}

// IsEmpty reports whether no cards remain. An empty hand is the sole
// termination signal for the play phase.
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Size returns the number of cards held.
func (d *Deck) Size() int {
	return len(d.cards)
}

// Contains reports whether the card with the given ID is held.
func (d *Deck) Contains(id int) bool {
	_, ok := d.cards[id]
	return ok
}

// ContainsAll reports whether every listed card is held, with no ID repeated.
func (d *Deck) ContainsAll(cards []Card) bool {
	seen := make(map[int]bool, len(cards))
	for _, c := range cards {
		if !d.Contains(c.ID) || seen[c.ID] {
			return false
		}
		seen[c.ID] = true
	}
	return true
}

// IDs returns the held card IDs in no particular order.
func (d *Deck) IDs() []int {
	ids := make([]int, 0, len(d.cards))
	for id := range d.cards {
		ids = append(ids, id)
	}
	return ids
}

// Cards returns the held cards in canonical order: effective rank
// descending, ties by suit order ♠ ♥ ♦ ♣.
func (d *Deck) Cards() []Card {
	out := make([]Card, 0, len(d.cards))
	for _, c := range d.cards {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return cardBefore(out[i], out[j]) })
	return out
}

// String renders the comma-joined canonical form, e.g. "Joker,♣A,♠K".
func (d *Deck) String() string {
	cards := d.Cards()
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, ",")
}

// FullSet returns the 54-card universe in construction order: 4 suits x 13
// ranks, then the two jokers.
func FullSet() []Card {
	cards := make([]Card, 0, 54)
	for _, suit := range []Suit{SuitSpade, SuitHeart, SuitDiamond, SuitClub} {
		for number := 1; number <= 13; number++ {
			cards = append(cards, MustCard(suit, number))
		}
	}
	cards = append(cards, MustCard(SuitSmallJoker, NumberSmallJoker), MustCard(SuitBigJoker, NumberBigJoker))
	return cards
}
