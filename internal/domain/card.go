package domain

import "fmt"

// Suit identifies one of the four suits or one of the two joker markers.
type Suit string

const (
	SuitSpade   Suit = "♠"
	SuitHeart   Suit = "♥"
	SuitDiamond Suit = "♦"
	SuitClub    Suit = "♣"
	// SuitSmallJoker and SuitBigJoker are distinguished markers, not suits.
	SuitSmallJoker Suit = "joker"
	SuitBigJoker   Suit = "Joker"
)

const (
	NumberSmallJoker = 14
	NumberBigJoker   = 15
)

// suitIndex fixes the tie-break order for same-rank cards: ♠ ♥ ♦ ♣.
var suitIndex = map[Suit]int{
	SuitSpade:   1,
	SuitHeart:   2,
	SuitDiamond: 3,
	SuitClub:    4,
}

// Card is an immutable value identifying one of the 54 physical cards.
// ID is a pure function of (Suit, Number): suited cards occupy 1..52,
// the small joker 53 and the big joker 54.
type Card struct {
	ID     int
	Number int
	Suit   Suit
}

// NewCard builds a card from an explicit (suit, number) pair.
func NewCard(suit Suit, number int) (Card, error) {
	switch suit {
	case SuitSmallJoker:
		if number != NumberSmallJoker {
			return Card{}, fmt.Errorf("%w: small joker number must be %d, got %d", ErrInvalidCardSpec, NumberSmallJoker, number)
		}
		return Card{ID: 53, Number: number, Suit: suit}, nil
	case SuitBigJoker:
		if number != NumberBigJoker {
			return Card{}, fmt.Errorf("%w: big joker number must be %d, got %d", ErrInvalidCardSpec, NumberBigJoker, number)
		}
		return Card{ID: 54, Number: number, Suit: suit}, nil
	case SuitSpade, SuitHeart, SuitDiamond, SuitClub:
		if number < 1 || number > 13 {
			return Card{}, fmt.Errorf("%w: number %d out of range for suit %s", ErrInvalidCardSpec, number, suit)
		}
		return Card{ID: (number-1)*4 + suitIndex[suit], Number: number, Suit: suit}, nil
	default:
		return Card{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidCardSpec, string(suit))
	}
}

// MustCard is NewCard for fixtures; it panics on a malformed spec.
func MustCard(suit Suit, number int) Card {
	c, err := NewCard(suit, number)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCard builds a card from its canonical text token: a two-character
// <suit><rank> code, or the literal joker tokens.
func ParseCard(s string) (Card, error) {
	switch s {
	case string(SuitSmallJoker):
		return NewCard(SuitSmallJoker, NumberSmallJoker)
	case string(SuitBigJoker):
		return NewCard(SuitBigJoker, NumberBigJoker)
	}

	runes := []rune(s)
	if len(runes) != 2 {
		return Card{}, fmt.Errorf("%w: bad card token %q", ErrInvalidCardSpec, s)
	}
	number, err := rankNumber(runes[1])
	if err != nil {
		return Card{}, err
	}
	return NewCard(Suit(runes[0]), number)
}

// String renders the canonical text token for the card.
func (c Card) String() string {
	if c.Suit == SuitSmallJoker || c.Suit == SuitBigJoker {
		return string(c.Suit)
	}
	return string(c.Suit) + string(rankSymbol(c.Number))
}

// EffectiveRank is the single source of truth for ordering: 3 is lowest (1),
// 2 is highest among numbered cards (13), and the jokers (14, 15) sit above
// everything.
func (c Card) EffectiveRank() int {
	if c.Number <= 13 {
		return (c.Number+10)%13 + 1
	}
	return c.Number
}

const rankSymbols = "A23456789TJQK"

func rankSymbol(number int) rune {
	return rune(rankSymbols[number-1])
}

func rankNumber(symbol rune) (int, error) {
	for i, r := range rankSymbols {
		if r == symbol {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown rank symbol %q", ErrInvalidCardSpec, string(symbol))
}

// cardBefore orders cards for canonical display: effective rank descending,
// ties broken by suit order ♠ ♥ ♦ ♣.
func cardBefore(a, b Card) bool {
	ra, rb := a.EffectiveRank(), b.EffectiveRank()
	if ra != rb {
		return ra > rb
	}
	return suitIndex[a.Suit] < suitIndex[b.Suit]
}
