package domain

import (
	"errors"
	"testing"
)

func TestIdentifyCombination(t *testing.T) {
	tests := []struct {
		name     string
		cards    []string
		expected CombinationType
	}{
		{name: "Single", cards: []string{"♠3"}, expected: Single},
		{name: "Pair", cards: []string{"♠3", "♥3"}, expected: Pair},
		{name: "Mismatched pair", cards: []string{"♠3", "♥4"}, expected: Invalid},
		{name: "Triple", cards: []string{"♠3", "♥3", "♦3"}, expected: Triple},
		{name: "Triple with single", cards: []string{"♠3", "♥3", "♦3", "♠9"}, expected: TripleSingle},
		{name: "Triple with pair", cards: []string{"♠3", "♥3", "♦3", "♠9", "♥9"}, expected: TriplePair},
		{name: "Bomb", cards: []string{"♠3", "♥3", "♦3", "♣3"}, expected: Bomb},
		{name: "Rocket", cards: []string{"joker", "Joker"}, expected: Rocket},
		{name: "Pair of jokers is not a pair", cards: []string{"joker", "Joker"}, expected: Rocket},
		{name: "Straight of five", cards: []string{"♠3", "♥4", "♦5", "♣6", "♠7"}, expected: Straight},
		{name: "Straight of four is invalid", cards: []string{"♠3", "♥4", "♦5", "♣6"}, expected: Invalid},
		{name: "Straight ending at ace", cards: []string{"♠T", "♥J", "♦Q", "♣K", "♠A"}, expected: Straight},
		{name: "Straight containing 2 is invalid", cards: []string{"♠J", "♥Q", "♦K", "♣A", "♠2"}, expected: Invalid},
		{name: "Straight containing joker is invalid", cards: []string{"♠J", "♥Q", "♦K", "♣A", "joker"}, expected: Invalid},
		{name: "Three consecutive pairs", cards: []string{"♠3", "♥3", "♠4", "♥4", "♠5", "♥5"}, expected: PairStraight},
		{name: "Two consecutive pairs are invalid", cards: []string{"♠3", "♥3", "♠4", "♥4"}, expected: Invalid},
		{name: "Consecutive pairs with 2 are invalid", cards: []string{"♠A", "♥A", "♠2", "♥2", "♠K", "♥K"}, expected: Invalid},
		{name: "Airplane", cards: []string{"♠3", "♥3", "♦3", "♠4", "♥4", "♦4"}, expected: Airplane},
		{name: "Airplane with single wings", cards: []string{"♠3", "♥3", "♦3", "♠4", "♥4", "♦4", "♠9", "♥T"}, expected: AirplaneSingles},
		{name: "Airplane with pair wings", cards: []string{"♠3", "♥3", "♦3", "♠4", "♥4", "♦4", "♠9", "♥9", "♠T", "♥T"}, expected: AirplanePairs},
		{name: "Airplane of 2s is invalid", cards: []string{"♠A", "♥A", "♦A", "♠2", "♥2", "♦2"}, expected: Invalid},
		{name: "Four with two singles", cards: []string{"♠5", "♥5", "♦5", "♣5", "♠8", "♥9"}, expected: FourTwoSingles},
		{name: "Four with two pairs", cards: []string{"♠5", "♥5", "♦5", "♣5", "♠8", "♥8", "♠9", "♥9"}, expected: FourTwoPairs},
		{name: "Empty is invalid", cards: nil, expected: Invalid},
		{name: "Five of nothing", cards: []string{"♠3", "♥3", "♦3", "♣3", "♠4"}, expected: Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combo := IdentifyCombination(mustParseCards(t, tt.cards...))
			if combo.Type != tt.expected {
				t.Errorf("type = %v, want %v", combo.Type, tt.expected)
			}
		})
	}
}

func TestCanBeat(t *testing.T) {
	tests := []struct {
		name     string
		prev     []string
		next     []string
		expected bool
	}{
		{name: "Higher single beats lower single", prev: []string{"♠3"}, next: []string{"♥4"}, expected: true},
		{name: "Equal rank single does not beat", prev: []string{"♠9"}, next: []string{"♥9"}, expected: false},
		{name: "2 beats ace", prev: []string{"♠A"}, next: []string{"♥2"}, expected: true},
		{name: "Small joker beats 2", prev: []string{"♠2"}, next: []string{"joker"}, expected: true},
		{name: "Big joker beats small joker", prev: []string{"joker"}, next: []string{"Joker"}, expected: true},
		{name: "Higher pair beats lower pair", prev: []string{"♠9", "♥9"}, next: []string{"♠J", "♥J"}, expected: true},
		{name: "Pair does not beat single", prev: []string{"♠9"}, next: []string{"♠J", "♥J"}, expected: false},
		{name: "Longer straight does not beat shorter", prev: []string{"♠3", "♥4", "♦5", "♣6", "♠7"}, next: []string{"♠4", "♥5", "♦6", "♣7", "♠8", "♥9"}, expected: false},
		{name: "Higher straight beats lower of same length", prev: []string{"♠3", "♥4", "♦5", "♣6", "♠7"}, next: []string{"♠4", "♥5", "♦6", "♣7", "♠8"}, expected: true},
		{name: "Bomb beats straight", prev: []string{"♠3", "♥4", "♦5", "♣6", "♠7"}, next: []string{"♠9", "♥9", "♦9", "♣9"}, expected: true},
		{name: "Bomb beats pair of 2s", prev: []string{"♠2", "♥2"}, next: []string{"♠3", "♥3", "♦3", "♣3"}, expected: true},
		{name: "Higher bomb beats lower bomb", prev: []string{"♠9", "♥9", "♦9", "♣9"}, next: []string{"♠2", "♥2", "♦2", "♣2"}, expected: true},
		{name: "Single does not beat bomb", prev: []string{"♠3", "♥3", "♦3", "♣3"}, next: []string{"Joker"}, expected: false},
		{name: "Rocket beats bomb", prev: []string{"♠2", "♥2", "♦2", "♣2"}, next: []string{"joker", "Joker"}, expected: true},
		{name: "Nothing beats rocket", prev: []string{"joker", "Joker"}, next: []string{"♠2", "♥2", "♦2", "♣2"}, expected: false},
		{name: "Invalid next never beats", prev: []string{"♠3"}, next: []string{"♠4", "♥5"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanBeat(mustParseCards(t, tt.prev...), mustParseCards(t, tt.next...))
			if got != tt.expected {
				t.Errorf("can beat = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStandardRulesValidate(t *testing.T) {
	rules := StandardRules{}

	lead := mustParseCards(t, "♠9", "♥9")
	if err := rules.Validate(lead, nil); err != nil {
		t.Fatalf("leading pair should be legal: %v", err)
	}

	if err := rules.Validate(mustParseCards(t, "♠3", "♥4"), nil); !errors.Is(err, ErrIllegalPlay) {
		t.Fatalf("error = %v, want ErrIllegalPlay", err)
	}

	if err := rules.Validate(mustParseCards(t, "♠J", "♥J"), lead); err != nil {
		t.Fatalf("higher pair should beat: %v", err)
	}
	if err := rules.Validate(mustParseCards(t, "♠4", "♥4"), lead); !errors.Is(err, ErrIllegalPlay) {
		t.Fatalf("error = %v, want ErrIllegalPlay", err)
	}
}

func TestStandardRulesCompare(t *testing.T) {
	rules := StandardRules{}

	got, err := rules.Compare(mustParseCards(t, "♠J", "♥J"), mustParseCards(t, "♠9", "♥9"))
	if err != nil {
		t.Fatalf("compare error: %v", err)
	}
	if got != 1 {
		t.Errorf("compare = %d, want 1", got)
	}

	got, err = rules.Compare(mustParseCards(t, "♠9", "♥9"), mustParseCards(t, "♠J", "♥J"))
	if err != nil {
		t.Fatalf("compare error: %v", err)
	}
	if got != -1 {
		t.Errorf("compare = %d, want -1", got)
	}

	got, err = rules.Compare(mustParseCards(t, "♠9"), mustParseCards(t, "♠9", "♥9"))
	if err != nil {
		t.Fatalf("compare error: %v", err)
	}
	if got != 0 {
		t.Errorf("compare = %d, want 0", got)
	}

	if _, err := rules.Compare(mustParseCards(t, "♠3", "♥4"), mustParseCards(t, "♠9")); !errors.Is(err, ErrIllegalPlay) {
		t.Errorf("error = %v, want ErrIllegalPlay", err)
	}
}
