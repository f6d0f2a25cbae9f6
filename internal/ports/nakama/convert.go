package nakama

import (
	"github.com/nhywieza/fight-the-landlord/internal/domain"
)

// Cards cross the wire as their text tokens ("♠A", "Joker", ...), the same
// form ParseCard accepts.

func cardsToTokens(cards []domain.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.String())
	}
	return out
}

func cardsFromTokens(tokens []string) ([]domain.Card, error) {
	out := make([]domain.Card, 0, len(tokens))
	for _, tok := range tokens {
		c, err := domain.ParseCard(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
