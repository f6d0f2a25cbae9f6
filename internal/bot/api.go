package bot

import (
	"github.com/nhywieza/fight-the-landlord/internal/domain"
)

// Move represents the decision made by the AI.
type Move struct {
	Pass  bool
	Cards []domain.Card
}

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	// ShouldCall decides whether to claim the landlord role for this hand.
	ShouldCall(hand *domain.Deck) bool
	// CalculateMove picks a play for the current turn. toBeat is nil when
	// the bot leads a fresh round.
	CalculateMove(hand *domain.Deck, toBeat *domain.Play) (Move, error)
}

// BotLevel selects a strategy strength.
type BotLevel int

const (
	BotLevelCautious BotLevel = iota
	BotLevelGreedy
)
