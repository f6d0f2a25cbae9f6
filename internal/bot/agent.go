package bot

import (
	"context"

	"github.com/nhywieza/fight-the-landlord/internal/domain"
)

// Agent is an autonomous player: it owns a strategy and answers the game
// manager's bidding and play queries from its dealt hand.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain

	hand     *domain.Deck
	passNext bool
}

// NewAgent builds an agent for a bot user id, picking the strategy from the
// identity's configured difficulty.
func NewAgent(userID string) (*Agent, error) {
	identity := identityFor(userID)
	brain, err := NewBrain(levelFor(identity.Difficulty))
	if err != nil {
		return nil, err
	}
	return &Agent{
		ID:       userID,
		Name:     identity.DisplayName,
		Strategy: brain,
	}, nil
}

// Call implements the player bidding query.
func (a *Agent) Call(ctx context.Context) (bool, error) {
	if a.hand == nil {
		return false, nil
	}
	return a.Strategy.ShouldCall(a.hand), nil
}

// Play implements the player turn query.
func (a *Agent) Play(ctx context.Context, toBeat *domain.Play) ([]domain.Card, error) {
	if a.hand == nil {
		return nil, nil
	}
	if a.passNext {
		a.passNext = false
		return nil, nil
	}
	move, err := a.Strategy.CalculateMove(a.hand, toBeat)
	if err != nil || move.Pass {
		return nil, err
	}
	return move.Cards, nil
}

// Accept is a no-op: the manager already mutated the shared hand view.
func (a *Agent) Accept(cards []domain.Card) {}

// Reject makes the agent pass on its next query instead of re-proposing a
// refused move within the same turn.
func (a *Agent) Reject(cards []domain.Card) {
	a.passNext = true
}

// AcceptDeck stores the dealt hand view.
func (a *Agent) AcceptDeck(deck *domain.Deck) {
	a.hand = deck
}

// HandSize returns how many cards the agent still holds.
func (a *Agent) HandSize() int {
	if a.hand == nil {
		return 0
	}
	return a.hand.Size()
}
