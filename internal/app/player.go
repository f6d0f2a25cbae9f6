package app

import (
	"context"

	"github.com/nhywieza/fight-the-landlord/internal/domain"
)

// Player is the capability contract the Manager drives. Implementations are
// external: connected humans behind a transport, or bot agents. The Manager
// queries exactly one player at a time, so implementations never see
// concurrent calls.
type Player interface {
	// Call answers a bidding query: true to claim the landlord role.
	Call(ctx context.Context) (bool, error)
	// Play proposes cards for the current turn. An empty slice is a pass.
	// toBeat is the play currently holding the round, or nil when leading.
	Play(ctx context.Context, toBeat *domain.Play) ([]domain.Card, error)
	// Accept notifies that the proposed play was validated and applied.
	Accept(cards []domain.Card)
	// Reject notifies that the proposed play was refused; the hand is
	// unchanged.
	Reject(cards []domain.Card)
	// AcceptDeck hands the player its dealt hand. The deck is a view onto
	// Manager-owned state; all mutation funnels through the Manager.
	AcceptDeck(deck *domain.Deck)
}
