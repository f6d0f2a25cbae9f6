package nakama

import (
	"context"

	"github.com/nhywieza/fight-the-landlord/internal/domain"
)

// RemotePlayer bridges a connected client into the game loop. The match loop
// feeds client messages in through Submit calls; the game manager consumes
// them on its own goroutine through the Player queries. Answers are buffered
// one deep: an answer submitted ahead of the query is delivered when the
// query arrives, and an answer left behind by an abandoned query is cleared
// so it cannot leak into a later turn.
type RemotePlayer struct {
	UserID string
	Name   string

	hand  *domain.Deck
	calls chan bool
	plays chan []domain.Card
}

func NewRemotePlayer(userID, name string) *RemotePlayer {
	return &RemotePlayer{
		UserID: userID,
		Name:   name,
		calls:  make(chan bool, 1),
		plays:  make(chan []domain.Card, 1),
	}
}

// Call waits for the client's bid answer or the turn deadline.
func (rp *RemotePlayer) Call(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		rp.drainCalls()
		return false, err
	}
	select {
	case called := <-rp.calls:
		return called, nil
	case <-ctx.Done():
		// An answer racing the deadline belongs to this expired query.
		rp.drainCalls()
		return false, ctx.Err()
	}
}

// Play waits for the client's card selection or the turn deadline. A nil
// selection is a pass.
func (rp *RemotePlayer) Play(ctx context.Context, toBeat *domain.Play) ([]domain.Card, error) {
	if err := ctx.Err(); err != nil {
		rp.drainPlays()
		return nil, err
	}
	select {
	case cards := <-rp.plays:
		return cards, nil
	case <-ctx.Done():
		rp.drainPlays()
		return nil, ctx.Err()
	}
}

func (rp *RemotePlayer) drainCalls() {
	select {
	case <-rp.calls:
	default:
	}
}

func (rp *RemotePlayer) drainPlays() {
	select {
	case <-rp.plays:
	default:
	}
}

// Accept is a no-op: the manager already mutated the shared hand view.
func (rp *RemotePlayer) Accept(cards []domain.Card) {}

// Reject is a no-op: the manager re-queries and the client gets another try.
func (rp *RemotePlayer) Reject(cards []domain.Card) {}

// AcceptDeck stores the dealt hand view.
func (rp *RemotePlayer) AcceptDeck(deck *domain.Deck) {
	rp.hand = deck
}

// HandSize returns how many cards the player still holds.
func (rp *RemotePlayer) HandSize() int {
	if rp.hand == nil {
		return 0
	}
	return rp.hand.Size()
}

// SubmitCall feeds a bid answer from the client. It reports whether the
// answer was accepted; a second answer within the same query is dropped.
func (rp *RemotePlayer) SubmitCall(called bool) bool {
	select {
	case rp.calls <- called:
		return true
	default:
		return false
	}
}

// SubmitPlay feeds a card selection from the client; nil means pass.
func (rp *RemotePlayer) SubmitPlay(cards []domain.Card) bool {
	select {
	case rp.plays <- cards:
		return true
	default:
		return false
	}
}
