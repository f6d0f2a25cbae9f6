package domain

// Phase represents the lifecycle stage of a game instance.
type Phase string

const (
	// PhaseNotStarted is the state before cards are dealt.
	PhaseNotStarted Phase = "not_yet_started"
	// PhaseBidding is the state while seats are polled for a landlord call.
	PhaseBidding Phase = "waiting_to_call"
	// PhasePlaying is the active state where card combinations are played.
	PhasePlaying Phase = "waiting_to_play"
	// PhaseEnded is the state after one hand has emptied.
	PhaseEnded Phase = "ended"
)

// Play records a non-pass discard: the seat that made it and its cards.
type Play struct {
	Seat  int
	Cards []Card
}
