package app

import "github.com/nhywieza/fight-the-landlord/internal/domain"

// EventKind identifies emitted game events for transport dispatch.
type EventKind string

const (
	EventHandDealt       EventKind = "hand_dealt"
	EventBiddingStarted  EventKind = "bidding_started"
	EventCallMade        EventKind = "call_made"
	EventLandlordElected EventKind = "landlord_elected"
	EventCardPlayed      EventKind = "card_played"
	EventTurnPassed      EventKind = "turn_passed"
	EventRetryExhausted  EventKind = "retry_exhausted"
	EventGameEnded       EventKind = "game_ended"
)

// Event is a game event with optional targeted seats.
type Event struct {
	Kind    EventKind
	Payload any
	Seats   []int // target seats; empty means broadcast
}

type HandDealtPayload struct {
	Seat int
	Hand []domain.Card
}

type BiddingStartedPayload struct {
	FirstSeat int
}

type CallMadePayload struct {
	Seat   int
	Called bool
}

type LandlordElectedPayload struct {
	Seat    int
	Default bool // true when every seat declined and the first seat was elected
	Bonus   []domain.Card
}

type CardPlayedPayload struct {
	Seat      int
	Cards     []domain.Card
	Remaining int
	NewRound  bool
}

type TurnPassedPayload struct {
	Seat   int
	Forced bool // true when the pass came from exhausted retries or a timeout
}

type RetryExhaustedPayload struct {
	Seat     int
	Attempts int
}

type GameEndedPayload struct {
	GameID      string
	Winner      int
	Landlord    int
	LandlordWon bool
}
