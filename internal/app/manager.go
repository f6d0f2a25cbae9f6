package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/nhywieza/fight-the-landlord/internal/domain"
)

const (
	// BonusSeat is the pseudo-seat holding the 3 landlord bonus cards until
	// bidding completes.
	BonusSeat = 0
	// Seats is the number of playing seats.
	Seats = 3

	// DefaultMaxAttempts bounds invalid-play retries per turn.
	DefaultMaxAttempts = 3
	// DefaultTurnTimeout bounds how long a player may take to answer.
	DefaultTurnTimeout = 30 * time.Second
)

var (
	ErrWrongPhase    = errors.New("operation not valid in current phase")
	ErrMissingPlayer = errors.New("seat has no player")
	ErrNoRules       = errors.New("rules engine is required")
	ErrStalled       = errors.New("game stalled: no seat will lead")
	ErrConservation  = errors.New("card conservation violated")
)

// Result summarizes a finished game.
type Result struct {
	GameID      uuid.UUID
	Landlord    int
	Winner      int
	LandlordWon bool
}

// Manager orchestrates one game instance: it deals, elects a landlord and
// drives the turn loop. It is the single owner of all deck state; players
// receive read views of their own hand and every mutation funnels through
// the Manager.
//
// All driving happens on the goroutine that calls Run. Player queries are
// strictly serialized: at most one outstanding Call or Play at any time.
type Manager struct {
	id      uuid.UUID
	players map[int]Player
	decks   map[int]*domain.Deck
	discard *domain.Deck
	rules   domain.Rules
	rng     *rand.Rand

	phase    domain.Phase
	landlord int

	// MaxAttempts is the invalid-play budget per turn before the turn
	// degrades to a pass.
	MaxAttempts int
	// TurnTimeout bounds each Call/Play query; expiry triggers the same
	// degrade-to-pass (or decline) fallback as exhausted retries. Zero
	// disables the deadline.
	TurnTimeout time.Duration
	// OnEvent, when set, receives every emitted game event.
	OnEvent func(Event)
}

// NewManager builds a Manager for the given seats (1..3). A nil rng gets a
// time-seeded default; inject a seeded one for reproducible deals.
func NewManager(players map[int]Player, rules domain.Rules, rng *rand.Rand) (*Manager, error) {
	if rules == nil {
		return nil, ErrNoRules
	}
	for seat := 1; seat <= Seats; seat++ {
		if players[seat] == nil {
			return nil, fmt.Errorf("%w: seat %d", ErrMissingPlayer, seat)
		}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Manager{
		id:          uuid.New(),
		players:     players,
		decks:       make(map[int]*domain.Deck),
		discard:     domain.NewEmptyDeck(),
		rules:       rules,
		rng:         rng,
		phase:       domain.PhaseNotStarted,
		MaxAttempts: DefaultMaxAttempts,
		TurnTimeout: DefaultTurnTimeout,
	}, nil
}

// ID returns the game instance identity.
func (m *Manager) ID() uuid.UUID { return m.id }

// Phase returns the current lifecycle phase.
func (m *Manager) Phase() domain.Phase { return m.phase }

// Landlord returns the elected seat, or 0 before bidding completes.
func (m *Manager) Landlord() int { return m.landlord }

// Run drives a full game: deal, bidding, play. It returns the result or the
// first unrecoverable error (context cancellation or an accounting bug).
func (m *Manager) Run(ctx context.Context) (Result, error) {
	if err := m.Deal(); err != nil {
		return Result{}, err
	}
	if _, err := m.RunBidding(ctx); err != nil {
		return Result{}, err
	}
	winner, err := m.RunPlay(ctx)
	if err != nil {
		return Result{}, err
	}
	return Result{
		GameID:      m.id,
		Landlord:    m.landlord,
		Winner:      winner,
		LandlordWon: winner == m.landlord,
	}, nil
}

// Deal shuffles the 54-card universe, sets the last 3 cards aside as the
// landlord bonus and round-robins the remaining 51 across the seats. Each
// player then receives its hand.
func (m *Manager) Deal() error {
	if m.phase != domain.PhaseNotStarted {
		return fmt.Errorf("%w: deal in %s", ErrWrongPhase, m.phase)
	}

	cards := domain.FullSet()
	m.rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })

	bonus, err := domain.NewDeckOf(cards[51:]...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConservation, err)
	}
	m.decks[BonusSeat] = bonus
	for seat := 1; seat <= Seats; seat++ {
		m.decks[seat] = domain.NewEmptyDeck()
	}
	for i := 0; i < 51; i++ {
		if err := m.decks[i%3+1].Add(cards[i]); err != nil {
			return fmt.Errorf("%w: %v", ErrConservation, err)
		}
	}
	if err := m.checkConservation(); err != nil {
		return err
	}

	for seat := 1; seat <= Seats; seat++ {
		m.players[seat].AcceptDeck(m.decks[seat])
		m.emit(Event{
			Kind:    EventHandDealt,
			Payload: HandDealtPayload{Seat: seat, Hand: m.decks[seat].Cards()},
			Seats:   []int{seat},
		})
	}

	m.phase = domain.PhaseBidding
	return nil
}

// RunBidding polls the seats from a random start until one calls, electing
// it landlord; if all decline, the start seat is elected by default. A Call
// error or timeout counts as a decline. The bonus deck merges into the
// landlord's hand before play begins.
func (m *Manager) RunBidding(ctx context.Context) (int, error) {
	if m.phase != domain.PhaseBidding {
		return 0, fmt.Errorf("%w: bidding in %s", ErrWrongPhase, m.phase)
	}

	start := m.rng.Intn(Seats) + 1
	m.emit(Event{Kind: EventBiddingStarted, Payload: BiddingStartedPayload{FirstSeat: start}})

	landlord := start
	elected := false
	for i := 0; i < Seats; i++ {
		seat := (start-1+i)%Seats + 1
		called := m.askCall(ctx, seat)
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		m.emit(Event{Kind: EventCallMade, Payload: CallMadePayload{Seat: seat, Called: called}})
		if called {
			landlord = seat
			elected = true
			break
		}
	}

	bonusCards := m.decks[BonusSeat].Cards()
	if err := m.decks[landlord].BatchAdd(bonusCards); err != nil {
		return 0, fmt.Errorf("%w: bonus merge: %v", ErrConservation, err)
	}
	if err := m.decks[BonusSeat].BatchSub(bonusCards); err != nil {
		return 0, fmt.Errorf("%w: bonus merge: %v", ErrConservation, err)
	}
	if err := m.checkConservation(); err != nil {
		return 0, err
	}

	m.landlord = landlord
	m.phase = domain.PhasePlaying
	m.emit(Event{
		Kind:    EventLandlordElected,
		Payload: LandlordElectedPayload{Seat: landlord, Default: !elected, Bonus: bonusCards},
	})
	return landlord, nil
}

// RunPlay drives turns from the landlord's lead until one hand empties and
// returns the winning seat. When both opponents pass, the holder of the
// highest play leads a fresh round. A seat that passes while leading
// forfeits the lead to the next seat; a full cycle of forfeited leads stalls
// the game and aborts it.
func (m *Manager) RunPlay(ctx context.Context) (int, error) {
	if m.phase != domain.PhasePlaying {
		return 0, fmt.Errorf("%w: play in %s", ErrWrongPhase, m.phase)
	}

	current := m.landlord
	var toBeat *domain.Play
	passes := 0
	idleLeads := 0

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		leading := toBeat == nil
		played, cards, err := m.playTurn(ctx, current, toBeat)
		if err != nil {
			return 0, err
		}

		if played {
			toBeat = &domain.Play{Seat: current, Cards: cards}
			passes = 0
			idleLeads = 0
			if m.decks[current].IsEmpty() {
				m.phase = domain.PhaseEnded
				m.emit(Event{Kind: EventGameEnded, Payload: GameEndedPayload{
					GameID:      m.id.String(),
					Winner:      current,
					Landlord:    m.landlord,
					LandlordWon: current == m.landlord,
				}})
				return current, nil
			}
		} else if leading {
			idleLeads++
			if idleLeads >= Seats {
				return 0, ErrStalled
			}
		} else {
			passes++
			if passes == Seats-1 {
				// Both opponents passed; the next advance lands on the
				// holder, who leads a fresh round.
				toBeat = nil
				passes = 0
			}
		}

		current = current%Seats + 1
	}
}

// playTurn runs one bounded-retry turn for a seat. It reports whether cards
// were played; a false return with nil error is a pass. Errors are
// unrecoverable accounting failures or parent-context cancellation.
func (m *Manager) playTurn(ctx context.Context, seat int, toBeat *domain.Play) (bool, []domain.Card, error) {
	player := m.players[seat]
	deck := m.decks[seat]

	var toBeatCards []domain.Card
	if toBeat != nil {
		toBeatCards = toBeat.Cards
	}

	for attempt := 1; attempt <= m.MaxAttempts; attempt++ {
		cards, err := m.askPlay(ctx, seat, toBeat)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return false, nil, ctxErr
			}
			// Timeout or transport failure: same fallback as exhausted
			// retries, the seat loses tempo for this round.
			m.emit(Event{Kind: EventTurnPassed, Payload: TurnPassedPayload{Seat: seat, Forced: true}})
			return false, nil, nil
		}

		if len(cards) == 0 {
			if toBeat == nil {
				// The round leader must put cards down.
				player.Reject(cards)
				continue
			}
			m.emit(Event{Kind: EventTurnPassed, Payload: TurnPassedPayload{Seat: seat}})
			return false, nil, nil
		}

		if !deck.ContainsAll(cards) {
			player.Reject(cards)
			continue
		}
		if err := m.rules.Validate(cards, toBeatCards); err != nil {
			player.Reject(cards)
			continue
		}

		// The play is validated against the seat's own hand, so a batch
		// failure here is a Manager bug, not player input.
		if err := deck.BatchSub(cards); err != nil {
			return false, nil, fmt.Errorf("%w: %v", ErrConservation, err)
		}
		if err := m.discard.BatchAdd(cards); err != nil {
			return false, nil, fmt.Errorf("%w: %v", ErrConservation, err)
		}
		if err := m.checkConservation(); err != nil {
			return false, nil, err
		}

		player.Accept(cards)
		m.emit(Event{Kind: EventCardPlayed, Payload: CardPlayedPayload{
			Seat:      seat,
			Cards:     cards,
			Remaining: deck.Size(),
			NewRound:  toBeat == nil,
		}})
		return true, cards, nil
	}

	m.emit(Event{Kind: EventRetryExhausted, Payload: RetryExhaustedPayload{Seat: seat, Attempts: m.MaxAttempts}})
	m.emit(Event{Kind: EventTurnPassed, Payload: TurnPassedPayload{Seat: seat, Forced: true}})
	return false, nil, nil
}

// askCall queries one seat's bid under the turn deadline. Errors and
// timeouts are declines.
func (m *Manager) askCall(ctx context.Context, seat int) bool {
	callCtx, cancel := m.turnContext(ctx)
	defer cancel()

	called, err := m.players[seat].Call(callCtx)
	if err != nil {
		return false
	}
	return called
}

func (m *Manager) askPlay(ctx context.Context, seat int, toBeat *domain.Play) ([]domain.Card, error) {
	playCtx, cancel := m.turnContext(ctx)
	defer cancel()
	return m.players[seat].Play(playCtx, toBeat)
}

func (m *Manager) turnContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.TurnTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, m.TurnTimeout)
}

// checkConservation verifies that the bonus deck, the three hands and the
// discard pile together hold each of the 54 card IDs exactly once.
func (m *Manager) checkConservation() error {
	seen := make(map[int]int, 54)
	total := 0
	track := func(d *domain.Deck) {
		for _, id := range d.IDs() {
			seen[id]++
			total++
		}
	}
	for seat := BonusSeat; seat <= Seats; seat++ {
		track(m.decks[seat])
	}
	track(m.discard)

	if total != 54 {
		return fmt.Errorf("%w: %d cards tracked, want 54", ErrConservation, total)
	}
	for id, n := range seen {
		if n != 1 {
			return fmt.Errorf("%w: card id %d tracked %d times", ErrConservation, id, n)
		}
	}
	return nil
}

func (m *Manager) emit(ev Event) {
	if m.OnEvent != nil {
		m.OnEvent(ev)
	}
}
