package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/nhywieza/fight-the-landlord/internal/app"
	"github.com/nhywieza/fight-the-landlord/internal/bot"
	"github.com/nhywieza/fight-the-landlord/internal/config"
	"github.com/nhywieza/fight-the-landlord/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// matchLabel is the JSON match label used for listing queries.
type matchLabel struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// sessionOutcome carries the game result from the manager goroutine back to
// the match loop.
type sessionOutcome struct {
	result app.Result
	err    error
}

// gameSession is one running game. The manager drives the game on its own
// goroutine; events and the final outcome flow back through buffered channels
// drained by the match loop, which is the only place the dispatcher is used.
type gameSession struct {
	manager *app.Manager
	cancel  context.CancelFunc
	events  chan app.Event
	done    chan sessionOutcome
}

func (gs *gameSession) run(ctx context.Context) {
	result, err := gs.manager.Run(ctx)
	gs.done <- sessionOutcome{result: result, err: err}
}

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats          [app.Seats]string           `json:"seats"`            // user IDs by seat index, empty string means open
	OwnerSeat      int                         `json:"owner_seat"`       // seat index of the match owner, -1 when unset
	LastWinnerSeat int                         `json:"last_winner_seat"` // seat index of the last game's winner, -1 when unset
	Tick           int64                       `json:"tick"`
	Presences      map[string]runtime.Presence `json:"-"` // userID -> presence for targeted messaging
	Humans         map[string]*RemotePlayer    `json:"-"` // userID -> client proxy feeding the game loop
	Bots           map[string]*bot.Agent       `json:"-"` // userID -> active bot agents
	Session        *gameSession                `json:"-"` // nil while in the lobby

	BotsEnabled      bool  `json:"bots_enabled"`
	BotAutoFillDelay int64 `json:"bot_auto_fill_delay"` // ticks to wait before seating bots
	ShortHandedSince int64 `json:"short_handed_since"`  // tick when the lobby went short-handed, 0 when full
}

func (ms *MatchState) OpenSeatCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) HumanCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !bot.IsBot(seat) {
			count++
		}
	}
	return count
}

func (ms *MatchState) seatOf(userID string) int {
	for i, seat := range ms.Seats {
		if seat == userID {
			return i
		}
	}
	return -1
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userID := seats[seatIndex]
	return userID != "" && !bot.IsBot(userID)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userID := range seats {
		if userID != "" && !bot.IsBot(userID) {
			return i
		}
	}
	return -1
}

func newMatchHandler() *matchHandler {
	return &matchHandler{}
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	state := &MatchState{
		OwnerSeat:        -1,
		LastWinnerSeat:   -1,
		Presences:        make(map[string]runtime.Presence),
		Humans:           make(map[string]*RemotePlayer),
		Bots:             make(map[string]*bot.Agent),
		BotsEnabled:      config.BotsEnabled(),
		BotAutoFillDelay: int64(config.GetBotAutoFillDelay().Seconds()),
	}

	labelBytes, err := json.Marshal(matchLabel{Open: state.OpenSeatCount(), Game: "landlord", Phase: "lobby"})
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Allow join if there is an empty seat OR a bot to replace (if game hasn't started)
	if matchState.OpenSeatCount() <= 0 {
		hasBot := false
		if matchState.Session == nil {
			for _, seat := range matchState.Seats {
				if bot.IsBot(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "Match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		if matchState.seatOf(p.GetUserId()) >= 0 {
			// Rejoin keeps the seat and the existing proxy.
			continue
		}

		// Assign seat: try empty seats first, then bots (if lobby)
		assigned := -1
		for i, seatUserID := range matchState.Seats {
			if seatUserID == "" {
				assigned = i
				break
			}
		}
		if assigned < 0 && matchState.Session == nil {
			for i, seatUserID := range matchState.Seats {
				if bot.IsBot(seatUserID) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserID, p.GetUserId(), i)
					delete(matchState.Bots, seatUserID)
					assigned = i
					break
				}
			}
		}

		if assigned < 0 {
			logger.Warn("MatchJoin: User %s joined but no seat (empty or bot) was available.", p.GetUserId())
			continue
		}

		matchState.Seats[assigned] = p.GetUserId()
		matchState.Humans[p.GetUserId()] = NewRemotePlayer(p.GetUserId(), p.GetUsername())
	}

	// Ensure owner seat is assigned to a human player only.
	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
		if matchState.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: Owner set to human seat %d.", matchState.OwnerSeat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)

	return matchState
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		seat := matchState.seatOf(p.GetUserId())
		if seat < 0 {
			continue
		}

		if matchState.Session != nil {
			// Mid-game the seat stays bound to the game: the proxy simply has
			// no client feeding it, so its turns time out into passes. A
			// rejoin reattaches the presence to the same proxy.
			logger.Debug("MatchLeave: User %s left mid-game, seat %d keeps playing by timeout.", p.GetUserId(), seat)
			continue
		}

		matchState.Seats[seat] = ""
		delete(matchState.Humans, p.GetUserId())
		logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), seat)
	}

	newOwnerSeat := findFirstHumanSeat(matchState.Seats[:])
	if newOwnerSeat != matchState.OwnerSeat {
		matchState.OwnerSeat = newOwnerSeat
		if newOwnerSeat >= 0 {
			logger.Debug("MatchLeave: Owner set to human seat %d.", newOwnerSeat)
		}
	}

	if matchState.HumanCount() == 0 && len(matchState.Presences) == 0 {
		if matchState.Session != nil {
			matchState.Session.cancel()
		}
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(ctx, matchState, dispatcher, logger, msg)
		case OpCall:
			mh.handleCall(matchState, dispatcher, logger, msg)
		case OpPlayCards:
			mh.handlePlayCards(matchState, dispatcher, logger, msg)
		case OpPassTurn:
			mh.handlePassTurn(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	mh.drainSession(matchState, dispatcher, logger)

	if matchState.BotsEnabled {
		mh.autoFillBots(matchState, dispatcher, logger)
	}

	return matchState
}

// autoFillBots seats bots on the open seats once a short-handed lobby has
// waited out the configured delay.
func (mh *matchHandler) autoFillBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Session != nil {
		return
	}
	open := state.OpenSeatCount()
	if open == 0 || state.HumanCount() == 0 {
		state.ShortHandedSince = 0
		return
	}

	if state.ShortHandedSince == 0 {
		state.ShortHandedSince = state.Tick
		logger.Debug("autoFillBots: Short-handed lobby detected, starting auto-fill timer.")
		return
	}
	if state.Tick-state.ShortHandedSince < state.BotAutoFillDelay {
		return
	}

	added := false
	for i, seat := range state.Seats {
		if seat != "" {
			continue
		}
		identity := bot.GetBotIdentity(i)
		agent, err := bot.NewAgent(identity.UserID)
		if err != nil {
			logger.Error("autoFillBots: Failed to create bot agent for %s: %v", identity.UserID, err)
			continue
		}
		state.Seats[i] = identity.UserID
		state.Bots[identity.UserID] = agent
		logger.Info("autoFillBots: Added bot %s (%s) to seat %d", identity.DisplayName, identity.UserID, i)
		added = true
	}
	state.ShortHandedSince = 0

	if added {
		mh.updateLabel(state, dispatcher, logger)
		mh.broadcastMatchState(state, dispatcher, logger)
	}
}

// drainSession forwards buffered game events to clients and finalizes the
// session once the manager goroutine reports its outcome.
func (mh *matchHandler) drainSession(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Session == nil {
		return
	}

	draining := true
	for draining {
		select {
		case ev := <-state.Session.events:
			mh.broadcastEvent(state, dispatcher, logger, ev)
		default:
			draining = false
		}
	}

	select {
	case outcome := <-state.Session.done:
		// Every event was queued before the outcome; flush what arrived
		// after the drain above.
		for len(state.Session.events) > 0 {
			mh.broadcastEvent(state, dispatcher, logger, <-state.Session.events)
		}
		if outcome.err != nil {
			logger.Error("Game aborted: %v", outcome.err)
		} else {
			state.LastWinnerSeat = outcome.result.Winner - 1
			logger.Info("Game %s finished: winner seat %d, landlord won=%v", outcome.result.GameID, outcome.result.Winner, outcome.result.LandlordWon)
		}
		state.Session.cancel()
		state.Session = nil
		mh.updateLabel(state, dispatcher, logger)
		mh.broadcastMatchState(state, dispatcher, logger)
	default:
	}
}

func (mh *matchHandler) handleStartGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	logger.Info("StartGame: Request received from %s (seat=%d, owner_seat=%d)", senderID, senderSeat, state.OwnerSeat)

	if state.Session != nil {
		logger.Warn("StartGame: Game already running.")
		return
	}
	if senderSeat != state.OwnerSeat {
		logger.Warn("StartGame: User %s tried to start game but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		return
	}
	if state.OpenSeatCount() != 0 {
		logger.Warn("StartGame: Cannot start with %d open seats.", state.OpenSeatCount())
		return
	}

	players := make(map[int]app.Player, app.Seats)
	for i, userID := range state.Seats {
		if agent, ok := state.Bots[userID]; ok {
			players[i+1] = agent
			continue
		}
		proxy, ok := state.Humans[userID]
		if !ok {
			logger.Error("StartGame: Seat %d user %s has no player proxy.", i, userID)
			return
		}
		players[i+1] = proxy
	}

	manager, err := app.NewManager(players, domain.StandardRules{}, nil)
	if err != nil {
		logger.Error("StartGame: Failed to create game: %v", err)
		return
	}
	manager.MaxAttempts = config.GetMaxPlayAttempts()
	manager.TurnTimeout = config.GetTurnDuration()

	session := &gameSession{
		manager: manager,
		events:  make(chan app.Event, 256),
		done:    make(chan sessionOutcome, 1),
	}
	manager.OnEvent = func(ev app.Event) {
		// The match loop drains every tick; a full buffer means the loop is
		// gone and the event can only be dropped.
		select {
		case session.events <- ev:
		default:
		}
	}

	gameCtx, cancel := context.WithCancel(context.Background())
	session.cancel = cancel
	state.Session = session
	go session.run(gameCtx)

	mh.updateLabel(state, dispatcher, logger)
	logger.Info("StartGame: Game %s started.", manager.ID())
}

func (mh *matchHandler) handleCall(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	proxy, ok := mh.senderProxy(state, dispatcher, logger, msg)
	if !ok {
		return
	}

	var request struct {
		Call bool `json:"call"`
	}
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handleCall: Invalid payload from %s: %v", msg.GetUserId(), err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "invalid call payload")
		return
	}

	if !proxy.SubmitCall(request.Call) {
		logger.Debug("handleCall: Dropped duplicate call answer from %s.", msg.GetUserId())
	}
}

func (mh *matchHandler) handlePlayCards(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	proxy, ok := mh.senderProxy(state, dispatcher, logger, msg)
	if !ok {
		return
	}

	var request struct {
		Cards []string `json:"cards"`
	}
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handlePlayCards: Invalid payload from %s: %v", msg.GetUserId(), err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "invalid play payload")
		return
	}

	cards, err := cardsFromTokens(request.Cards)
	if err != nil {
		logger.Warn("handlePlayCards: User %s sent bad cards: %v", msg.GetUserId(), err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	if len(cards) == 0 {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "play needs cards, use pass instead")
		return
	}

	if !proxy.SubmitPlay(cards) {
		logger.Debug("handlePlayCards: Dropped duplicate play from %s.", msg.GetUserId())
	}
}

func (mh *matchHandler) handlePassTurn(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	proxy, ok := mh.senderProxy(state, dispatcher, logger, msg)
	if !ok {
		return
	}
	if !proxy.SubmitPlay(nil) {
		logger.Debug("handlePassTurn: Dropped duplicate pass from %s.", msg.GetUserId())
	}
}

func (mh *matchHandler) senderProxy(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) (*RemotePlayer, bool) {
	if state.Session == nil {
		logger.Warn("Game message before game start from %s.", msg.GetUserId())
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "game not started")
		return nil, false
	}
	proxy, ok := state.Humans[msg.GetUserId()]
	if !ok {
		logger.Warn("Game message from non-seated user %s.", msg.GetUserId())
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 403, "not seated")
		return nil, false
	}
	return proxy, true
}

// playerInfo is the per-seat block in the match state snapshot.
type playerInfo struct {
	UserID         string `json:"user_id"`
	Seat           int    `json:"seat"`
	DisplayName    string `json:"display_name"`
	IsOwner        bool   `json:"is_owner"`
	IsBot          bool   `json:"is_bot"`
	CardsRemaining int    `json:"cards_remaining"`
}

type matchStateSnapshot struct {
	Seats     []string     `json:"seats"`
	OwnerSeat int          `json:"owner_seat"`
	Tick      int64        `json:"tick"`
	Playing   bool         `json:"playing"`
	Players   []playerInfo `json:"players"`
}

func (mh *matchHandler) broadcastMatchState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	var players []playerInfo
	for i, userID := range state.Seats {
		if userID == "" {
			continue
		}

		displayName := userID
		remaining := 0
		if proxy, ok := state.Humans[userID]; ok {
			displayName = proxy.Name
			remaining = proxy.HandSize()
		} else if agent, ok := state.Bots[userID]; ok {
			displayName = agent.Name
			remaining = agent.HandSize()
		}
		if p, ok := state.Presences[userID]; ok {
			displayName = p.GetUsername()
		}

		players = append(players, playerInfo{
			UserID:         userID,
			Seat:           i + 1,
			DisplayName:    displayName,
			IsOwner:        i == state.OwnerSeat,
			IsBot:          bot.IsBot(userID),
			CardsRemaining: remaining,
		})
	}

	snapshot := matchStateSnapshot{
		Seats:     state.Seats[:],
		OwnerSeat: state.OwnerSeat,
		Tick:      state.Tick,
		Playing:   state.Session != nil,
		Players:   players,
	}
	bytes, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("Failed to marshal match state snapshot: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpMatchState, bytes, nil, nil, true)
}

// broadcastEvent converts one app event to its wire form and dispatches it.
func (mh *matchHandler) broadcastEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var opCode int64
	var payload any

	switch ev.Kind {
	case app.EventHandDealt:
		p := ev.Payload.(app.HandDealtPayload)
		opCode = OpHandDealt
		payload = struct {
			Seat  int      `json:"seat"`
			Cards []string `json:"cards"`
		}{p.Seat, cardsToTokens(p.Hand)}
	case app.EventBiddingStarted:
		p := ev.Payload.(app.BiddingStartedPayload)
		opCode = OpBiddingStarted
		payload = struct {
			FirstSeat int `json:"first_seat"`
		}{p.FirstSeat}
	case app.EventCallMade:
		p := ev.Payload.(app.CallMadePayload)
		opCode = OpCallMade
		payload = struct {
			Seat   int  `json:"seat"`
			Called bool `json:"called"`
		}{p.Seat, p.Called}
	case app.EventLandlordElected:
		p := ev.Payload.(app.LandlordElectedPayload)
		opCode = OpLandlordElected
		payload = struct {
			Seat    int      `json:"seat"`
			Default bool     `json:"default"`
			Bonus   []string `json:"bonus"`
		}{p.Seat, p.Default, cardsToTokens(p.Bonus)}
	case app.EventCardPlayed:
		p := ev.Payload.(app.CardPlayedPayload)
		opCode = OpCardPlayed
		payload = struct {
			Seat      int      `json:"seat"`
			Cards     []string `json:"cards"`
			Remaining int      `json:"remaining"`
			NewRound  bool     `json:"new_round"`
		}{p.Seat, cardsToTokens(p.Cards), p.Remaining, p.NewRound}
	case app.EventTurnPassed:
		p := ev.Payload.(app.TurnPassedPayload)
		opCode = OpTurnPassed
		payload = struct {
			Seat   int  `json:"seat"`
			Forced bool `json:"forced"`
		}{p.Seat, p.Forced}
	case app.EventRetryExhausted:
		// Internal bookkeeping, clients already saw the forced pass.
		return
	case app.EventGameEnded:
		p := ev.Payload.(app.GameEndedPayload)
		opCode = OpGameEnded
		payload = struct {
			GameID      string `json:"game_id"`
			Winner      int    `json:"winner"`
			Landlord    int    `json:"landlord"`
			LandlordWon bool   `json:"landlord_won"`
		}{p.GameID, p.Winner, p.Landlord, p.LandlordWon}
	default:
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	bytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	// Determine recipients (default to broadcast)
	var recipients []runtime.Presence
	if len(ev.Seats) > 0 {
		for _, seat := range ev.Seats {
			if seat < 1 || seat > app.Seats {
				continue
			}
			userID := state.Seats[seat-1]
			if p, ok := state.Presences[userID]; ok {
				recipients = append(recipients, p)
			}
		}

		// If we had intended recipients but none are connected (e.g. they are
		// bots), we MUST NOT broadcast to everyone else.
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)
}

// sendError sends a game error message to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	payload := struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}{code, message}
	bytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal game error: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	dispatcher.BroadcastMessage(OpGameError, bytes, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	phase := "lobby"
	if state.Session != nil {
		phase = "playing"
	}

	labelBytes, err := json.Marshal(matchLabel{Open: state.OpenSeatCount(), Game: "landlord", Phase: phase})
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	if matchState, ok := state.(*MatchState); ok && matchState.Session != nil {
		matchState.Session.cancel()
	}
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
