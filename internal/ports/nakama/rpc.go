package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/heroiclabs/nakama-common/runtime"
)

// FindTableResponse is the payload returned to clients when requesting a table.
type FindTableResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcFindTable, rpcFindTable); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcTableToken, RpcGenerateTableToken)
}

// rpcFindTable searches for a lobby table with open seats and returns its
// match ID, creating a fresh table when none is listed.
func rpcFindTable(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	query := "+label.open:>=1 +label.game:landlord +label.phase:lobby"
	limit := 10
	authoritative := true
	minSize := 0
	maxSize := 3

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, query)
	if err != nil {
		logger.Error("rpcFindTable [User:%s]: Failed to list matches: %v", userID, err)
		return "", err
	}

	if len(matches) > 0 {
		resp := FindTableResponse{MatchID: matches[0].MatchId, IsNew: false}
		b, _ := json.Marshal(resp)
		return string(b), nil
	}

	// Create new match; seat/owner assignment happens in MatchJoin (server-authoritative).
	matchID, err := nk.MatchCreate(ctx, MatchNameLandlord, map[string]interface{}{})
	if err != nil {
		logger.Error("rpcFindTable [User:%s]: Failed to create match: %v", userID, err)
		return "", err
	}

	logger.Info("rpcFindTable [User:%s]: Created new match %s", userID, matchID)
	resp := FindTableResponse{MatchID: matchID, IsNew: true}
	b, _ := json.Marshal(resp)
	return string(b), nil
}
