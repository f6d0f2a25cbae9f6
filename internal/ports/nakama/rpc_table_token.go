package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/nhywieza/fight-the-landlord/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// RpcGenerateTableToken handles the RPC call from the client to mint a table
// token for rejoining a seat or spectating a table.
// Payload: {"action": "rejoin" | "spectate", "match_id": "...", "seat": 1}
func RpcGenerateTableToken(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("Authentication required", 16) // UNAUTHENTICATED
	}

	var req struct {
		Action  string `json:"action"`
		MatchID string `json:"match_id"`
		Seat    int    `json:"seat"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
	}

	env := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	secret := env["landlord_token_secret"]
	issuer := env["landlord_token_issuer"]
	if secret == "" || issuer == "" {
		secret = "test-secret"
		issuer = "test-issuer"
		logger.Warn("Table token credentials missing from env, using test defaults.")
	}

	token, err := app.NewTableTokenService(secret, issuer).GenerateToken(userID, req.Action, req.MatchID, req.Seat)
	if err != nil {
		logger.Warn("Failed to generate table token for %s: %v", userID, err)
		return "", runtime.NewError(err.Error(), 3)
	}

	res := map[string]string{
		"token": token,
	}
	resBytes, _ := json.Marshal(res)
	return string(resBytes), nil
}
