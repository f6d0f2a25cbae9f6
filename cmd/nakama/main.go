package main

import (
	"context"
	"database/sql"

	"github.com/nhywieza/fight-the-landlord/internal/ports/nakama"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule proxies Nakama initialization to the nakama adapter package.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	return nakama.InitModule(ctx, logger, db, nk, initializer)
}

// main is never called when built as a Nakama plugin; it exists so the
// package also compiles under the default exe build mode.
func main() {}
