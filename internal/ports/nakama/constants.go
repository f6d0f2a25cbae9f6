package nakama

const (
	// RpcFindTable is the Nakama RPC id clients call to find or create a table with open seats.
	RpcFindTable = "find_table"

	// RpcTableToken is the Nakama RPC id clients call to mint a rejoin or spectate token.
	RpcTableToken = "table_token"

	// MatchNameLandlord is the authoritative match handler name registered with Nakama.
	MatchNameLandlord = "landlord_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame int64 = 1
	OpCall      int64 = 2
	OpPlayCards int64 = 3
	OpPassTurn  int64 = 4

	// Server -> Client events
	OpMatchState      int64 = 101
	OpHandDealt       int64 = 102 // send privately
	OpBiddingStarted  int64 = 103
	OpCallMade        int64 = 104
	OpLandlordElected int64 = 105
	OpCardPlayed      int64 = 106
	OpTurnPassed      int64 = 107
	OpGameEnded       int64 = 108
	OpGameError       int64 = 109
)
