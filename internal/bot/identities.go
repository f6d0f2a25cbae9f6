package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

// BotIdentity is a bot persona advertised to human players.
type BotIdentity struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Difficulty  string `json:"difficulty"` // "easy" or "hard"
}

const botUserIDPrefix = "bot_"

// defaultIdentities back the seats when no identities file is configured.
var defaultIdentities = []BotIdentity{
	{UserID: "bot_chen", Username: "chen", DisplayName: "Chen", Difficulty: "easy"},
	{UserID: "bot_mei", Username: "mei", DisplayName: "Mei", Difficulty: "easy"},
	{UserID: "bot_laowang", Username: "laowang", DisplayName: "Lao Wang", Difficulty: "hard"},
}

var (
	botIdentities []BotIdentity
	botConfigMap  map[string]BotIdentity
	loadOnce      sync.Once
	loadErr       error
)

// LoadIdentities loads bot personas from the given path. Missing or broken
// files fall back to the built-in defaults; the error reports why.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		botIdentities = defaultIdentities

		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			buildConfigMap()
			return
		}

		var loaded []BotIdentity
		if err := json.Unmarshal(data, &loaded); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			buildConfigMap()
			return
		}
		if len(loaded) > 0 {
			botIdentities = loaded
		}
		buildConfigMap()
	})
	return loadErr
}

func buildConfigMap() {
	botConfigMap = make(map[string]BotIdentity, len(botIdentities))
	for _, identity := range botIdentities {
		if identity.UserID != "" {
			botConfigMap[identity.UserID] = identity
		}
	}
}

// IsBot reports whether the given user id represents a bot seat.
func IsBot(userID string) bool {
	if botConfigMap != nil {
		if _, ok := botConfigMap[userID]; ok {
			return true
		}
	}
	return strings.HasPrefix(userID, botUserIDPrefix)
}

// GetBotIdentity returns a persona for the given seat index, cycling through
// the configured identities.
func GetBotIdentity(seatIndex int) BotIdentity {
	ids := botIdentities
	if len(ids) == 0 {
		ids = defaultIdentities
	}
	if seatIndex < 0 {
		seatIndex = 0
	}
	return ids[seatIndex%len(ids)]
}

// GetBotUsername returns the display name for a bot user id, or "".
func GetBotUsername(userID string) string {
	if identity, ok := botConfigMap[userID]; ok {
		return identity.DisplayName
	}
	return ""
}

// identityFor resolves a persona for a bot user id, falling back to a
// generic easy persona for unknown ids.
func identityFor(userID string) BotIdentity {
	if identity, ok := botConfigMap[userID]; ok {
		return identity
	}
	for _, identity := range defaultIdentities {
		if identity.UserID == userID {
			return identity
		}
	}
	return BotIdentity{UserID: userID, DisplayName: userID, Difficulty: "easy"}
}
