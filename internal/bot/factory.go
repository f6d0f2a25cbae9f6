package bot

import (
	"fmt"
)

// NewBrain creates a new AI brain based on the specified level.
func NewBrain(level BotLevel) (Brain, error) {
	switch level {
	case BotLevelCautious:
		return CautiousBot{}, nil
	case BotLevelGreedy:
		return GreedyBot{}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}

// levelFor maps a configured difficulty string to a strategy level.
func levelFor(difficulty string) BotLevel {
	switch difficulty {
	case "hard":
		return BotLevelGreedy
	default:
		return BotLevelCautious
	}
}
