package domain

import "errors"

var (
	// ErrInvalidCardSpec reports a malformed card construction request.
	ErrInvalidCardSpec = errors.New("invalid card spec")
	// ErrDuplicateCard reports an attempt to add a card already in a deck.
	ErrDuplicateCard = errors.New("duplicate card")
	// ErrCardNotFound reports an attempt to remove a card absent from a deck.
	ErrCardNotFound = errors.New("card not found")
	// ErrIllegalPlay reports a proposed play rejected by the rules.
	ErrIllegalPlay = errors.New("illegal play")
)
