package game

import "errors"

// Rejected intents return one of these; the state is left untouched.
var (
	ErrUnknownUpgrade    = errors.New("unknown upgrade")
	ErrUnknownPerk       = errors.New("unknown perk")
	ErrUnknownStation    = errors.New("unknown station")
	ErrMaxed             = errors.New("upgrade maxed")
	ErrInsufficientReps  = errors.New("not enough reps")
	ErrAlreadyOwned      = errors.New("perk already owned")
	ErrInsufficientCoins = errors.New("not enough gym coins")
	ErrPrestigeLocked    = errors.New("prestige locked")
	ErrAscensionLocked   = errors.New("ascension locked")
)
