package swiss

import (
	"errors"
	"fmt"
)

// ErrPrecondition is the common cause of every pairing precondition failure.
var ErrPrecondition = errors.New("pairing precondition violated")

var (
	ErrNotEnoughPlayers = fmt.Errorf("%w: not enough players (minimum 2 required)", ErrPrecondition)
	ErrOddPlayerCount   = fmt.Errorf("%w: odd number of players cannot be paired", ErrPrecondition)
)
