package liquidation

import "errors"

// ErrInvalidData marks a required collection that is nil where the contract
// requires it to be present, even empty. It always indicates an upstream
// construction bug, never a business condition, so it is surfaced immediately
// rather than defaulted.
var ErrInvalidData = errors.New("invalid data")
