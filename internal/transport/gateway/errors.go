package gateway

import "errors"

var ErrNoDeposits = errors.New("no pending deposits")
