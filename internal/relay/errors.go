package relay

import "errors"

var (
	ErrInvalidConfig = errors.New("relay: invalid config")
	ErrDrainTimeout  = errors.New("relay: in-flight deliveries did not finish in time")
)
