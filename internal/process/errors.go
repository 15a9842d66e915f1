package process

import "errors"

var (
	ErrStart = errors.New("failed to start process")
	ErrWait  = errors.New("failed to wait for process")
)
