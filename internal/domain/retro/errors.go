package retro

import "errors"

var (
	ErrAdjustmentNotFound = errors.New("retro adjustment not found")
	ErrInvalidTransition  = errors.New("invalid retro adjustment status transition")
)
