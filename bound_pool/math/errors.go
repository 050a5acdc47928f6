package math

import "errors"

// Input validation failures: rejected before any curve arithmetic.
var (
	ErrNoZeroTokens          = errors.New("amount must be greater than zero")
	ErrPoolIsLocked          = errors.New("pool is locked")
	ErrTicketTokensLocked    = errors.New("ticket tokens are still vesting")
	ErrNotEnoughTicketTokens = errors.New("not enough ticket tokens")
	ErrInvalidParameter      = errors.New("invalid parameter")
)

// Curve-domain failures: fatal to the call, no partial state change.
var (
	ErrMathOverflow             = errors.New("math overflow")
	ErrSlopeNotNegative         = errors.New("bonding curve must be negatively sloped")
	ErrInterceptNotPositive     = errors.New("bonding curve intercept must be positive")
	ErrTargetAboveRelativeLimit = errors.New("quote target above relative limit")
	ErrScaleTooLow              = errors.New("curve scale too low")
)

// Economic failures.
var ErrSlippageExceeded = errors.New("slippage tolerance exceeded")
