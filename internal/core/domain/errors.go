package domain

import "errors"

// Error kinds returned by the ledger operations. Every kind aborts the call
// it is returned from with nothing persisted.
var (
	ErrAlreadyInitialized  = errors.New("already initialized")
	ErrNotInitialized      = errors.New("not initialized")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidAddress      = errors.New("invalid address")
	ErrNotFound            = errors.New("not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrCampaignExpired     = errors.New("campaign expired")
	ErrDeadlineNotReached  = errors.New("deadline not reached")
	ErrTargetNotMet        = errors.New("target not met")
	ErrArithmeticOverflow  = errors.New("arithmetic overflow")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Kind returns the stable machine readable name of a ledger error, or
// "internal" for anything else.
func Kind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "internal"
}

var kinds = []struct {
	err  error
	name string
}{
	{ErrAlreadyInitialized, "AlreadyInitialized"},
	{ErrNotInitialized, "NotInitialized"},
	{ErrInvalidAmount, "InvalidAmount"},
	{ErrInvalidAddress, "InvalidAddress"},
	{ErrNotFound, "NotFound"},
	{ErrUnauthorized, "Unauthorized"},
	{ErrCampaignExpired, "CampaignExpired"},
	{ErrDeadlineNotReached, "DeadlineNotReached"},
	{ErrTargetNotMet, "TargetNotMet"},
	{ErrArithmeticOverflow, "ArithmeticOverflow"},
	{ErrInsufficientBalance, "InsufficientBalance"},
}
