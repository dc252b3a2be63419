package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrStatusConflict is returned by a conditional update whose status guard matched nothing
	ErrStatusConflict = errors.New("status changed concurrently")

	// bid admission
	ErrAuctionClosed     = errors.New("auction is not accepting bids")
	ErrAuctionOpen       = errors.New("auction is still open")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrRateLimited       = errors.New("too many bids, slow down")
	ErrNotCompliant      = errors.New("participant is not allowed to transact")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidCommitment = errors.New("invalid commitment")
	ErrInvalidAddress    = errors.New("Invalid address")

	// funds
	ErrLockClosed    = errors.New("fund lock already closed")
	ErrPoolExhausted = errors.New("bounty pool balance too low")

	// resolution
	ErrAlreadyResolved    = errors.New("auction already resolved")
	ErrIntegrityViolation = errors.New("data integrity violation")
	ErrOracleUnavailable  = errors.New("random oracle unavailable")
)
