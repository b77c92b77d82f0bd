package model

import "errors"

// Domain errors. Controllers map them to HTTP status codes with errors.Is.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrPrimaryAdmin        = errors.New("cannot delete primary admin")
	ErrAdminExists         = errors.New("an admin account already exists")
	ErrPriceNotFound       = errors.New("market price not found")
	ErrUnknownLocation     = errors.New("unknown location")
	ErrInvalidCoordinates  = errors.New("invalid coordinates")
	ErrCommodityNotFound   = errors.New("commodity not found")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	ErrInsufficientHistory = errors.New("insufficient price history")
)
