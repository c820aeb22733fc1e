package auth

import "errors"

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidCode  = errors.New("invalid one-time passcode")
	ErrVerifyFailed = errors.New("passcode verification failed")
	ErrOTPFailed    = errors.New("failed to request passcode")
)
