package service

import "errors"

var (
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrInvalidAPIKey = errors.New("invalid API key")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
