package domain

import (
	"errors"
	"os"
)

var (
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrParseUUID          = errors.New("failed to parse UUID")
	ErrTokenNotFound      = errors.New("failed to token not found")
	ErrUnauthorizedAccess = errors.New("resource does not belong to this account")
)
