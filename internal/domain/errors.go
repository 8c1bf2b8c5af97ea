package domain

import "errors"

var (
	ErrEndpointNotFound    = errors.New("endpoint not found")
	ErrSecretNotFound      = errors.New("secret not found")
	ErrMissingCredential   = errors.New("missing credential")
	ErrNoReply             = errors.New("no reply")
	ErrSystemMessageAppend = errors.New("system message can only lead the transcript")
	ErrInvalidRole         = errors.New("invalid message role")
)
