package domain

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrProfileNotFound   = errors.New("farm profile not found")
	ErrProfileExists     = errors.New("farm profile already exists")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidProfile    = errors.New("profile details do not match role")
	ErrRoleForbidden     = errors.New("record kind not available for this role")
	ErrInvalidRecordKind = errors.New("invalid record kind")
	ErrRecordNotFound    = errors.New("record not found")
	ErrSessionNotFound   = errors.New("review session not found")
	ErrNothingExtracted  = errors.New("nothing could be extracted from the uploaded images")
)
