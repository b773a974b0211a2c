package service

import "errors"

// Server-side errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrValidationNoUserID      = errors.New("no user ID was given")
)

// Client-side errors.
var (
	// ErrValueNotFound is returned by Load when neither the local store nor
	// the remote authority has the key.
	ErrValueNotFound = errors.New("value not found")

	// ErrInvalidKey is returned for keys the store cannot hold.
	ErrInvalidKey = errors.New("invalid key")

	// ErrLocalStorage wraps any failure of the on-device store. These are the
	// only failures a Save reports.
	ErrLocalStorage = errors.New("local storage failure")

	// ErrRemoteSync wraps failures talking to the remote authority. The sync
	// scheduler absorbs them into its retry accounting.
	ErrRemoteSync = errors.New("remote sync failed")
)
