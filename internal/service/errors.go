package service

import "errors"

var (
	// ErrWrongCredentials is returned by the server auth service when the
	// username is unknown or the password does not match.
	ErrWrongCredentials = errors.New("wrong username or password")

	// ErrEmptyMessage is returned when a message consists only of whitespace.
	ErrEmptyMessage = errors.New("message content is empty")

	// ErrNotAuthenticated is returned by client operations that require an
	// active session when none is present.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSendInFlight is returned when a send is requested while a previous
	// send has not completed yet.
	ErrSendInFlight = errors.New("send already in flight")

	// ErrServerUnavailable is returned when the server cannot be reached or
	// answers with a non-business failure.
	ErrServerUnavailable = errors.New("server unavailable")
)
