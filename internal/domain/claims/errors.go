package claims

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration   = errors.New("configuration error")
	ErrSessionInit     = errors.New("session init failed")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrBackend         = errors.New("backend error")

	ErrCredentialMissing = fmt.Errorf("%w: no valid credential source", ErrConfiguration)
	ErrMissingUID        = fmt.Errorf("%w: admin user uid is not set", ErrConfiguration)
)

func IsErrConfiguration(err error) bool   { return errors.Is(err, ErrConfiguration) }
func IsErrSessionInit(err error) bool     { return errors.Is(err, ErrSessionInit) }
func IsErrUserNotFound(err error) bool    { return errors.Is(err, ErrUserNotFound) }
func IsErrInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }
func IsErrBackend(err error) bool         { return errors.Is(err, ErrBackend) }
