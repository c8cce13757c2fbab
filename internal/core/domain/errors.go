package domain

import "errors"

var ErrArtworkNotFound = errors.New("artwork not found")
var ErrUserNotFound = errors.New("user not found")
var ErrArtistNotFound = errors.New("artist not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrValidation = errors.New("validation failed")
