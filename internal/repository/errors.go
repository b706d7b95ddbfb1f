package repository

import "errors"

// ErrNotFound indicates an entity was not located or has expired.
var ErrNotFound = errors.New("repository: not found")

// ErrAlreadyExists indicates a create hit an existing key.
var ErrAlreadyExists = errors.New("repository: already exists")
