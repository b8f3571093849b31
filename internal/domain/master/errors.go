package master

import "errors"

var (
	ErrLookupNotFound = errors.New("lookup entry not found")
	ErrNameExists     = errors.New("an entry with this name already exists")
	ErrUnknownKind    = errors.New("unknown lookup kind")
	ErrInUse          = errors.New("lookup entry is referenced by other records")
)
