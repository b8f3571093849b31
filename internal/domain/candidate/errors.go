package candidate

import "errors"

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrEmailExists       = errors.New("candidate with this email already exists")
)
