package candidate

import "time"

type Candidate struct {
	ID              int64
	FirstName       string
	LastName        *string
	Email           string
	PhoneNumber     *string
	PositionApplied *string
	Source          *string
	Stage           Stage
	ResumePath      *string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

// Stage is the recruitment pipeline stage.
type Stage string

const (
	StageApplied   Stage = "applied"
	StageScreening Stage = "screening"
	StageInterview Stage = "interview"
	StageOffered   Stage = "offered"
	StageHired     Stage = "hired"
	StageRejected  Stage = "rejected"
)

func (s Stage) Valid() bool {
	switch s {
	case StageApplied, StageScreening, StageInterview, StageOffered, StageHired, StageRejected:
		return true
	}
	return false
}
