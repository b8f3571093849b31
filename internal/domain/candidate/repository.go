package candidate

import (
	"context"
	"io"
)

type CandidateRepository interface {
	GetByID(ctx context.Context, id int64) (Candidate, error)
	Create(ctx context.Context, c Candidate) (Candidate, error)
	Update(ctx context.Context, req UpdateCandidateRequest) error
	SetResumePath(ctx context.Context, id int64, path string) error
	SoftDelete(ctx context.Context, id int64) error
	List(ctx context.Context, filter CandidateFilter) ([]Candidate, int64, error)
}

type CandidateService interface {
	GetCandidate(ctx context.Context, id int64) (CandidateResponse, error)
	CreateCandidate(ctx context.Context, req CreateCandidateRequest) (CandidateResponse, error)
	UpdateCandidate(ctx context.Context, req UpdateCandidateRequest) (CandidateResponse, error)
	DeleteCandidate(ctx context.Context, id int64) error
	ListCandidates(ctx context.Context, filter CandidateFilter) (ListCandidateResponse, error)
	// UploadResume stores the resume file and records its path on the
	// candidate.
	UploadResume(ctx context.Context, id int64, file io.Reader, filename string) (CandidateResponse, error)
}
