package candidate

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/staffhive/erp-backend-go/internal/domain/audit"
	"github.com/staffhive/erp-backend-go/internal/domain/candidate"
	"github.com/staffhive/erp-backend-go/internal/service/file"
)

type CandidateServiceImpl struct {
	candidateRepo candidate.CandidateRepository
	fileService   file.FileService
	auditor       audit.Recorder
}

func NewCandidateService(
	candidateRepo candidate.CandidateRepository,
	fileService file.FileService,
	auditor audit.Recorder,
) candidate.CandidateService {
	return &CandidateServiceImpl{
		candidateRepo: candidateRepo,
		fileService:   fileService,
		auditor:       auditor,
	}
}

func mapCandidateToResponse(c candidate.Candidate) candidate.CandidateResponse {
	return candidate.CandidateResponse{
		ID:              c.ID,
		FirstName:       c.FirstName,
		LastName:        c.LastName,
		Email:           c.Email,
		PhoneNumber:     c.PhoneNumber,
		PositionApplied: c.PositionApplied,
		Source:          c.Source,
		Stage:           string(c.Stage),
		ResumePath:      c.ResumePath,
		Notes:           c.Notes,
		CreatedAt:       c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       c.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *CandidateServiceImpl) GetCandidate(ctx context.Context, id int64) (candidate.CandidateResponse, error) {
	c, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return candidate.CandidateResponse{}, err
	}
	return mapCandidateToResponse(c), nil
}

func (s *CandidateServiceImpl) CreateCandidate(ctx context.Context, req candidate.CreateCandidateRequest) (candidate.CandidateResponse, error) {
	if err := req.Validate(); err != nil {
		return candidate.CandidateResponse{}, err
	}

	created, err := s.candidateRepo.Create(ctx, candidate.Candidate{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		PositionApplied: req.PositionApplied,
		Source:          req.Source,
		Stage:           candidate.StageApplied,
		Notes:           req.Notes,
	})
	if err != nil {
		return candidate.CandidateResponse{}, err
	}

	s.auditor.Record(ctx, "candidate", created.ID, audit.ActionCreate, map[string]interface{}{"email": created.Email})
	return mapCandidateToResponse(created), nil
}

func (s *CandidateServiceImpl) UpdateCandidate(ctx context.Context, req candidate.UpdateCandidateRequest) (candidate.CandidateResponse, error) {
	if err := req.Validate(); err != nil {
		return candidate.CandidateResponse{}, err
	}

	// Stage moves are worth distinguishing in the trail.
	action := audit.ActionUpdate
	if req.Stage != nil {
		action = audit.ActionStatusChange
	}

	if err := s.candidateRepo.Update(ctx, req); err != nil {
		return candidate.CandidateResponse{}, err
	}

	s.auditor.Record(ctx, "candidate", req.ID, action, nil)

	updated, err := s.candidateRepo.GetByID(ctx, req.ID)
	if err != nil {
		return candidate.CandidateResponse{}, err
	}
	return mapCandidateToResponse(updated), nil
}

func (s *CandidateServiceImpl) DeleteCandidate(ctx context.Context, id int64) error {
	if err := s.candidateRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.auditor.Record(ctx, "candidate", id, audit.ActionDelete, nil)
	return nil
}

func (s *CandidateServiceImpl) ListCandidates(ctx context.Context, filter candidate.CandidateFilter) (candidate.ListCandidateResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}

	candidates, total, err := s.candidateRepo.List(ctx, filter)
	if err != nil {
		return candidate.ListCandidateResponse{}, err
	}

	resp := candidate.ListCandidateResponse{
		Candidates: []candidate.CandidateResponse{},
		TotalItems: total,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, c := range candidates {
		resp.Candidates = append(resp.Candidates, mapCandidateToResponse(c))
	}
	return resp, nil
}

func (s *CandidateServiceImpl) UploadResume(ctx context.Context, id int64, fileReader io.Reader, filename string) (candidate.CandidateResponse, error) {
	if _, err := s.candidateRepo.GetByID(ctx, id); err != nil {
		return candidate.CandidateResponse{}, err
	}

	path, err := s.fileService.UploadResume(ctx, id, fileReader, filename)
	if err != nil {
		return candidate.CandidateResponse{}, err
	}
	if err := s.candidateRepo.SetResumePath(ctx, id, path); err != nil {
		return candidate.CandidateResponse{}, err
	}

	s.auditor.Record(ctx, "candidate", id, audit.ActionUpdate, map[string]interface{}{"resume_path": path})

	updated, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return candidate.CandidateResponse{}, err
	}
	return mapCandidateToResponse(updated), nil
}
