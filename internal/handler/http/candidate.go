package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/staffhive/erp-backend-go/internal/domain/candidate"
	"github.com/staffhive/erp-backend-go/internal/handler/http/response"
)

type CandidateHandler interface {
	GetCandidate(w http.ResponseWriter, r *http.Request)
	CreateCandidate(w http.ResponseWriter, r *http.Request)
	UpdateCandidate(w http.ResponseWriter, r *http.Request)
	DeleteCandidate(w http.ResponseWriter, r *http.Request)
	ListCandidates(w http.ResponseWriter, r *http.Request)
	UploadResume(w http.ResponseWriter, r *http.Request)
}

type candidateHandlerImpl struct {
	candidateService candidate.CandidateService
}

func NewCandidateHandler(candidateService candidate.CandidateService) CandidateHandler {
	return &candidateHandlerImpl{candidateService: candidateService}
}

func (h *candidateHandlerImpl) GetCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Candidate ID must be numeric")
		return
	}

	result, err := h.candidateService.GetCandidate(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *candidateHandlerImpl) CreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req candidate.CreateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	result, err := h.candidateService.CreateCandidate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Candidate created successfully", result)
}

func (h *candidateHandlerImpl) UpdateCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Candidate ID must be numeric")
		return
	}

	var req candidate.UpdateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	req.ID = id

	result, err := h.candidateService.UpdateCandidate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Candidate updated successfully", result)
}

func (h *candidateHandlerImpl) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Candidate ID must be numeric")
		return
	}

	if err := h.candidateService.DeleteCandidate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Candidate deleted successfully", nil)
}

func (h *candidateHandlerImpl) ListCandidates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := candidate.CandidateFilter{Search: q.Get("search")}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	if v := q.Get("stage"); v != "" {
		stage := candidate.Stage(v)
		if !stage.Valid() {
			response.BadRequest(w, "Unknown recruitment stage")
			return
		}
		filter.Stage = &stage
	}

	result, err := h.candidateService.ListCandidates(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, result.Candidates, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	})
}

func (h *candidateHandlerImpl) UploadResume(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Candidate ID must be numeric")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form")
		return
	}
	f, header, err := r.FormFile("resume")
	if err != nil {
		response.BadRequest(w, "Resume file is required")
		return
	}
	defer f.Close()

	result, err := h.candidateService.UploadResume(r.Context(), id, f, header.Filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Resume uploaded successfully", result)
}
