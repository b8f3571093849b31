package master

import (
	"context"

	"github.com/staffhive/erp-backend-go/internal/domain/audit"
	"github.com/staffhive/erp-backend-go/internal/domain/master"
)

type MasterServiceImpl struct {
	lookupRepo master.LookupRepository
	auditor    audit.Recorder
}

func NewMasterService(lookupRepo master.LookupRepository, auditor audit.Recorder) master.MasterService {
	return &MasterServiceImpl{lookupRepo: lookupRepo, auditor: auditor}
}

func (s *MasterServiceImpl) Create(ctx context.Context, kind master.Kind, req master.CreateLookupRequest) (master.LookupResponse, error) {
	if !kind.Valid() {
		return master.LookupResponse{}, master.ErrUnknownKind
	}
	if err := req.Validate(); err != nil {
		return master.LookupResponse{}, err
	}

	l, err := s.lookupRepo.Create(ctx, kind, req.Name)
	if err != nil {
		return master.LookupResponse{}, err
	}

	s.auditor.Record(ctx, string(kind), l.ID, audit.ActionCreate, map[string]interface{}{"name": l.Name})
	return master.LookupResponse{ID: l.ID, Name: l.Name}, nil
}

func (s *MasterServiceImpl) Get(ctx context.Context, kind master.Kind, id int64) (master.LookupResponse, error) {
	l, err := s.lookupRepo.GetByID(ctx, kind, id)
	if err != nil {
		return master.LookupResponse{}, err
	}
	return master.LookupResponse{ID: l.ID, Name: l.Name}, nil
}

func (s *MasterServiceImpl) List(ctx context.Context, kind master.Kind) ([]master.LookupResponse, error) {
	entries, err := s.lookupRepo.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	out := []master.LookupResponse{}
	for _, l := range entries {
		out = append(out, master.LookupResponse{ID: l.ID, Name: l.Name})
	}
	return out, nil
}

func (s *MasterServiceImpl) Update(ctx context.Context, kind master.Kind, req master.UpdateLookupRequest) (master.LookupResponse, error) {
	if err := req.Validate(); err != nil {
		return master.LookupResponse{}, err
	}
	if err := s.lookupRepo.Update(ctx, kind, req.ID, req.Name); err != nil {
		return master.LookupResponse{}, err
	}

	s.auditor.Record(ctx, string(kind), req.ID, audit.ActionUpdate, map[string]interface{}{"name": req.Name})
	return master.LookupResponse{ID: req.ID, Name: req.Name}, nil
}

func (s *MasterServiceImpl) Delete(ctx context.Context, kind master.Kind, id int64) error {
	if err := s.lookupRepo.SoftDelete(ctx, kind, id); err != nil {
		return err
	}
	s.auditor.Record(ctx, string(kind), id, audit.ActionDelete, nil)
	return nil
}
