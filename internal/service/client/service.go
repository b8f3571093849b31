package client

import (
	"context"
	"math"
	"time"

	"github.com/staffhive/erp-backend-go/internal/domain/audit"
	"github.com/staffhive/erp-backend-go/internal/domain/client"
)

type ClientServiceImpl struct {
	clientRepo client.ClientRepository
	auditor    audit.Recorder
}

func NewClientService(clientRepo client.ClientRepository, auditor audit.Recorder) client.ClientService {
	return &ClientServiceImpl{clientRepo: clientRepo, auditor: auditor}
}

func mapClientToResponse(c client.Client) client.ClientResponse {
	return client.ClientResponse{
		ID:            c.ID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		PhoneNumber:   c.PhoneNumber,
		Address:       c.Address,
		City:          c.City,
		Country:       c.Country,
		TaxNumber:     c.TaxNumber,
		Active:        c.Active,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     c.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *ClientServiceImpl) GetClient(ctx context.Context, id int64) (client.ClientResponse, error) {
	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return client.ClientResponse{}, err
	}
	return mapClientToResponse(c), nil
}

func (s *ClientServiceImpl) CreateClient(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	created, err := s.clientRepo.Create(ctx, client.Client{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		City:          req.City,
		Country:       req.Country,
		TaxNumber:     req.TaxNumber,
	})
	if err != nil {
		return client.ClientResponse{}, err
	}

	s.auditor.Record(ctx, "client", created.ID, audit.ActionCreate, map[string]interface{}{"name": created.Name})
	return mapClientToResponse(created), nil
}

func (s *ClientServiceImpl) UpdateClient(ctx context.Context, req client.UpdateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}
	if err := s.clientRepo.Update(ctx, req); err != nil {
		return client.ClientResponse{}, err
	}

	s.auditor.Record(ctx, "client", req.ID, audit.ActionUpdate, nil)

	updated, err := s.clientRepo.GetByID(ctx, req.ID)
	if err != nil {
		return client.ClientResponse{}, err
	}
	return mapClientToResponse(updated), nil
}

func (s *ClientServiceImpl) DeleteClient(ctx context.Context, id int64) error {
	if err := s.clientRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.auditor.Record(ctx, "client", id, audit.ActionDelete, nil)
	return nil
}

func (s *ClientServiceImpl) ListClients(ctx context.Context, filter client.ClientFilter) (client.ListClientResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}

	clients, total, err := s.clientRepo.List(ctx, filter)
	if err != nil {
		return client.ListClientResponse{}, err
	}

	resp := client.ListClientResponse{
		Clients:    []client.ClientResponse{},
		TotalItems: total,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, c := range clients {
		resp.Clients = append(resp.Clients, mapClientToResponse(c))
	}
	return resp, nil
}
