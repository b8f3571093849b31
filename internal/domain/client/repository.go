package client

import "context"

type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (Client, error)
	Create(ctx context.Context, c Client) (Client, error)
	Update(ctx context.Context, req UpdateClientRequest) error
	SoftDelete(ctx context.Context, id int64) error
	List(ctx context.Context, filter ClientFilter) ([]Client, int64, error)
}

type ClientService interface {
	GetClient(ctx context.Context, id int64) (ClientResponse, error)
	CreateClient(ctx context.Context, req CreateClientRequest) (ClientResponse, error)
	UpdateClient(ctx context.Context, req UpdateClientRequest) (ClientResponse, error)
	DeleteClient(ctx context.Context, id int64) error
	ListClients(ctx context.Context, filter ClientFilter) (ListClientResponse, error)
}
