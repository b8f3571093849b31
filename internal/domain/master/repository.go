package master

import "context"

type LookupRepository interface {
	Create(ctx context.Context, kind Kind, name string) (Lookup, error)
	GetByID(ctx context.Context, kind Kind, id int64) (Lookup, error)
	List(ctx context.Context, kind Kind) ([]Lookup, error)
	Update(ctx context.Context, kind Kind, id int64, name string) error
	SoftDelete(ctx context.Context, kind Kind, id int64) error
	// NameMap returns id -> name for the kind, for read-time enrichment.
	NameMap(ctx context.Context, kind Kind) (map[int64]string, error)
}

type MasterService interface {
	Create(ctx context.Context, kind Kind, req CreateLookupRequest) (LookupResponse, error)
	Get(ctx context.Context, kind Kind, id int64) (LookupResponse, error)
	List(ctx context.Context, kind Kind) ([]LookupResponse, error)
	Update(ctx context.Context, kind Kind, req UpdateLookupRequest) (LookupResponse, error)
	Delete(ctx context.Context, kind Kind, id int64) error
}
