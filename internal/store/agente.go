// Package store provides abstractions and implementations for data persistence.
package store

import (
	"context"

	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/domain"
)

// Sort tokens accepted by AgenteStore.List. Anything else must be rejected
// upstream with a 400-class error before reaching the store.
const (
	SortIncorporacaoAsc  = "dataDeIncorporacao"
	SortIncorporacaoDesc = "-dataDeIncorporacao"
)

// AgenteFilter restricts an agent listing to an exact-match conjunction of
// the set fields. The zero value matches everything.
type AgenteFilter struct {
	Cargo string
}

// AgenteStore defines the interface for agent data persistence.
type AgenteStore interface {
	// List retrieves the agents matching the filter, optionally ordered by
	// incorporation date. sort must be empty, SortIncorporacaoAsc or
	// SortIncorporacaoDesc.
	List(ctx context.Context, filter AgenteFilter, sort string) ([]*domain.Agente, error)

	// GetByID retrieves an agent by its unique ID.
	// Returns ErrAgenteNotFound if the agent does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Agente, error)

	// Create saves a new agent and fills in the store-assigned ID.
	Create(ctx context.Context, agente *domain.Agente) error

	// Update replaces the stored fields of the agent identified by
	// agente.ID. The ID itself is never written; a client-supplied id in
	// the payload cannot overwrite the primary key.
	// Returns ErrAgenteNotFound if the agent does not exist.
	Update(ctx context.Context, agente *domain.Agente) error

	// Delete removes an agent by its ID. Cases referencing the agent are
	// removed by the database through ON DELETE CASCADE.
	// Returns ErrAgenteNotFound if the agent does not exist.
	Delete(ctx context.Context, id int64) error
}
