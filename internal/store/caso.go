package store

import (
	"context"

	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/domain"
)

// CasoFilter restricts a case listing to an exact-match conjunction of the
// set fields. The zero value matches everything.
type CasoFilter struct {
	AgenteID int64
	Status   domain.CasoStatus
}

// CasoStore defines the interface for case data persistence.
type CasoStore interface {
	// List retrieves the cases matching the filter.
	List(ctx context.Context, filter CasoFilter) ([]*domain.Caso, error)

	// GetByID retrieves a case by its unique ID.
	// Returns ErrCasoNotFound if the case does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Caso, error)

	// Search performs a case-insensitive substring match of term against
	// the titulo and descricao fields, combined with logical OR.
	Search(ctx context.Context, term string) ([]*domain.Caso, error)

	// Create saves a new case and fills in the store-assigned ID.
	// Returns ErrInvalidEntity (wrapped) if agente_id violates the foreign
	// key constraint.
	Create(ctx context.Context, caso *domain.Caso) error

	// Update replaces the stored fields of the case identified by caso.ID.
	// The ID itself is never written.
	// Returns ErrCasoNotFound if the case does not exist.
	Update(ctx context.Context, caso *domain.Caso) error

	// Delete removes a case by its ID.
	// Returns ErrCasoNotFound if the case does not exist.
	Delete(ctx context.Context, id int64) error
}
