package domain

import (
	"time"
)

// Agente represents a personnel record of the police department.
// The incorporation date is stored as a calendar date; its external
// representation is always the YYYY-MM-DD text form (see NormalizeDate).
type Agente struct {
	ID                 int64     `json:"id"`
	Nome               string    `json:"nome"`
	DataDeIncorporacao time.Time `json:"dataDeIncorporacao"`
	Cargo              string    `json:"cargo"`
}

// NewAgente creates a new Agente with the given fields. The ID is left
// zero; it is assigned by the store on insert.
// Returns an error if validation fails.
func NewAgente(nome string, dataDeIncorporacao time.Time, cargo string) (*Agente, error) {
	agente := &Agente{
		Nome:               nome,
		DataDeIncorporacao: dataDeIncorporacao,
		Cargo:              cargo,
	}

	if err := agente.Validate(); err != nil {
		return nil, err
	}

	return agente, nil
}

// Validate checks if the Agente has valid data.
// Empty means zero length; whitespace counts as content, the same rule
// the request validation layer applies.
// Returns an error if any field fails validation.
func (a *Agente) Validate() error {
	if a.Nome == "" {
		return NewValidationError("nome", "campo nome não pode ser vazio.", ErrEmptyField)
	}

	if a.DataDeIncorporacao.IsZero() {
		return NewValidationError("dataDeIncorporacao", "dataDeIncorporacao deve estar no formato YYYY-MM-DD.", ErrInvalidDate)
	}

	if a.DataDeIncorporacao.After(time.Now()) {
		return NewValidationError("dataDeIncorporacao", "dataDeIncorporacao não pode ser uma data futura.", ErrFutureDate)
	}

	if a.Cargo == "" {
		return NewValidationError("cargo", "Cargo não pode ser vazio.", ErrEmptyField)
	}

	return nil
}
