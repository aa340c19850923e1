package domain

// CasoStatus represents the investigation state of a case.
type CasoStatus string

// Possible case status values.
const (
	CasoStatusAberto      CasoStatus = "aberto"
	CasoStatusSolucionado CasoStatus = "solucionado"
)

// Caso represents a case record assigned to an Agente.
// AgenteID must reference a live Agente at creation and at any update
// that changes it; the database backs this with a foreign key that
// cascades on agent deletion.
type Caso struct {
	ID        int64      `json:"id"`
	Titulo    string     `json:"titulo"`
	Descricao string     `json:"descricao"`
	Status    CasoStatus `json:"status"`
	AgenteID  int64      `json:"agente_id"`
}

// NewCaso creates a new Caso with the given fields. The ID is left zero;
// it is assigned by the store on insert.
// Returns an error if validation fails.
func NewCaso(titulo, descricao string, status CasoStatus, agenteID int64) (*Caso, error) {
	caso := &Caso{
		Titulo:    titulo,
		Descricao: descricao,
		Status:    status,
		AgenteID:  agenteID,
	}

	if err := caso.Validate(); err != nil {
		return nil, err
	}

	return caso, nil
}

// Validate checks if the Caso has valid data.
// Empty means zero length; whitespace counts as content, the same rule
// the request validation layer applies.
// Returns an error if any field fails validation.
func (c *Caso) Validate() error {
	if c.Titulo == "" {
		return NewValidationError("titulo", "Titulo não pode ser vazio.", ErrEmptyField)
	}

	if c.Descricao == "" {
		return NewValidationError("descricao", "Descricao não pode ser vazio.", ErrEmptyField)
	}

	if !IsValidCasoStatus(c.Status) {
		return NewValidationError("status", "Status deve ser aberto ou solucionado.", ErrInvalidStatus)
	}

	if c.AgenteID <= 0 {
		return NewValidationError("agente_id", "agente_id deve ser um número positivo.", ErrInvalidID)
	}

	return nil
}

// IsValidCasoStatus checks if the given status is a valid CasoStatus.
func IsValidCasoStatus(status CasoStatus) bool {
	switch status {
	case CasoStatusAberto, CasoStatusSolucionado:
		return true
	default:
		return false
	}
}
