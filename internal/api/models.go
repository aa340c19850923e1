package api

// Request/response structures for both resources.
//
// Input structs use pointer fields so that "field missing" and "field
// present but invalid" are distinguishable, and so partial updates can
// tell which fields were supplied. Only schema-declared fields ever reach
// the persisted object.

// AgenteInput defines the payload for creating or fully replacing an
// agent. All fields are required.
type AgenteInput struct {
	Nome               *string `json:"nome"               validate:"required,min=1"`
	DataDeIncorporacao *string `json:"dataDeIncorporacao" validate:"required,datefmt,notfuture"`
	Cargo              *string `json:"cargo"              validate:"required,min=1"`
}

// AgentePatchInput defines the payload for partially updating an agent.
// Every field is optional, but at least one must be supplied.
type AgentePatchInput struct {
	Nome               *string `json:"nome"               validate:"omitempty,min=1"`
	DataDeIncorporacao *string `json:"dataDeIncorporacao" validate:"omitempty,datefmt,notfuture"`
	Cargo              *string `json:"cargo"              validate:"omitempty,min=1"`
}

// IsEmpty reports whether no field was supplied at all.
func (in *AgentePatchInput) IsEmpty() bool {
	return in.Nome == nil && in.DataDeIncorporacao == nil && in.Cargo == nil
}

// AgenteResponse is the external representation of an agent. The
// incorporation date is always the canonical YYYY-MM-DD text form.
type AgenteResponse struct {
	ID                 int64  `json:"id"`
	Nome               string `json:"nome"`
	DataDeIncorporacao string `json:"dataDeIncorporacao"`
	Cargo              string `json:"cargo"`
}

// CasoInput defines the payload for creating or fully replacing a case.
// All fields are required.
type CasoInput struct {
	Titulo    *string `json:"titulo"    validate:"required,min=1"`
	Descricao *string `json:"descricao" validate:"required,min=1"`
	Status    *string `json:"status"    validate:"required,casostatus"`
	AgenteID  *int64  `json:"agente_id" validate:"required,gt=0"`
}

// CasoPatchInput defines the payload for partially updating a case.
// Every field is optional, but at least one must be supplied.
type CasoPatchInput struct {
	Titulo    *string `json:"titulo"    validate:"omitempty,min=1"`
	Descricao *string `json:"descricao" validate:"omitempty,min=1"`
	Status    *string `json:"status"    validate:"omitempty,casostatus"`
	AgenteID  *int64  `json:"agente_id" validate:"omitempty,gt=0"`
}

// IsEmpty reports whether no field was supplied at all.
func (in *CasoPatchInput) IsEmpty() bool {
	return in.Titulo == nil && in.Descricao == nil && in.Status == nil && in.AgenteID == nil
}

// CasoResponse is the external representation of a case.
type CasoResponse struct {
	ID        int64  `json:"id"`
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
	Status    string `json:"status"`
	AgenteID  int64  `json:"agente_id"`
}
