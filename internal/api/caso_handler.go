package api

import (
	"log/slog"
	"net/http"

	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/api/shared"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/domain"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/platform/logger"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/store"
)

// CasoHandler handles case-related HTTP requests. It holds both stores
// because case writes must verify the referenced agent and
// GET /casos/{id}/agente resolves across the two resources.
type CasoHandler struct {
	casoStore   store.CasoStore
	agenteStore store.AgenteStore
	logger      *slog.Logger
}

// NewCasoHandler creates a new CasoHandler.
func NewCasoHandler(casoStore store.CasoStore, agenteStore store.AgenteStore, logger *slog.Logger) *CasoHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CasoHandler")
	}

	return &CasoHandler{
		casoStore:   casoStore,
		agenteStore: agenteStore,
		logger:      logger.With(slog.String("component", "caso_handler")),
	}
}

// List handles GET /casos requests.
//
//	@Summary	Retorna uma lista com todos os casos
//	@Tags		Casos
//	@Produce	json
//	@Param		agente_id	query		int		false	"Lista os casos atribuídos a um agente"
//	@Param		status		query		string	false	"aberto ou solucionado"
//	@Success	200			{array}		CasoResponse
//	@Failure	400			{object}	shared.ErrorResponse
//	@Router		/casos [get]
func (h *CasoHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter store.CasoFilter

	if raw := r.URL.Query().Get("agente_id"); raw != "" {
		agenteID, err := ParseIDValue(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, MsgAgenteInvalidID)
			return
		}
		filter.AgenteID = agenteID
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.CasoStatus(raw)
		if !domain.IsValidCasoStatus(status) {
			shared.RespondWithError(w, r, http.StatusBadRequest, MsgInvalidStatusFilter)
			return
		}
		filter.Status = status
	}

	casos, err := h.casoStore.List(r.Context(), filter)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), MsgInternalError, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, casosToResponses(casos))
}

// Search handles GET /casos/search requests. The match is a single-term
// case-insensitive substring over titulo and descricao.
//
//	@Summary	Pesquisa casos pelo termo no título ou descrição
//	@Tags		Casos
//	@Produce	json
//	@Param		q	query		string	true	"Termo de pesquisa"
//	@Success	200	{array}		CasoResponse
//	@Failure	400	{object}	shared.ErrorResponse
//	@Router		/casos/search [get]
func (h *CasoHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgSearchTermRequired)
		return
	}

	casos, err := h.casoStore.Search(r.Context(), term)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), MsgInternalError, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, casosToResponses(casos))
}

// GetByID handles GET /casos/{id} requests.
//
//	@Summary	Retorna um caso específico pelo ID
//	@Tags		Casos
//	@Produce	json
//	@Param		id	path		int	true	"ID do caso"
//	@Success	200	{object}	CasoResponse
//	@Failure	400	{object}	shared.ErrorResponse
//	@Failure	404	{object}	shared.ErrorResponse
//	@Router		/casos/{id} [get]
func (h *CasoHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgCasoInvalidID)
		return
	}

	caso, err := h.casoStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, casoToResponse(caso))
}

// GetAgente handles GET /casos/{id}/agente requests, resolving the agent
// that owns the case. Not-found semantics apply twice: first the case,
// then the agent.
//
//	@Summary	Retorna o agente responsável por um caso
//	@Tags		Casos
//	@Produce	json
//	@Param		id	path		int	true	"ID do caso"
//	@Success	200	{object}	AgenteResponse
//	@Failure	400	{object}	shared.ErrorResponse
//	@Failure	404	{object}	shared.ErrorResponse
//	@Router		/casos/{id}/agente [get]
func (h *CasoHandler) GetAgente(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgCasoInvalidID)
		return
	}

	caso, err := h.casoStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	agente, err := h.agenteStore.GetByID(r.Context(), caso.AgenteID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	resp, err := agenteToResponse(agente)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgInternalError, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Create handles POST /casos requests. The referenced agent must exist;
// its absence is a 404 with the agent-specific message, never a 400.
//
//	@Summary	Registra um novo caso
//	@Tags		Casos
//	@Accept		json
//	@Produce	json
//	@Param		caso	body		CasoInput	true	"Dados do caso"
//	@Success	201		{object}	CasoResponse
//	@Failure	400		{object}	shared.ErrorResponse
//	@Failure	404		{object}	shared.ErrorResponse
//	@Router		/casos [post]
func (h *CasoHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var input CasoInput
	if fieldErrors := DecodeBody(r, &input); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, MsgInvalidParams, fieldErrors)
		return
	}
	if fieldErrors := CheckStruct(&input, casoCreateMessages); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, MsgInvalidParams, fieldErrors)
		return
	}

	if !h.agenteExists(w, r, *input.AgenteID) {
		return
	}

	caso, err := domain.NewCaso(*input.Titulo, *input.Descricao, domain.CasoStatus(*input.Status), *input.AgenteID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	if err := h.casoStore.Create(r.Context(), caso); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("caso created",
		slog.Int64("caso_id", caso.ID),
		slog.Int64("agente_id", caso.AgenteID))
	shared.RespondWithJSON(w, r, http.StatusCreated, casoToResponse(caso))
}

// Put handles PUT /casos/{id} requests, replacing the record wholesale.
//
//	@Summary	Atualiza completamente um caso
//	@Tags		Casos
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int			true	"ID do caso"
//	@Param		caso	body		CasoInput	true	"Dados do caso"
//	@Success	200		{object}	CasoResponse
//	@Failure	400		{object}	shared.ErrorResponse
//	@Failure	404		{object}	shared.ErrorResponse
//	@Router		/casos/{id} [put]
func (h *CasoHandler) Put(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgCasoInvalidID)
		return
	}

	var input CasoInput
	if fieldErrors := DecodeBody(r, &input); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, MsgInvalidParams, fieldErrors)
		return
	}
	if fieldErrors := CheckStruct(&input, casoCreateMessages); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, MsgInvalidParams, fieldErrors)
		return
	}

	// Case existence first, then agent existence: the two 404s carry
	// distinct messages.
	if _, err := h.casoStore.GetByID(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if !h.agenteExists(w, r, *input.AgenteID) {
		return
	}

	caso, err := domain.NewCaso(*input.Titulo, *input.Descricao, domain.CasoStatus(*input.Status), *input.AgenteID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}
	caso.ID = id

	if err := h.casoStore.Update(r.Context(), caso); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, casoToResponse(caso))
}

// Patch handles PATCH /casos/{id} requests. Supplied fields are merged
// over the stored record by explicit coalescing; the referenced agent is
// re-verified only when agente_id is part of the payload.
//
//	@Summary	Atualiza parcialmente um caso
//	@Tags		Casos
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"ID do caso"
//	@Param		caso	body		CasoPatchInput	true	"Campos a atualizar"
//	@Success	200		{object}	CasoResponse
//	@Failure	400		{object}	shared.ErrorResponse
//	@Failure	404		{object}	shared.ErrorResponse
//	@Router		/casos/{id} [patch]
func (h *CasoHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgCasoInvalidID)
		return
	}

	var input CasoPatchInput
	if fieldErrors := DecodeBody(r, &input); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, MsgInvalidParams, fieldErrors)
		return
	}
	if input.IsEmpty() {
		// Distinct response shape: a single top-level message, no errors map.
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgNoFieldsToUpdate)
		return
	}
	if fieldErrors := CheckStruct(&input, casoPatchMessages); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, MsgInvalidParams, fieldErrors)
		return
	}

	existing, err := h.casoStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if input.AgenteID != nil && !h.agenteExists(w, r, *input.AgenteID) {
		return
	}

	merged := *existing
	if input.Titulo != nil {
		merged.Titulo = *input.Titulo
	}
	if input.Descricao != nil {
		merged.Descricao = *input.Descricao
	}
	if input.Status != nil {
		merged.Status = domain.CasoStatus(*input.Status)
	}
	if input.AgenteID != nil {
		merged.AgenteID = *input.AgenteID
	}

	if err := h.casoStore.Update(r.Context(), &merged); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, casoToResponse(&merged))
}

// Delete handles DELETE /casos/{id} requests.
//
//	@Summary	Remove um caso
//	@Tags		Casos
//	@Param		id	path	int	true	"ID do caso"
//	@Success	204
//	@Failure	400	{object}	shared.ErrorResponse
//	@Failure	404	{object}	shared.ErrorResponse
//	@Router		/casos/{id} [delete]
func (h *CasoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgCasoInvalidID)
		return
	}

	if err := h.casoStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// agenteExists verifies the referenced agent and writes the 404 envelope
// when it is missing. Returns false if the response was already written.
func (h *CasoHandler) agenteExists(w http.ResponseWriter, r *http.Request, agenteID int64) bool {
	if _, err := h.agenteStore.GetByID(r.Context(), agenteID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return false
	}
	return true
}

// casoToResponse converts a domain.Caso to its external representation.
func casoToResponse(caso *domain.Caso) CasoResponse {
	return CasoResponse{
		ID:        caso.ID,
		Titulo:    caso.Titulo,
		Descricao: caso.Descricao,
		Status:    string(caso.Status),
		AgenteID:  caso.AgenteID,
	}
}

func casosToResponses(casos []*domain.Caso) []CasoResponse {
	responses := make([]CasoResponse, 0, len(casos))
	for _, caso := range casos {
		responses = append(responses, casoToResponse(caso))
	}
	return responses
}
