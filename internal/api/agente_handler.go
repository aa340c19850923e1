// Package api provides the HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/api/shared"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/domain"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/platform/logger"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/store"
)

// AgenteHandler handles agent-related HTTP requests.
type AgenteHandler struct {
	agenteStore store.AgenteStore
	logger      *slog.Logger
}

// NewAgenteHandler creates a new AgenteHandler.
func NewAgenteHandler(agenteStore store.AgenteStore, logger *slog.Logger) *AgenteHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AgenteHandler")
	}

	return &AgenteHandler{
		agenteStore: agenteStore,
		logger:      logger.With(slog.String("component", "agente_handler")),
	}
}

// List handles GET /agentes requests.
//
//	@Summary	Retorna uma lista com todos os agentes
//	@Tags		Agentes
//	@Produce	json
//	@Param		cargo	query		string	false	"Filtra agentes por cargo"
//	@Param		sort	query		string	false	"dataDeIncorporacao ou -dataDeIncorporacao"
//	@Success	200		{array}		AgenteResponse
//	@Failure	400		{object}	shared.ErrorResponse
//	@Router		/agentes [get]
func (h *AgenteHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	sort := r.URL.Query().Get("sort")
	if sort != "" && sort != store.SortIncorporacaoAsc && sort != store.SortIncorporacaoDesc {
		log.Debug("invalid sort token", slog.String("sort", sort))
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgInvalidSort)
		return
	}

	filter := store.AgenteFilter{Cargo: r.URL.Query().Get("cargo")}

	agentes, err := h.agenteStore.List(r.Context(), filter, sort)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), MsgInternalError, err)
		return
	}

	responses := make([]AgenteResponse, 0, len(agentes))
	for _, agente := range agentes {
		resp, err := agenteToResponse(agente)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgInternalError, err)
			return
		}
		responses = append(responses, resp)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetByID handles GET /agentes/{id} requests.
//
//	@Summary	Retorna um agente específico pelo ID
//	@Tags		Agentes
//	@Produce	json
//	@Param		id	path		int	true	"ID do agente"
//	@Success	200	{object}	AgenteResponse
//	@Failure	400	{object}	shared.ErrorResponse
//	@Failure	404	{object}	shared.ErrorResponse
//	@Router		/agentes/{id} [get]
func (h *AgenteHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgAgenteInvalidID)
		return
	}

	agente, err := h.agenteStore.GetByID(r.Context(), id)
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

// Create handles POST /agentes requests.
//
//	@Summary	Cadastra um novo agente
//	@Tags		Agentes
//	@Accept		json
//	@Produce	json
//	@Param		agente	body		AgenteInput	true	"Dados do agente"
//	@Success	201		{object}	AgenteResponse
//	@Failure	400		{object}	shared.ErrorResponse
//	@Router		/agentes [post]
func (h *AgenteHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var input AgenteInput
	if fieldErrors := DecodeBody(r, &input); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, MsgInvalidParams, fieldErrors)
		return
	}
	if fieldErrors := CheckStruct(&input, agenteCreateMessages); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, MsgInvalidParams, fieldErrors)
		return
	}

	agente, err := agenteFromInput(&input)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	if err := h.agenteStore.Create(r.Context(), agente); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	resp, err := agenteToResponse(agente)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgInternalError, err)
		return
	}

	log.Debug("agente created", slog.Int64("agente_id", agente.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, resp)
}

// Put handles PUT /agentes/{id} requests, replacing the record wholesale.
//
//	@Summary	Atualiza completamente um agente
//	@Tags		Agentes
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int			true	"ID do agente"
//	@Param		agente	body		AgenteInput	true	"Dados do agente"
//	@Success	200		{object}	AgenteResponse
//	@Failure	400		{object}	shared.ErrorResponse
//	@Failure	404		{object}	shared.ErrorResponse
//	@Router		/agentes/{id} [put]
func (h *AgenteHandler) Put(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgAgenteInvalidID)
		return
	}

	var input AgenteInput
	if fieldErrors := DecodeBody(r, &input); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, MsgInvalidParams, fieldErrors)
		return
	}
	if fieldErrors := CheckStruct(&input, agenteCreateMessages); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, MsgInvalidParams, fieldErrors)
		return
	}

	agente, err := agenteFromInput(&input)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}
	agente.ID = id

	if err := h.agenteStore.Update(r.Context(), agente); err != nil {
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

// Patch handles PATCH /agentes/{id} requests. Supplied fields are merged
// over the stored record by explicit coalescing; absent fields keep their
// stored value and the id is never part of the mergeable set.
//
//	@Summary	Atualiza parcialmente um agente
//	@Tags		Agentes
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"ID do agente"
//	@Param		agente	body		AgentePatchInput	true	"Campos a atualizar"
//	@Success	200		{object}	AgenteResponse
//	@Failure	400		{object}	shared.ErrorResponse
//	@Failure	404		{object}	shared.ErrorResponse
//	@Router		/agentes/{id} [patch]
func (h *AgenteHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgAgenteInvalidID)
		return
	}

	var input AgentePatchInput
	if fieldErrors := DecodeBody(r, &input); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, MsgInvalidParams, fieldErrors)
		return
	}
	if input.IsEmpty() {
		// Distinct response shape: a single top-level message, no errors map.
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgNoFieldsToUpdate)
		return
	}
	if fieldErrors := CheckStruct(&input, agentePatchMessages); fieldErrors != nil {
		shared.RespondWithFieldErrors(w, r, MsgInvalidParams, fieldErrors)
		return
	}

	existing, err := h.agenteStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	merged := *existing
	if input.Nome != nil {
		merged.Nome = *input.Nome
	}
	if input.DataDeIncorporacao != nil {
		date, err := domain.ParseDate(*input.DataDeIncorporacao)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
			return
		}
		merged.DataDeIncorporacao = date
	}
	if input.Cargo != nil {
		merged.Cargo = *input.Cargo
	}

	if err := h.agenteStore.Update(r.Context(), &merged); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	resp, err := agenteToResponse(&merged)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, MsgInternalError, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Delete handles DELETE /agentes/{id} requests. Cases owned by the agent
// are removed by the database cascade.
//
//	@Summary	Remove um agente
//	@Tags		Agentes
//	@Param		id	path	int	true	"ID do agente"
//	@Success	204
//	@Failure	400	{object}	shared.ErrorResponse
//	@Failure	404	{object}	shared.ErrorResponse
//	@Router		/agentes/{id} [delete]
func (h *AgenteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgAgenteInvalidID)
		return
	}

	if err := h.agenteStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// agenteFromInput builds a validated domain entity from a full input.
func agenteFromInput(input *AgenteInput) (*domain.Agente, error) {
	date, err := domain.ParseDate(*input.DataDeIncorporacao)
	if err != nil {
		return nil, err
	}
	return domain.NewAgente(*input.Nome, date, *input.Cargo)
}

// agenteToResponse converts a domain.Agente to its external
// representation, normalizing the incorporation date to YYYY-MM-DD.
func agenteToResponse(agente *domain.Agente) (AgenteResponse, error) {
	date, err := domain.NormalizeDate(agente.DataDeIncorporacao)
	if err != nil {
		return AgenteResponse{}, err
	}

	return AgenteResponse{
		ID:                 agente.ID,
		Nome:               agente.Nome,
		DataDeIncorporacao: date,
		Cargo:              agente.Cargo,
	}, nil
}
