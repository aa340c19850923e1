package api

import (
	"errors"
	"net/http"

	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/domain"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/store"
)

// User-facing messages for the error envelope.
const (
	MsgAgenteNotFound   = "Agente não encontrado."
	MsgCasoNotFound     = "Caso não encontrado."
	MsgInternalError    = "Erro interno do servidor."
	MsgRouteNotFound    = "Página não encontrada."
	MsgMethodNotAllowed = "Método não permitido para esta rota."

	MsgAgenteInvalidID = "O ID fornecido para o agente é inválido. Certifique-se de usar um ID válido."
	MsgCasoInvalidID   = "O ID fornecido para o caso é inválido. Certifique-se de usar um ID válido."

	MsgInvalidSort = `Parâmetro sort deve ser "dataDeIncorporacao" ou "-dataDeIncorporacao"`

	MsgInvalidStatusFilter = `Status deve ser "aberto" ou "solucionado".`
	MsgSearchTermRequired  = `Termo de pesquisa "q" é obrigatório.`
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This keeps internal error types from
// leaking to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// A foreign key violation on a case write means the referenced agent
	// disappeared between the existence check and the write; the database
	// constraint is the backstop for that race, and it presents the same
	// way as the check failing.
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidDate),
		errors.Is(err, domain.ErrFutureDate),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrEmptyField):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// error. Internal details never reach the client.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgInternalError
	}

	switch {
	case errors.Is(err, store.ErrAgenteNotFound):
		return MsgAgenteNotFound

	case errors.Is(err, store.ErrCasoNotFound):
		return MsgCasoNotFound

	// See MapErrorToStatusCode: constraint violations on case writes mean
	// the referenced agent no longer exists.
	case errors.Is(err, store.ErrInvalidEntity):
		return MsgAgenteNotFound

	case errors.Is(err, domain.ErrInvalidID):
		return "ID deve ser um número inteiro positivo."

	default:
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return verr.Message
		}
		return MsgInternalError
	}
}
