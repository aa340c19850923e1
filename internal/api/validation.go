package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/api/shared"
	"github.com/wt-journey-backend-01/wt-journey-backend-01-etapa-3-GustavoPR35/internal/domain"
)

// Top-level messages of the error envelope.
const (
	MsgInvalidParams    = "Parâmetros inválidos"
	MsgNoFieldsToUpdate = "Pelo menos um campo deve ser atualizado."
)

// FieldErrors maps a field name to its validation message. Failures that
// cannot be attributed to a declared field go under the "geral" key.
type FieldErrors map[string]string

// Validate is the shared validator instance with the custom rules
// registered. Field names reported in errors are the json tag names.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// datefmt requires the exact YYYY-MM-DD form.
	mustRegister(v, "datefmt", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseDate(fl.Field().String())
		return err == nil
	})

	// notfuture rejects dates later than the current moment. An unparseable
	// value passes here so datefmt reports the format error instead.
	mustRegister(v, "notfuture", func(fl validator.FieldLevel) bool {
		t, err := domain.ParseDate(fl.Field().String())
		if err != nil {
			return true
		}
		return !t.After(time.Now())
	})

	// casostatus restricts a case status to the fixed enumeration.
	mustRegister(v, "casostatus", func(fl validator.FieldLevel) bool {
		return domain.IsValidCasoStatus(domain.CasoStatus(fl.Field().String()))
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		// ALLOW-PANIC: registration only fails on an empty tag name, which
		// is a programming error.
		panic(fmt.Sprintf("failed to register %q validation: %v", tag, err))
	}
}

// Validation messages per schema variant, keyed by field then tag. The
// wording follows the original API contract, including its inconsistent
// casing between the create and patch variants.
var (
	agenteCreateMessages = map[string]map[string]string{
		"nome": {
			"required": "Campo nome é obrigatório.",
			"min":      "campo nome não pode ser vazio.",
		},
		"dataDeIncorporacao": {
			"required":  "Campo dataDeIncorporacao é obrigatório.",
			"datefmt":   "dataDeIncorporacao deve estar no formato YYYY-MM-DD.",
			"notfuture": "dataDeIncorporacao não pode ser uma data futura.",
		},
		"cargo": {
			"required": "Campo cargo é obrigatório.",
			"min":      "Cargo não pode ser vazio.",
		},
	}

	agentePatchMessages = map[string]map[string]string{
		"nome": {
			"min": "Nome não pode ser vazio.",
		},
		"dataDeIncorporacao": {
			"datefmt":   "dataDeIncorporacao deve estar no formato YYYY-MM-DD.",
			"notfuture": "dataDeIncorporacao não pode ser uma data futura.",
		},
		"cargo": {
			"min": "Cargo não pode ser vazio.",
		},
	}

	casoCreateMessages = map[string]map[string]string{
		"titulo": {
			"required": "Campo titulo é obrigatório.",
			"min":      "Titulo não pode ser vazio.",
		},
		"descricao": {
			"required": "Campo descricao é obrigatório.",
			"min":      "Descricao não pode ser vazio.",
		},
		"status": {
			"required":   "Campo status é obrigatório.",
			"casostatus": "Status deve ser aberto ou solucionado.",
		},
		"agente_id": {
			"required": "Campo agente_id é obrigatório.",
			"gt":       "agente_id deve ser um número positivo.",
		},
	}

	casoPatchMessages = map[string]map[string]string{
		"titulo": {
			"min": `Campo "titulo" é obrigatório.`,
		},
		"descricao": {
			"min": `Campo "descricao" é obrigatório.`,
		},
		"status": {
			"casostatus": `Status deve ser "aberto" ou "solucionado".`,
		},
		"agente_id": {
			"gt": "agente_id deve ser um número positivo.",
		},
	}
)

// DecodeBody decodes the request body into v, translating decode failures
// into field errors. A completely empty body decodes to the zero struct so
// required/at-least-one-field rules report the failure instead.
func DecodeBody(r *http.Request, v interface{}) FieldErrors {
	err := shared.DecodeJSON(r, v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return FieldErrors{typeErr.Field: typeMismatchMessage(typeErr.Field)}
	}

	return FieldErrors{"geral": "Corpo da requisição não é um JSON válido."}
}

// typeMismatchMessage produces the "wrong JSON type" message for a field.
func typeMismatchMessage(field string) string {
	if field == "agente_id" {
		return "Campo agente_id é do tipo number."
	}
	return fmt.Sprintf("Campo %s é do tipo string.", field)
}

// CheckStruct validates v and translates validator errors through the
// given message table. Returns nil when validation passes.
func CheckStruct(v interface{}, messages map[string]map[string]string) FieldErrors {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"geral": MsgInvalidParams}
	}

	out := FieldErrors{}
	for _, fe := range verrs {
		field := fe.Field()
		if field == "" {
			field = "geral"
		}

		msg := messages[field][fe.Tag()]
		if msg == "" {
			msg = fmt.Sprintf("Campo %s é inválido.", field)
		}
		out[field] = msg
	}

	return out
}
