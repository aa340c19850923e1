package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewAgente(t *testing.T) {
	t.Parallel() // Enable parallel execution

	date := time.Date(2022, time.March, 19, 0, 0, 0, 0, time.UTC)

	agente, err := NewAgente("Tatiane Ribeiro", date, "Delegado")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if agente.ID != 0 {
		t.Errorf("Expected zero ID before insert, got %d", agente.ID)
	}
	if agente.Nome != "Tatiane Ribeiro" {
		t.Errorf("Expected nome %q, got %q", "Tatiane Ribeiro", agente.Nome)
	}
	if !agente.DataDeIncorporacao.Equal(date) {
		t.Errorf("Expected date %v, got %v", date, agente.DataDeIncorporacao)
	}
	if agente.Cargo != "Delegado" {
		t.Errorf("Expected cargo %q, got %q", "Delegado", agente.Cargo)
	}

	// Empty nome
	if _, err := NewAgente("", date, "Delegado"); !errors.Is(err, ErrEmptyField) {
		t.Errorf("Expected error wrapping ErrEmptyField, got %v", err)
	}

	// Empty cargo
	if _, err := NewAgente("Tatiane Ribeiro", date, ""); !errors.Is(err, ErrEmptyField) {
		t.Errorf("Expected error wrapping ErrEmptyField, got %v", err)
	}

	// Whitespace counts as content, matching the request layer's length rule.
	if _, err := NewAgente("   ", date, "  "); err != nil {
		t.Errorf("Expected whitespace-only fields to be accepted, got %v", err)
	}

	// Zero date
	if _, err := NewAgente("Tatiane Ribeiro", time.Time{}, "Delegado"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("Expected error wrapping ErrInvalidDate, got %v", err)
	}

	// Future date
	future := time.Now().AddDate(1, 0, 0)
	if _, err := NewAgente("Tatiane Ribeiro", future, "Delegado"); !errors.Is(err, ErrFutureDate) {
		t.Errorf("Expected error wrapping ErrFutureDate, got %v", err)
	}
}

func TestAgenteValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution

	valid := Agente{
		ID:                 1,
		Nome:               "Gustavo Rodrigues",
		DataDeIncorporacao: time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC),
		Cargo:              "Inspetor",
	}

	if err := valid.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalid := valid
	invalid.Nome = ""
	err := invalid.Validate()
	if !errors.Is(err, ErrEmptyField) {
		t.Errorf("Expected error wrapping ErrEmptyField, got %v", err)
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *ValidationError, got %T", err)
	}
	if verr.Field != "nome" {
		t.Errorf("Expected field nome, got %q", verr.Field)
	}
	if verr.Message != "campo nome não pode ser vazio." {
		t.Errorf("Unexpected message %q", verr.Message)
	}
}
