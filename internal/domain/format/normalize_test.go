package format

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Fecha", "FECHA"},
		{"trims and collapses", "  F.   VALOR \t ", "F. VALOR"},
		{"zero width stripped", "IMP\u200bORTE (€)", "IMPORTE (€)"},
		{"bom stripped", "\uFEFFFECHA", "FECHA"},
		{"control chars stripped", "CON\x00CEPTO", "CONCEPTO"},
		{"newlines become spaces", "CARGO/\nABONO", "CARGO/ ABONO"},
		{"accents preserved", "descripción", "DESCRIPCIÓN"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	fixed := []string{"F. VALOR", "  saldo (€)  ", "Cargo/Abono", "", "\u200b\u200b"}
	for _, s := range fixed {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once))
	}

	// Random inputs should behave the same way.
	gofakeit.Seed(42)
	for i := 0; i < 200; i++ {
		s := gofakeit.Sentence(6)
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "input %q", s)
	}
}

func TestHeaderSatisfies(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		assert.True(t, headerSatisfies("FECHA", "FECHA"))
	})
	t.Run("cell extends required", func(t *testing.T) {
		assert.True(t, headerSatisfies("IMPORTE (€)", "IMPORTE"))
	})
	t.Run("required extends cell", func(t *testing.T) {
		assert.True(t, headerSatisfies("IMPORTE", "IMPORTE (€)"))
	})
	t.Run("empty cell never satisfies", func(t *testing.T) {
		assert.False(t, headerSatisfies("", "FECHA"))
	})
	t.Run("unrelated", func(t *testing.T) {
		assert.False(t, headerSatisfies("SALDO", "FECHA"))
	})
}
