package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistemacliente/clientes-api/internal/domain"
	"github.com/sistemacliente/clientes-api/internal/domain/validation"
)

func TestValidateNome(t *testing.T) {
	cases := []struct {
		name    string
		nome    string
		wantErr bool
	}{
		{"válido", "Marcus", false},
		{"mínimo 3 caracteres", "Ana", false},
		{"máximo 60 caracteres", strings.Repeat("a", 60), false},
		{"acentos cuentan como un carácter", "José", false},
		{"vacío", "", true},
		{"solo espacios", "   ", true},
		{"muy corto", "Jo", true},
		{"muy largo", strings.Repeat("a", 61), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validation.ValidateNome(tc.nome)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrArgumentoInvalido)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"válido simple", "marcus@gmail.com", false},
		{"local-part con puntos", "marcus.silva@empresa.com.br", false},
		{"local-part con símbolos permitidos", "user_+&*-@dominio.org", false},
		{"TLD de 7 letras", "a@b.example", false},
		{"vacío", "", true},
		{"solo espacios", "  ", true},
		{"sin arroba", "marcusgmail.com", true},
		{"sin dominio", "marcus@", true},
		{"TLD de una letra", "marcus@gmail.c", true},
		{"TLD de 8 letras", "marcus@gmail.abcdefgh", true},
		{"puntos consecutivos en local-part", "mar..cus@gmail.com", true},
		{"espacio interno", "mar cus@gmail.com", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validation.ValidateEmail(tc.email)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrArgumentoInvalido)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCPF(t *testing.T) {
	cases := []struct {
		name    string
		cpf     string
		wantErr bool
	}{
		{"11 dígitos", "23501206586", false},
		{"vacío", "", true},
		{"10 dígitos", "2350120658", true},
		{"12 dígitos", "235012065867", true},
		{"con puntos y guión", "235.012.065-86", true},
		{"con letras", "2350120658a", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validation.ValidateCPF(tc.cpf)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrArgumentoInvalido)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// El merge-patch comparte exactamente la misma gramática de e-mail que la
// validación de entrada: una sola constante exportada.
func TestEmailRegexCompartida(t *testing.T) {
	assert.True(t, validation.EmailRegex.MatchString("marcus@gmail.com"))
	assert.False(t, validation.EmailRegex.MatchString("marcus@gmail"))
}
