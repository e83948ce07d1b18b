package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistemacliente/clientes-api/internal/application/usecase"
	"github.com/sistemacliente/clientes-api/internal/domain"
	"github.com/sistemacliente/clientes-api/internal/domain/entity"
)

func baseCliente() entity.Cliente {
	return entity.Cliente{
		ID:    1,
		Nome:  "Marcus",
		Email: "marcus@gmail.com",
		CPF:   "23501206586",
	}
}

func TestApplyPatch_MapaVacioNoCambiaNada(t *testing.T) {
	got, err := usecase.ApplyPatch(baseCliente(), map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, baseCliente(), got)
}

func TestApplyPatch_SoloLosCamposPresentesCambian(t *testing.T) {
	got, err := usecase.ApplyPatch(baseCliente(), map[string]any{"nome": "Marcus Silva"})
	require.NoError(t, err)
	assert.Equal(t, "Marcus Silva", got.Nome)
	assert.Equal(t, "marcus@gmail.com", got.Email)
	assert.Equal(t, "23501206586", got.CPF)
	assert.Equal(t, int64(1), got.ID)
}

func TestApplyPatch_NomeYEmailJuntos(t *testing.T) {
	got, err := usecase.ApplyPatch(baseCliente(), map[string]any{
		"nome":  "Marcus Silva",
		"email": "silva@gmail.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Marcus Silva", got.Nome)
	assert.Equal(t, "silva@gmail.com", got.Email)
}

func TestApplyPatch_IDRechazadoPorPresencia(t *testing.T) {
	// El valor no importa: la sola presencia de la clave invalida el patch
	for _, val := range []any{float64(99), "99", nil} {
		_, err := usecase.ApplyPatch(baseCliente(), map[string]any{"id": val})
		require.ErrorIs(t, err, domain.ErrArgumentoInvalido)
		assert.Contains(t, err.Error(), "id não pode ser alterado")
	}
}

func TestApplyPatch_CpfYTaxIdRechazadosPorPresencia(t *testing.T) {
	for _, key := range []string{"cpf", "taxId"} {
		for _, val := range []any{"10987654321", nil, float64(1)} {
			_, err := usecase.ApplyPatch(baseCliente(), map[string]any{key: val})
			assert.ErrorIs(t, err, domain.ErrAlteracaoDeCpf, "clave %s", key)
		}
	}
}

func TestApplyPatch_NomeInvalido(t *testing.T) {
	cases := map[string]any{
		"vacío":         "",
		"solo espacios": "   ",
		"nulo":          nil,
		"no string":     float64(3),
	}
	for name, val := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := usecase.ApplyPatch(baseCliente(), map[string]any{"nome": val})
			assert.ErrorIs(t, err, domain.ErrArgumentoInvalido)
		})
	}
}

func TestApplyPatch_EmailConGramaticaInvalida(t *testing.T) {
	_, err := usecase.ApplyPatch(baseCliente(), map[string]any{"email": "marcus@gmail"})
	require.ErrorIs(t, err, domain.ErrArgumentoInvalido)
	assert.Contains(t, err.Error(), "formato do email")
}

func TestApplyPatch_ClaveDesconocidaRechazada(t *testing.T) {
	_, err := usecase.ApplyPatch(baseCliente(), map[string]any{"telefone": "11999990000"})
	assert.ErrorIs(t, err, domain.ErrArgumentoInvalido)
}
