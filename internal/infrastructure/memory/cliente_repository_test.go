package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistemacliente/clientes-api/internal/domain"
	"github.com/sistemacliente/clientes-api/internal/domain/entity"
	"github.com/sistemacliente/clientes-api/internal/infrastructure/memory"
)

func novoCliente(nome, email, cpf string) *entity.Cliente {
	now := time.Now()
	return &entity.Cliente{Nome: nome, Email: email, CPF: cpf, CreatedAt: now, UpdatedAt: now}
}

func TestCreate_AsignaIDYGuardaCopia(t *testing.T) {
	repo := memory.NewClienteRepository()

	c := novoCliente("Marcus", "marcus@gmail.com", "23501206586")
	saved, err := repo.Create(c)
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)

	// Mutar el puntero del llamador no debe afectar lo guardado
	saved.Nome = "Outro"
	found, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Marcus", found.Nome)
}

func TestCreate_ReplicaLosIndicesUnicos(t *testing.T) {
	repo := memory.NewClienteRepository()
	_, err := repo.Create(novoCliente("Marcus", "marcus@gmail.com", "23501206586"))
	require.NoError(t, err)

	_, err = repo.Create(novoCliente("Carlos", "carlos@gmail.com", "23501206586"))
	assert.ErrorIs(t, err, domain.ErrCpfJaCadastrado)

	_, err = repo.Create(novoCliente("Carlos", "marcus@gmail.com", "10987654321"))
	assert.ErrorIs(t, err, domain.ErrEmailJaCadastrado)
}

func TestGets_AusenciaEsNilNil(t *testing.T) {
	repo := memory.NewClienteRepository()

	c, err := repo.GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = repo.GetByCPF("00000000000")
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = repo.GetByEmail("nadie@gmail.com")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestGetByEmail_EsSensibleAMayusculas(t *testing.T) {
	// La unicidad es por coincidencia exacta; solo la búsqueda por
	// fragmento ignora mayúsculas
	repo := memory.NewClienteRepository()
	_, err := repo.Create(novoCliente("Marcus", "Marcus@Gmail.com", "23501206586"))
	require.NoError(t, err)

	c, err := repo.GetByEmail("marcus@gmail.com")
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = repo.GetByEmail("Marcus@Gmail.com")
	require.NoError(t, err)
	require.NotNil(t, c)
}

func TestSearchByNome_CaseInsensitiveYPaginado(t *testing.T) {
	repo := memory.NewClienteRepository()
	for _, c := range []*entity.Cliente{
		novoCliente("Marcus", "marcus@gmail.com", "23501206586"),
		novoCliente("Antonio", "antonio@gmail.com", "10987654321"),
		novoCliente("Marcelo", "marcelo@gmail.com", "52998224725"),
	} {
		_, err := repo.Create(c)
		require.NoError(t, err)
	}

	list, total, err := repo.SearchByNome("MAR", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	assert.Equal(t, "Marcus", list[0].Nome)
	assert.Equal(t, "Marcelo", list[1].Nome)

	// Segunda página de tamaño 1
	list, total, err = repo.SearchByNome("MAR", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 1)
	assert.Equal(t, "Marcelo", list[0].Nome)
}

func TestSearch_LosMetacaracteresSonLiterales(t *testing.T) {
	// El contrato del puerto es contención literal: % y _ no son comodines
	// (el adaptador de PostgreSQL los escapa en el patrón ILIKE).
	repo := memory.NewClienteRepository()
	_, err := repo.Create(novoCliente("Marcus", "marcus@gmail.com", "23501206586"))
	require.NoError(t, err)
	_, err = repo.Create(novoCliente("Cien %", "cien@gmail.com", "10987654321"))
	require.NoError(t, err)

	_, total, err := repo.SearchByNome("%", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, total, err = repo.SearchByNome("_", 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)

	_, total, err = repo.SearchByEmail("_", 0, 10, "")
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestListPage_OrdenYDesempate(t *testing.T) {
	repo := memory.NewClienteRepository()
	for _, c := range []*entity.Cliente{
		novoCliente("Carlos", "b@gmail.com", "23501206586"),
		novoCliente("Antonio", "c@gmail.com", "10987654321"),
		novoCliente("Carlos", "a@gmail.com", "52998224725"),
	} {
		_, err := repo.Create(c)
		require.NoError(t, err)
	}

	// Sin orden: id ascendente (inserción)
	list, total, err := repo.ListPage(0, 10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, int64(1), list[0].ID)

	// Por nombre: empate Carlos/Carlos se resuelve por id
	list, _, err = repo.ListPage(0, 10, "nome")
	require.NoError(t, err)
	assert.Equal(t, "Antonio", list[0].Nome)
	assert.Equal(t, "b@gmail.com", list[1].Email)
	assert.Equal(t, "a@gmail.com", list[2].Email)

	// Por email
	list, _, err = repo.ListPage(0, 10, "email")
	require.NoError(t, err)
	assert.Equal(t, "a@gmail.com", list[0].Email)
}

func TestUpdate_ReemplazaCamposMutables(t *testing.T) {
	repo := memory.NewClienteRepository()
	saved, err := repo.Create(novoCliente("Marcus", "marcus@gmail.com", "23501206586"))
	require.NoError(t, err)

	saved.Nome = "Marcus Silva"
	saved.Email = "silva@gmail.com"
	require.NoError(t, repo.Update(saved))

	found, err := repo.GetByID(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Marcus Silva", found.Nome)
	assert.Equal(t, "silva@gmail.com", found.Email)
	assert.Equal(t, "23501206586", found.CPF)
}

func TestUpdate_EmailDeOtroRegistroFalla(t *testing.T) {
	repo := memory.NewClienteRepository()
	_, err := repo.Create(novoCliente("Marcus", "marcus@gmail.com", "23501206586"))
	require.NoError(t, err)
	carlos, err := repo.Create(novoCliente("Carlos", "carlos@gmail.com", "10987654321"))
	require.NoError(t, err)

	carlos.Email = "marcus@gmail.com"
	assert.ErrorIs(t, repo.Update(carlos), domain.ErrEmailJaCadastrado)
}

func TestDelete_LiberaElCpf(t *testing.T) {
	repo := memory.NewClienteRepository()
	saved, err := repo.Create(novoCliente("Marcus", "marcus@gmail.com", "23501206586"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(saved.ID))

	// El id nunca se reutiliza, pero el CPF queda libre
	again, err := repo.Create(novoCliente("Marcus", "marcus@gmail.com", "23501206586"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), again.ID)
}
