package usecase

import "github.com/sistemacliente/clientes-api/internal/domain"

// Pre-chequeos de unicidad contra el almacenamiento. Son una optimización de
// mejor esfuerzo: bajo concurrencia el árbitro final son los índices únicos
// de la base de datos, que el repositorio traduce a los mismos errores.

// checkCPFAvailable falla si ya existe un cliente con ese CPF. Solo se usa
// en la creación: después el CPF es inmutable.
func (uc *ClienteUseCase) checkCPFAvailable(cpf string) error {
	existing, err := uc.repo.GetByCPF(cpf)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.CpfJaCadastrado(cpf)
	}
	return nil
}

// checkEmailAvailable falla si un cliente *distinto* ya usa el e-mail.
// excludingID es el id del registro en modificación (0 en la creación);
// repetir el e-mail propio no es conflicto.
func (uc *ClienteUseCase) checkEmailAvailable(email string, excludingID int64) error {
	existing, err := uc.repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != excludingID {
		return domain.ErrEmailJaCadastrado
	}
	return nil
}
