package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas). Los mensajes al usuario
// se conservan en portugués por compatibilidad con la API original.
var (
	ErrArgumentoInvalido    = errors.New("argumento inválido")
	ErrClienteNaoEncontrado = errors.New("cliente não encontrado")
	ErrCpfJaCadastrado      = errors.New("cpf já cadastrado")
	ErrEmailJaCadastrado    = errors.New("E-mail indisponível para uso, está sendo utilizado por outro cliente.")
	ErrAlteracaoDeCpf       = errors.New("O campo CPF não pode ser alterado.")
	ErrInterno              = errors.New("erro interno")
)

// ArgumentoInvalido envuelve ErrArgumentoInvalido con el mensaje de la causa.
func ArgumentoInvalido(mensagem string) error {
	return fmt.Errorf("%w: %s", ErrArgumentoInvalido, mensagem)
}

// ClienteNaoEncontradoPorID envuelve ErrClienteNaoEncontrado con el id buscado.
func ClienteNaoEncontradoPorID(id int64) error {
	return fmt.Errorf("%w: Cliente com o id = %d não encontrado.", ErrClienteNaoEncontrado, id)
}

// ClienteNaoEncontradoPorCPF envuelve ErrClienteNaoEncontrado con el CPF buscado.
func ClienteNaoEncontradoPorCPF(cpf string) error {
	return fmt.Errorf("%w: Cliente com o CPF = %s não encontrado.", ErrClienteNaoEncontrado, cpf)
}

// CpfJaCadastrado envuelve ErrCpfJaCadastrado con el CPF en conflicto.
func CpfJaCadastrado(cpf string) error {
	return fmt.Errorf("%w: O CPF = %s já está cadastrado", ErrCpfJaCadastrado, cpf)
}

// Mensagem devuelve el texto para el usuario: la parte posterior al sentinel
// si el error fue construido con los helpers de este paquete, o el mensaje
// completo en caso contrario.
func Mensagem(err error) string {
	if u, ok := err.(interface{ Unwrap() error }); ok {
		if rest, found := strings.CutPrefix(err.Error(), u.Unwrap().Error()+": "); found {
			return rest
		}
	}
	return err.Error()
}
