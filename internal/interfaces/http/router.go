package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sistemacliente/clientes-api/internal/application/usecase"
	"github.com/sistemacliente/clientes-api/pkg/logger"
)

// RouterDeps dependencias para el router. Logger y Metrics son opcionales
// (los tests montan las rutas sin observabilidad).
type RouterDeps struct {
	ClienteUC *usecase.ClienteUseCase
	Logger    *logger.Logger
	Metrics   *Metrics
}

// Router registra la tabla explícita de rutas de la API. Los paths
// reproducen la superficie HTTP original.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	if deps.Logger != nil {
		app.Use(RequestLogger(deps.Logger))
	}
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", MetricsHandler())
	}

	h := NewClienteHandler(deps.ClienteUC)

	app.Get("/listarclientes", h.List)
	app.Post("/salvarcliente", h.Create)
	app.Get("/encontrarcliente/:id", h.GetByID)
	app.Delete("/deletarporid/:id", h.Delete)
	app.Put("/clientes/:id", h.Update)
	app.Get("/clientecpf/:cpf", h.GetByCPF)
	app.Get("/paginada", h.ListPage)
	app.Get("/paginadaordem", h.ListPageSorted)
	app.Get("/buscapornome", h.SearchByNome)
	app.Patch("/parcial/:id", h.PartialUpdate)
	app.Get("/buscaemail", h.SearchByEmail)
	app.Patch("/atualizaremail/:id", h.UpdateEmail)
	app.Get("/buscarporemail", h.SearchByEmailSorted)
}
