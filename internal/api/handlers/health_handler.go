package handlers

import (
	"techmatch/internal/dto"

	"github.com/gofiber/fiber/v2"
)

const apiVersion = "1.0.0"

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check godoc
// @Summary Health check
// @Description Verifica se a API está online e retorna informações de status e versão
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router / [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Message: "API de Análise de Currículos está online",
		Status:  "online",
		Version: apiVersion,
	})
}
