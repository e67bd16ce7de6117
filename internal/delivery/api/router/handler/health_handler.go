package handler

import (
	"tutoria/internal/delivery/api/dto"
	"tutoria/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

const apiVersion = "1.0.0"

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, dto.StatusResponse{Status: "ok"})
}

// Teste answers GET /teste for authenticated clients checking their token.
func Teste(c echo.Context) error {
	return response.OK(c, dto.VersionResponse{
		Mensagem: "TutorIA API está rodando!",
		Versao:   apiVersion,
	})
}
