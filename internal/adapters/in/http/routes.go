package http

import (
	"net/http"
	"sync"

	"sales/internal/generated/servers"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

type swaggerDoc struct {
	doc string
}

func (d swaggerDoc) ReadDoc() string {
	return d.doc
}

var registerSwaggerOnce sync.Once

// Register mounts the API, /health and the Swagger UI on e and installs the request validator.
func Register(e *echo.Echo, server *Server) error {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return err
	}
	doc, err := swagger.MarshalJSON()
	if err != nil {
		return err
	}

	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{doc: string(doc)})
	})

	e.Validator = NewRequestValidator()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)
	return nil
}
