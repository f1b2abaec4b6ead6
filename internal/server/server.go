package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bespoke-cakes/backend/internal/handler"
	"github.com/bespoke-cakes/backend/internal/repository"
	"github.com/bespoke-cakes/backend/internal/service"
)

type Server struct {
	e *echo.Echo
}

// New wires the catalog stack over the given database handle. A nil handle
// is valid: the repository then serves the static fallback catalog.
func New(database *mongo.Database) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"*"},
	}))

	cakeRepo := repository.NewCakeRepository(database)
	cakeSvc := service.NewCakeService(cakeRepo)
	cakeHandler := handler.NewCakeHandler(cakeSvc)
	diagHandler := handler.NewDiagHandler(database)

	e.GET("/", diagHandler.Root)
	e.GET("/api/hello", diagHandler.Hello)
	e.GET("/test", diagHandler.Status)
	e.GET("/cakes", cakeHandler.List)
	e.GET("/cakes/:slug", cakeHandler.Get)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}
