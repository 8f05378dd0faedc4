// Package api exposes the catalog and order endpoints over HTTP.
package api

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"

	_ "fastfoodpos/docs"
	"fastfoodpos/pkg/logger"
	"fastfoodpos/pkg/order"
)

// maxBodyBytes caps create-order request bodies.
const maxBodyBytes = 2 << 20

// corsMethods lists every method defined by net/http. go-chi/cors has no
// method wildcard, so non-standard methods are refused at preflight.
var corsMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodConnect,
	http.MethodOptions, http.MethodTrace,
}

// Config carries the dependencies of a Server. Publisher and Tracer are
// optional; Publisher is called on the request path and must not block.
type Config struct {
	State     *State
	Log       *logger.Logger
	Tracer    trace.Tracer
	Publisher order.Publisher
	PublicDir string
}

// Server routes HTTP requests to the catalog and order handlers.
type Server struct {
	state     *State
	log       *logger.Logger
	tracer    trace.Tracer
	publisher order.Publisher
	publicDir string
}

// New creates a Server.
func New(cfg Config) *Server {
	return &Server{
		state:     cfg.State,
		log:       cfg.Log,
		tracer:    cfg.Tracer,
		publisher: cfg.Publisher,
		publicDir: cfg.PublicDir,
	}
}

// Routes returns the complete handler: API routes, Swagger UI and the static
// asset server, wrapped in CORS, panic recovery, request ids and access logs.
func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.Use(s.traceMiddleware)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/products", s.listProductsHandler).Methods(http.MethodGet)
	api.HandleFunc("/orders", s.createOrderHandler).Methods(http.MethodPost)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(s.publicDir))).Methods(http.MethodGet, http.MethodHead)

	var h http.Handler = r
	h = s.recoverMiddleware(h)
	h = s.accessLogMiddleware(h)
	h = requestIDMiddleware(h)
	h = cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: corsMethods,
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{requestIDHeader},
	})(h)
	return h
}
