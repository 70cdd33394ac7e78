package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/bellacucina/api/handlers"
	"github.com/bellacucina/api/middlewares"
	"github.com/bellacucina/api/storage"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

func SetupRoutes(menu *storage.MenuStore, orders *storage.OrderStore) *Server {
	router := mux.NewRouter()
	router.Use(middlewares.Recovery, middlewares.RequestLogger)

	mh := &handlers.MenuHandler{Store: menu}
	oh := &handlers.OrderHandler{Store: orders}
	sh := &handlers.StatsHandler{Menu: menu, Orders: orders}

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")
	router.HandleFunc("/admin/login", handlers.AdminLogin).Methods("POST")

	// public storefront
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/menu", mh.List).Methods("GET")
	api.HandleFunc("/menu/{id}", mh.Get).Methods("GET")
	api.HandleFunc("/orders", oh.List).Methods("GET")
	api.HandleFunc("/orders", oh.Create).Methods("POST")
	api.HandleFunc("/orders/{id}", oh.Get).Methods("GET")

	// admin only
	admin := router.PathPrefix("/api").Subrouter()
	admin.Use(middlewares.AdminAuthMiddleware)

	admin.HandleFunc("/menu", mh.Create).Methods("POST")
	admin.HandleFunc("/menu/{id}", mh.Update).Methods("PUT")
	admin.HandleFunc("/menu/{id}", mh.Delete).Methods("DELETE")
	admin.HandleFunc("/orders/{id}", oh.UpdateStatus).Methods("PATCH")
	admin.HandleFunc("/admin/stats", sh.Stats).Methods("GET")

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(port string) error {
	svr.server = &http.Server{
		Addr:              port,
		Handler:           svr.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
