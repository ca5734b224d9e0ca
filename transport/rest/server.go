package rest

import (
	"fmt"
	"net/http"
	"time"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func Start(port string, h Handlers) error {
	router := mux.NewRouter()
	router.HandleFunc("/ping", h.PingHandler).Methods(http.MethodGet)
	router.HandleFunc("/game/{gameID}", h.GameStateHandler).Methods(http.MethodGet)

	cors := ghandlers.CORS(
		ghandlers.AllowedOrigins([]string{"*"}),
		ghandlers.AllowedMethods([]string{http.MethodGet}),
	)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      cors(router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
