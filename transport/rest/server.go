package rest

import (
	"fmt"
	"net/http"
	"time"
)

func Start(port string, handlers Handlers) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", handlers.Ping)
	mux.HandleFunc("/game", handlers.GameState)
	mux.HandleFunc("/game/move", handlers.Move)
	mux.HandleFunc("/game/reset", handlers.Reset)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
