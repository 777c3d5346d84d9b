package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "backoffice/internal/config"
	router "backoffice/internal/http"
	"backoffice/internal/http/handlers"
	"backoffice/internal/repositories"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db := intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	reservations := repositories.ReservationRepo{DB: db}
	if err := reservations.EnsureSchema(context.Background()); err != nil {
		log.Fatalf("failed to prepare reservation schema: %v", err)
	}

	travelers := repositories.TravelerRepo{DB: db}
	companions := repositories.CompanionRepo{DB: db}
	destinations := repositories.DestinationRepo{DB: db}

	inventory := services.SeatInventory{
		Reservations: reservations,
		Travelers:    travelers,
	}
	api := &handlers.API{
		Inventory: inventory,
		Booking: services.BookingService{
			Inventory:    inventory,
			Reservations: reservations,
			Travelers:    travelers,
			Companions:   companions,
			Destinations: destinations,
		},
		Roster: services.RosterService{
			Reservations: reservations,
			Travelers:    travelers,
			Companions:   companions,
			Destinations: destinations,
		},
		Cancellation: services.CancellationService{
			Inventory:    inventory,
			Reservations: reservations,
			Travelers:    travelers,
			Companions:   companions,
			Ledger:       services.LoggingLedger{},
		},
		Locks: services.NewDestinationLocks(),
	}

	r := router.NewRouter(env, api)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly")
}
