package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "transportpro/internal/config"
	router "transportpro/internal/http"
	h "transportpro/internal/http/handlers"
	"transportpro/internal/repositories"
	"transportpro/internal/seed"
	"transportpro/internal/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	data, err := seed.Static(bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("cannot build seed data: %v", err)
	}
	data = loadSeedDB(env, data)

	users := repositories.NewUserRepository(data.Users)
	a := &h.API{
		Trips:  repositories.NewTripRepository(data.Trips, data.Fleet),
		Trucks: repositories.NewTruckRepository(data.Trucks, data.TruckModels),
		Users:  users,
		Auth: services.AuthService{
			Users:    users,
			Secret:   []byte(env.JWTSecret),
			TTL:      env.JWTTTL,
			Denylist: services.NewDenylist(),
		},
		HashCost: bcrypt.DefaultCost,
	}

	r := router.NewRouter(env, a)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}

// loadSeedDB replaces the built-in records with the ones found in the
// optional SEED_DSN database. Any failure keeps the built-in data.
func loadSeedDB(env intconfig.Env, base seed.Data) seed.Data {
	if env.SeedDSN == "" {
		return base
	}
	db, err := intconfig.ConnectSeedDB(env.SeedDSN)
	if err != nil {
		log.Printf("[SEED] %v, using built-in data", err)
		return base
	}
	defer intconfig.CloseSeedDB()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	data, err := repositories.SeedRepository{DB: db}.Load(ctx, base)
	if err != nil {
		log.Printf("[SEED] load failed: %v, using built-in data", err)
		return base
	}
	log.Printf("[SEED] loaded trips=%d trucks=%d users=%d", len(data.Trips), len(data.Trucks), len(data.Users))
	return data
}
