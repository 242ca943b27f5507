package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"Sanle/CronJobs"
	"Sanle/DocStore"
	"Sanle/FiberConfig"
	"Sanle/Firebase"
	"Sanle/Models"
	"Sanle/Repository"
	"Sanle/config"
	"Sanle/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if err := Models.Connect(cfg.DBPath); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := Models.SeedAdmin(Models.DB, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Printf("Admin seed failed: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Printf("Could not create upload directory: %v", err)
	}

	authClient, firestoreClient := Firebase.Init(context.Background(), cfg.FirebaseProject, cfg.FirebaseCredsFile)
	store := DocStore.NewStore(firestoreClient, nil)
	repo := Repository.NewCoordinator(Models.DB, store)

	middleware.Chain = middleware.VerifierChain{}
	if authClient != nil {
		middleware.Chain = append(middleware.Chain, &middleware.FirebaseVerifier{Auth: authClient})
	}
	middleware.Chain = append(middleware.Chain, &middleware.LegacyVerifier{Secret: []byte(cfg.JWTSecret)})

	probe := CronJobs.NewHealthProbe(store)
	if err := probe.Start(); err != nil {
		log.Printf("Health probe not started: %v", err)
	}
	defer probe.Stop()

	app := FiberConfig.NewApp(Models.DB, repo, authClient, *cfg)
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
