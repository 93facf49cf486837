package main

import (
	"context"
	"fmt"
	"log"

	"github.com/kendall-kelly/renovation-manager-api/config"
	"github.com/kendall-kelly/renovation-manager-api/routes"
	"github.com/kendall-kelly/renovation-manager-api/services"
)

func main() {
	log.Println("Starting Renovation Manager API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	var s3Service *services.S3Service
	if cfg.UsesS3() {
		s3Service, err = services.NewS3Service(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize S3: %v", err)
		}
		log.Printf("S3 client ready for bucket %s", cfg.AWSS3Bucket)
	}

	backend, err := newKVStore(cfg, s3Service)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	store := services.NewStore(services.WithKeyPrefix(backend, cfg.StoreKeyPrefix))
	store.Hydrate(ctx)

	var images services.ImageService = services.NewLocalImageService(cfg.UploadDir)
	if cfg.ImageStorage == config.ImageStorageS3 {
		images = services.NewS3ImageService(s3Service)
	}

	router := routes.NewRouter(routes.Dependencies{
		Store:          store,
		Images:         images,
		UploadDir:      cfg.UploadDir,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newKVStore opens the durable key-value medium selected by STORE_BACKEND
func newKVStore(cfg *config.Config, s3Service *services.S3Service) (services.KVStore, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendDatabase:
		db, err := config.ConnectDatabase(cfg)
		if err != nil {
			return nil, err
		}
		return services.NewDatabaseKVStore(db), nil
	case config.StoreBackendS3:
		return services.NewS3KVStore(s3Service, "store/"), nil
	case config.StoreBackendMemory:
		log.Println("warning: using in-memory store, changes will be lost on restart")
		return services.NewMemoryKVStore(), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
