package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/zone2fun/py-asset/internal/auth"
	"github.com/zone2fun/py-asset/internal/business/catalog"
	"github.com/zone2fun/py-asset/internal/business/lead"
	"github.com/zone2fun/py-asset/internal/business/media"
	"github.com/zone2fun/py-asset/internal/line"
	"github.com/zone2fun/py-asset/internal/platform/config"
	firestoreclient "github.com/zone2fun/py-asset/internal/platform/firestore"
	apirouter "github.com/zone2fun/py-asset/internal/platform/http"
	"github.com/zone2fun/py-asset/internal/platform/redisdb"
	"github.com/zone2fun/py-asset/internal/platform/storage"
	"github.com/zone2fun/py-asset/internal/repository"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	firestoreClient, credsSource, err := firestoreclient.New(ctx, cfg)
	if err != nil {
		log.Fatalf("firestore init: %v", err)
	}
	defer firestoreClient.Close()

	if err := firestoreclient.Ping(ctx, firestoreClient); err != nil {
		log.Fatalf("firestore ping: %v", err)
	}
	log.Printf("connected to Firestore project %s using %s credentials", cfg.FirebaseProjectID, credsSource)

	mediaStore, err := storage.NewClient(cfg)
	if err != nil {
		log.Fatalf("media store init: %v", err)
	}

	var revocations auth.RevocationStore
	redisClient, err := redisdb.New(ctx, cfg)
	if err != nil {
		log.Printf("warning: redis unavailable (%v), session revocation is in-memory only", err)
		revocations = auth.NewMemoryRevocations()
	} else {
		defer redisClient.Close()
		revocations = auth.NewRedisRevocations(redisClient)
	}

	propertyRepo := repository.NewPropertyRepository(firestoreClient)
	leadRepo := repository.NewLeadRepository(firestoreClient)

	lineBuilder := line.NewBuilder(cfg.LineOAID)
	uploader := media.NewUploader(mediaStore, 4)
	catalogSvc := catalog.NewService(propertyRepo, lineBuilder)
	leadSvc := lead.NewService(leadRepo, uploader, lineBuilder)
	authSvc := auth.NewService(cfg.AdminUsername, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.SessionTTL, revocations)

	router := apirouter.NewRouter(catalogSvc, leadSvc, uploader, authSvc, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on :%s", cfg.Port)

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}
	log.Println("server exited")
}
