package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tpgus72513/for-UnderDog-Revolution/internal/config"
	"github.com/tpgus72513/for-UnderDog-Revolution/internal/handler"
	"github.com/tpgus72513/for-UnderDog-Revolution/internal/model/profile"
	"github.com/tpgus72513/for-UnderDog-Revolution/internal/service/ai"
	"github.com/tpgus72513/for-UnderDog-Revolution/internal/service/chat"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	profileStore := profile.NewMemoryStore(profile.Seed())
	chatService := chat.NewService(profileStore, cfg.AI.MaxHistory)

	// Daily content and the mood log work without a model credential;
	// only reply generation is gated on it.
	var aiService *ai.Service
	if cfg.AI.Enabled() {
		aiService, err = ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing without reply generation - check GEMINI_API_KEY")
		} else {
			log.Printf("AI service initialized (model=%s, streaming=%t)", cfg.AI.Model, cfg.AI.StreamResponse)
		}
	} else {
		log.Println("GEMINI_API_KEY not configured, reply generation disabled")
	}

	router := handler.NewRouter(profileStore, chatService, aiService, cfg.App.DailyWordCount)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("coach backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
