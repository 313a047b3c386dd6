package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chat-relay/auth"
	grpc2 "chat-relay/grpc"
	"chat-relay/grpc/server"
	"chat-relay/membership"
	"chat-relay/moderation"
	"chat-relay/observability"
	"chat-relay/presence"
	"chat-relay/projection"
	pbaccount "chat-relay/proto/account"
	pbchat "chat-relay/proto/chat"
	pbmembership "chat-relay/proto/membership"
	"chat-relay/repositories"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"chat-relay/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for gRPC and background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	//  Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Moderation dictionary
	censored, err := runtime.LoadCensoredWords()
	if err != nil {
		return fmt.Errorf("censored words loading failed: %w", err)
	}
	log.Info("Moderation ready", "words", len(censored.Words), "languages", censored.Languages)
	moderator, err := moderation.NewModerator(censored.Words, config.ModerationCharReplacement)
	if err != nil {
		return fmt.Errorf("moderator build failed: %w", err)
	}

	// 4. Delivery state & router
	presenceRegistry := presence.NewRegistry()
	membershipIndex := membership.NewIndex()
	messageLog := repositories.NewMessageLog(db, log)
	userRepository := repositories.NewUserRepository(db)
	sinkRegistry := runtime.NewSinkRegistry()
	cursors := projection.NewCursors()
	monitoring := observability.NewMonitoring()

	router := runtime.NewRouter(
		log, presenceRegistry, membershipIndex, messageLog, userRepository,
		sinkRegistry, cursors, moderator, monitoring,
		config.EventBufferSize, config.PushTimeout,
	)

	// 5. Supervised background workers
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewPresenceFanoutWorker(log, router.Events(), membershipIndex, presenceRegistry, sinkRegistry, config.PushTimeout),
		workers.NewHealthMonitoringWorker(log, monitoring, config.MetricInterval),
	)

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sup.Run(ctx)

	// 7. gRPC Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	authService := services.NewAuthService(userRepository, config.AuthTokenDuration)
	chatService := services.NewChatService(router)
	membershipService := services.NewMembershipService(membershipIndex, router)

	s := grpc.NewServer(grpc.UnaryInterceptor(auth.Interceptor))
	pbchat.RegisterChatServiceServer(s, grpc2.NewChatServer(
		log, chatService, auth.NewValidator(), presenceRegistry, config.ConnectionBufferSize))
	pbaccount.RegisterAuthServiceServer(s, server.NewAuthServer(authService))
	pbmembership.RegisterMembershipServiceServer(s, server.NewMembershipServer(membershipService))

	// Use an error channel to capture Serve() issues
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 9. Final Cleanup
	s.GracefulStop()
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
