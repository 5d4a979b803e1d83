package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"chat-relay/contract"
	"chat-relay/internal"
	"chat-relay/relay"
	"chat-relay/repositories"
	"chat-relay/sink"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires configuration, storage, registry and listener, then blocks
// until a termination signal. Returning the error to main keeps every
// defer (badger close, listener stop) on the shutdown path.
func run() error {
	// 1. Configuration & logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Storage (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.StorageFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("storage opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing store...")
		_ = db.Close()
	}()

	// 3. Stores, registry, listener
	contacts, err := repositories.NewContactRepository(db, log)
	if err != nil {
		return fmt.Errorf("loading contact store: %w", err)
	}
	conversations := repositories.NewConversationRepository(db, log)

	var events contract.EventSink = sink.NewSlogSink(log)
	if config.ConsoleEvents {
		events = sink.NewConsoleSink(os.Stdout)
	}

	registry := relay.NewRegistry(events, log)
	listener := relay.NewListener(contacts, conversations, registry, events, log)

	// 4. Optional store inspector
	if config.DebugPort > 0 {
		internal.StartDebugServer(db, config.DebugPort, func() map[string]any {
			return map[string]any{
				"live":     len(registry.Snapshot()),
				"contacts": len(contacts.All()),
				"time":     time.Now().Format(time.RFC822),
			}
		})
		log.Info("Inspector available", "url", fmt.Sprintf("http://localhost:%d/inspect", config.DebugPort))
	}

	// 5. Signals & lifecycle
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !listener.Start(config.Port) {
		return fmt.Errorf("relay failed to start on port %d", config.Port)
	}
	defer listener.Stop()

	<-ctx.Done()
	log.Info("Shutting down...")
	return nil
}
