package main

import (
	"context"
	"os"

	"greenchain/internal/auth"
	"greenchain/internal/cli"
	"greenchain/internal/directory"
	"greenchain/internal/event"
	"greenchain/internal/logger"
	"greenchain/internal/notify"
	"greenchain/internal/session"
)

func main() {
	sessionPath := os.Getenv("SESSION_FILE")
	if sessionPath == "" {
		sessionPath = session.DefaultPath()
	}
	store := session.NewFileStore(sessionPath)

	dir, err := directory.NewMemory()
	if err != nil {
		logger.Fatal("failed to seed demo directory", "error", err)
	}

	bus := event.NewBus()
	bus.Subscribe(event.AuditSubscriber())
	bus.Subscribe(notify.Subscriber(cli.ToastSink(os.Stdout)))

	// Hydrates the previous session before the prompt appears
	gate := auth.NewGate(store, dir, bus)

	app := cli.NewApp(gate, os.Stdin, os.Stdout)
	app.Run(context.Background())
}
