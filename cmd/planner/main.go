package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/mirror"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/model"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/storage"
	"github.com/eugene-medvedev/Tomorrow-Planner/internal/update"
)

func main() {
	if os.Getenv("PLANNER_DEBUG") != "" {
		f, err := tea.LogToFile("planner.log", "planner")
		if err != nil {
			fmt.Fprintf(os.Stderr, "planner: open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	store, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "planner: open store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	state, err := store.Load(ctx)
	cancel()
	if errors.Is(err, storage.ErrNotFound) {
		state = model.NewState()
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "planner: load state: %v\n", err)
		os.Exit(1)
	}

	var mr mirror.Mirror = mirror.Nop{}
	if cfg.FirestoreProject != "" {
		fm, err := mirror.NewFirestoreMirror(context.Background(), cfg.FirestoreProject, cfg.FirestoreTokenFile)
		if err != nil {
			log.Printf("planner: firestore mirror disabled: %v", err)
		} else {
			mr = fm
		}
	}

	program := tea.NewProgram(update.NewModelWithRuntime(state, store, mr, cfg))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "planner failed: %v\n", err)
		os.Exit(1)
	}
}
