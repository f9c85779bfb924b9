package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/park285/cheese-termchess/internal/adapter/chesspresenter"
	"github.com/park285/cheese-termchess/internal/chessbuilder"
	appcfg "github.com/park285/cheese-termchess/internal/config"
	"github.com/park285/cheese-termchess/internal/obslog"
	"github.com/park285/cheese-termchess/internal/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := appcfg.Load()
	if err != nil {
		log.Printf("config error: %v", err)
		return 2
	}
	if err := obslog.InitFromEnv(); err != nil {
		log.Printf("logger init error: %v", err)
		return 2
	}
	defer func() { _ = obslog.Close() }()
	logger := obslog.L()

	deps, err := chessbuilder.New(cfg, logger)
	if err != nil {
		log.Printf("chess init error: %v", err)
		return 2
	}
	for _, w := range deps.Warnings {
		// Printed before the screen takes over the terminal.
		fmt.Fprintln(os.Stderr, w.Error())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Printf("terminal error: %v", err)
		return 2
	}
	if err := screen.Init(); err != nil {
		log.Printf("terminal init error: %v", err)
		return 2
	}

	presenter := chesspresenter.NewPresenter(deps.Formatter,
		term.NewScreenRenderer(screen, deps.Theme, deps.Help),
	)
	driver := term.NewDriver(screen, deps.Session, deps.Keymap, presenter, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := driver.Run(ctx)
	screen.Fini()
	if runErr != nil {
		logger.Error("session_failed", zap.Error(runErr))
		fmt.Fprintln(os.Stderr, deps.Formatter.Message("error.aborted", map[string]any{"Err": runErr}))
		return 1
	}
	return 0
}
