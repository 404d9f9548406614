package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/accountsim/accountsim/internal/api/fake/router"
	"github.com/accountsim/accountsim/internal/config"
	"github.com/accountsim/accountsim/internal/logger"
	"github.com/accountsim/accountsim/internal/repository/memory"
	"github.com/accountsim/accountsim/internal/script"
	"github.com/accountsim/accountsim/internal/service"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	// The store lives for exactly one script run; nothing survives the
	// process.
	users := memory.NewUserRepository()
	notifications := memory.NewNotificationLog()

	accountService := service.NewAccount(users, notifications, logger)

	r := router.New(accountService, logger, cfg.API.BaseURL, cfg.Script.TraceRequests)
	client := r.Register()

	runner := script.NewRunner(client, notifications, logger)

	logAppVersion()

	if err := runner.Run(ctx); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Success!")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
