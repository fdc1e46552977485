package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/sherlockdomains/sherlock-go/internal/client/api"
	"github.com/sherlockdomains/sherlock-go/internal/client/auth"
	"github.com/sherlockdomains/sherlock-go/internal/client/cli"
	"github.com/sherlockdomains/sherlock-go/internal/client/iocli"
	"github.com/sherlockdomains/sherlock-go/internal/client/storage/boltdb"
	"github.com/sherlockdomains/sherlock-go/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	apiURL := flag.String("api", "", "API URL (default: "+config.DefaultAPIURL+")")
	dbPath := flag.String("db", "sherlock-client.db", "Path to local database")
	keyHex := flag.String("key", "", "Agent private key (hex)")
	keyFile := flag.String("key-file", "", "Path to file containing agent private key")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	// Создаем контекст
	ctx := context.Background()

	cfg := config.New(*apiURL, *dbPath)

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент и сервис аутентификации
	apiClient := api.NewClient(cfg.APIURL, cfg.Timeout)
	authService := auth.NewService(apiClient, boltStorage, cfg.KeyPassphrase)

	c := cli.New(&cfg, apiClient, authService, boltStorage, boltStorage, iocli.NewStdio(), cli.Keys{
		FromFile: *keyFile,
		FromArgs: *keyHex,
	})

	// Выполняем команду
	c.Run(ctx, command, args[1:])
}

func printVersion() {
	fmt.Printf("Sherlock Domains Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
