package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"wsd/internal/di"
	"wsd/internal/structures"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	debug := flag.Bool("debug", false, "enable debug mode")
	flag.Parse()

	// .env is a dev convenience; production injects env vars through infra
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	flags := &structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debug,
	}

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "wsd: %s\n", err)
		os.Exit(1)
	}
}
