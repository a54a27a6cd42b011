package main

import (
	"flag"
	"log"
	"os"

	"github.com/apollolabs/apollo/internal/config"
	"github.com/apollolabs/apollo/internal/server"
)

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", "", "Listen address (default :8080, or PORT)")
	configPath := fs.String("config", config.DefaultPath, "Path to the TOML config file")
	fs.Parse(args)

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	cfg.ApplyEnv()

	listen := *addr
	if listen == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		listen = ":" + port
	}

	srv := server.NewServer(cfg)
	r := srv.SetupRouter()

	log.Printf("Starting apollo server on %s", listen)
	if err := r.Run(listen); err != nil {
		log.Fatal(err)
	}
}
