// The mockapi command serves an in-memory stub of the link-tracker backend
// for local panel development. State resets on restart.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/brainlink/trackpanel/internal/logger"
	"github.com/brainlink/trackpanel/internal/mockapi"
)

var (
	version   string
	buildDate string
)

func main() {
	var (
		address  string
		logLevel string
		showVer  bool
	)
	flag.StringVar(&address, "a", "localhost:5000", "address to listen on")
	flag.StringVar(&logLevel, "log-level", "info", "log level")
	flag.BoolVar(&showVer, "version", false, "print build info and exit")
	flag.Parse()

	if showVer {
		fmt.Printf("Track Panel Mock API\nVersion: %s\nBuild Date: %s\n", orNA(version), orNA(buildDate))
		return
	}

	log := logger.New()
	if err := log.Init(logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Log.Sync() }()

	store := mockapi.NewStore()
	handlers := mockapi.NewHandlers(store, log.Log)
	router := mockapi.NewRouter(handlers, log.Log)

	server := &http.Server{
		Addr:    address,
		Handler: router,
	}

	log.Log.Info("mock API listening", zap.String("address", address))
	if err := server.ListenAndServe(); err != nil {
		log.Log.Fatal("server stopped", zap.Error(err))
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
