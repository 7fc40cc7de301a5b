// ./backend/cmd/wglink/main.go

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/ps-vitor/wglink-sys/backend/internal/config"
	"github.com/ps-vitor/wglink-sys/backend/internal/scrapers/wgzimmer"
	collector "github.com/ps-vitor/wglink-sys/backend/internal/scraping/collectors/wgzimmer"
	"github.com/ps-vitor/wglink-sys/backend/internal/services"
	"github.com/ps-vitor/wglink-sys/backend/pkg/logger"
)

func main() {
	id := flag.String("uuid", "", "listing uuid to fetch")
	file := flag.String("file", "", "extract from a saved HTML page instead of fetching")
	configDir := flag.String("config", config.DefaultDir, "directory holding app.yaml and scraping.yaml")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	c := collector.NewCollector(cfg.Scraping.Wgzimmer.Selectors)

	var record interface{}
	switch {
	case *file != "":
		f, err := os.Open(*file)
		if err != nil {
			log.Fatalf("Error opening %s: %v", *file, err)
		}
		defer f.Close()

		doc, err := collector.ParseDocument(f)
		if err != nil {
			log.Fatalf("Error parsing %s: %v", *file, err)
		}
		record = c.Extract(doc)
	case *id != "":
		svc := services.NewListingService(wgzimmer.NewClient(cfg.Scraping.Wgzimmer), c, logger.New("wglink", cfg.App.Debug))
		record, err = svc.Extract(context.Background(), *id)
		if err != nil {
			log.Fatalf("Error extracting listing: %v", err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}

	jsonData, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling to JSON: %v", err)
	}

	fmt.Println(string(jsonData))
}
