package main

import (
	"log"

	"github.com/jhorlensofteng-web/rifa-maria-iza/config"
	"github.com/jhorlensofteng-web/rifa-maria-iza/internal/appServer"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	cfgFile, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error initializing configs: %v", err)
	}

	cfg, err := config.ParseConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error parsing config: %v", err)
	}

	logrus.Infof("Starting %s with %d tickets (%d reserved for online sale)",
		cfg.App.Title, cfg.App.TotalTickets, cfg.App.OnlineTickets)

	appServer.NewServer(cfg)
}
