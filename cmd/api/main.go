package main

import (
	"log"
	"os"

	"github.com/hiveden/hwinventory/internal/api"
	"github.com/hiveden/hwinventory/internal/config"
	"github.com/hiveden/hwinventory/internal/greet"
	"github.com/hiveden/hwinventory/internal/hw"
	"github.com/hiveden/hwinventory/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

func main() {
	fs, configFile := newFlagSet(viper.GetViper())
	fs.Parse(os.Args[1:])

	cfg, err := config.Load(viper.GetViper(), *configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, flush, err := logging.New(cfg.LogDevelopment)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer flush()

	collector := hw.NewCollector(
		hw.WithLogger(logger),
		hw.WithSortedInterfaces(cfg.SortInterfaces),
		hw.WithTimeout(cfg.CollectTimeout),
	)
	apiHandler := api.NewAPIHandler(collector, greet.NewGreeter(cfg.GreetingOrigin), logger)

	r := gin.Default()
	apiHandler.RegisterRoutes(r)

	logger.Info("starting API server", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Error(err, "failed to run server")
		flush()
		log.Fatalf("failed to run server: %v", err)
	}
}
