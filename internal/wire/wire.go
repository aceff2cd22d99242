// Package wire is the composition root. It builds the singleton service
// graph lazily: config, logger, database handle, repositories, services.
// The db package itself holds no global state; the one shared handle lives
// here and is released by Close.
package wire

import (
	"database/sql"
	"log"
	"sync"

	"go.uber.org/zap"

	"github.com/example/fleetctl/internal/adapters/sqlite"
	"github.com/example/fleetctl/internal/app"
	"github.com/example/fleetctl/internal/config"
	"github.com/example/fleetctl/internal/db"
	"github.com/example/fleetctl/internal/logging"
	"github.com/example/fleetctl/internal/ports/primary"
)

var (
	once     sync.Once
	database *sql.DB
	logger   *zap.Logger

	truckService       primary.TruckService
	destinationService primary.DestinationService
	tripService        primary.TripService
	deliveryService    primary.DeliveryLogService
)

// TruckService returns the singleton TruckService instance.
func TruckService() primary.TruckService {
	once.Do(initServices)
	return truckService
}

// DestinationService returns the singleton DestinationService instance.
func DestinationService() primary.DestinationService {
	once.Do(initServices)
	return destinationService
}

// TripService returns the singleton TripService instance.
func TripService() primary.TripService {
	once.Do(initServices)
	return tripService
}

// DeliveryLogService returns the singleton DeliveryLogService instance.
func DeliveryLogService() primary.DeliveryLogService {
	once.Do(initServices)
	return deliveryService
}

// Logger returns the singleton logger.
func Logger() *zap.Logger {
	once.Do(initServices)
	return logger
}

// Close flushes the logger and closes the database handle. Safe to call
// when the graph was never initialized.
func Close() {
	if logger != nil {
		_ = logger.Sync()
	}
	if database != nil {
		if err := database.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger = logging.New(cfg.Log)

	database, err = db.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) with the shared handle
	truckRepo := sqlite.NewTruckRepository(database, logger)
	destinationRepo := sqlite.NewDestinationRepository(database, logger)
	tripRepo := sqlite.NewTripRepository(database, logger)
	deliveryRepo := sqlite.NewDeliveryLogRepository(database, logger)

	// Services (primary ports implementation)
	truckService = app.NewTruckService(truckRepo, logger)
	destinationService = app.NewDestinationService(destinationRepo, logger)
	tripService = app.NewTripService(tripRepo, deliveryRepo, logger)
	deliveryService = app.NewDeliveryLogService(deliveryRepo, logger)
}
