// File: planora/main.go
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"planora/config"
	"planora/database"
	schedulingRepo "planora/database/repository/scheduling"
	"planora/services/scheduling"
	"planora/utils"
)

// engine is the process-wide scheduling service instance.
var engine scheduling.SchedulingService

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	repo := schedulingRepo.NewMongoSchedulingRepo(
		database.Collection("projects"),
		database.Collection("teamMembers"),
		database.Collection("bookings"),
		time.Duration(config.AppConfig.QueryTimeoutSeconds)*time.Second,
	)

	engine = &scheduling.DefaultSchedulingEngine{
		ProjectRepo: repo,
		TeamRepo:    repo,
		BookingRepo: repo,
	}

	logger.Sugar().Infof("planora scheduling engine ready (env=%s)", config.GetEnv())

	// Block until asked to stop. Transports mount the engine from here.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")
}
