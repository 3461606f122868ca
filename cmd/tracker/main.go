package main

import (
	"fmt"
	"log/slog"
	"os"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	tracker := service.NewTrackerService(logger)

	// Fixed batch of sensor packages, processed in input order.
	packages := []service.SensorPackage{
		{WorkoutType: domain.CodeSwimming, Data: []float64{720, 1, 80, 25, 40}},
		{WorkoutType: domain.CodeRunning, Data: []float64{15000, 1, 75}},
		{WorkoutType: domain.CodeSportsWalking, Data: []float64{9000, 1, 75, 180}},
	}

	for _, pkg := range packages {
		info, err := tracker.ProcessPackage(pkg)
		if err != nil {
			// Failed entries are skipped; a default workout kind is never
			// substituted.
			logger.Error("skipping sensor package", "workout_type", pkg.WorkoutType, "error", err)
			continue
		}
		fmt.Println(info.GetMessage())
	}
}
