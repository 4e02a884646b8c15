package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"focusday/internal/config"
	"focusday/internal/repository"
	"focusday/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("timezone: %v", err)
	}

	templateRepo := repository.NewTemplateRepository(db)
	generator := service.NewGeneratorService(templateRepo)

	scheduler := service.NewSchedulerService(loc)
	if _, err := scheduler.ScheduleDaily(cfg.GenerateAt, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		created, err := generator.GenerateFor(jobCtx, time.Now().In(loc))
		if err != nil {
			log.Printf("generate instances: %v", err)
			return
		}
		if created > 0 {
			log.Printf("generated %d task instances", created)
		}
	}); err != nil {
		log.Fatalf("schedule generation: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	log.Println("focusday engine started.")
	<-ctx.Done()
	log.Println("Shutdown complete.")
}
