package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sanara/config"
	"sanara/cron"
	"sanara/database"
	appointmentRepo "sanara/database/repository/appointment"
	patientRepo "sanara/database/repository/patient"
	professionalRepo "sanara/database/repository/professional"
	"sanara/handlers"
	"sanara/middleware"
	"sanara/routes"
	"sanara/services/appointment"
	"sanara/services/notification"
	"sanara/services/patient"
	"sanara/services/professional"
	"sanara/services/scheduling"
	"sanara/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitQueueRedis()

	location, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid timezone %q: %v", config.AppConfig.Timezone, err)
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	profRepo := professionalRepo.NewMongoProfessionalRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	patRepo := patientRepo.NewMongoPatientRepo()

	if err := profRepo.EnsureIndexes(); err != nil {
		logger.Warn("failed to ensure professional indexes", zap.Error(err))
	}
	if err := apptRepo.EnsureIndexes(); err != nil {
		logger.Warn("failed to ensure appointment indexes", zap.Error(err))
	}

	// services.
	calendar := scheduling.NewCalendar(location)
	schedulingEngine := &scheduling.DefaultSchedulingEngine{
		Availability: profRepo,
		Appointments: apptRepo,
		Calendar:     calendar,
	}

	notificationService := notification.NewAsynqNotificationService()

	professionalService := &professional.DefaultProfessionalService{
		Repo: profRepo,
	}
	appointmentService := &appointment.DefaultAppointmentService{
		Appointments:  apptRepo,
		Professionals: profRepo,
		Scheduler:     schedulingEngine,
		Calendar:      calendar,
		Notifier:      notificationService,
	}
	patientService := &patient.DefaultPatientService{
		Repo: patRepo,
	}

	// handlers and routes.
	professionalHandler := handlers.NewProfessionalHandler(professionalService, schedulingEngine, calendar)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	patientHandler := handlers.NewPatientHandler(patientService)
	routes.SetupRoutes(router, professionalHandler, appointmentHandler, patientHandler)

	// background workers.
	cron.InitNotificationWorker()
	utils.StartHealthMonitor(utils.GetQueueRedisClient(), database.MongoClient)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server starting", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: HTTP server failed: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("shutdown initiated", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Error("mongo disconnect failed", zap.Error(err))
	}
}
