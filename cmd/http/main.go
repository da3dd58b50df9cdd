package main

import (
	"context"
	"diagnosis-service/internal/app/config"
	"diagnosis-service/internal/app/delivery/http/controllers"
	"diagnosis-service/internal/app/delivery/http/middlewares"
	"diagnosis-service/internal/app/delivery/http/routers"
	"diagnosis-service/internal/app/drivers/logger"
	"diagnosis-service/internal/app/services/core/predictions"
	"diagnosis-service/internal/pkg/constvars"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	accessLog := logger.NewLogrusLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	chiRouter := chi.NewRouter()
	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Logger:         log,
		AccessLogger:   accessLog,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Error bootstraping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server started",
			zap.String("address", internalConfig.App.Port),
			zap.String("env", internalConfig.App.Env),
		)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error releasing resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

// bootstrapingTheApp loads the prediction model and wires the HTTP layer. A model that
// fails to load leaves the server up and answering 503, unless MODEL_REQUIRED_AT_STARTUP is set.
func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	vocabulary := predictions.DefaultVocabulary()
	catalog := predictions.DefaultCatalog()

	model, runtimeClose, loadErr := predictions.LoadPredictionModelFromConfig(
		context.Background(),
		bootstrap.Logger,
		bootstrap.DriverConfig,
		bootstrap.InternalConfig.Prediction,
		vocabulary,
		catalog,
	)
	if loadErr != nil {
		if bootstrap.InternalConfig.Prediction.RequiredAtStartup {
			return loadErr
		}
		bootstrap.Logger.Error("Prediction model unavailable, serving without it",
			zap.String(constvars.LoggingArtifactLocation, bootstrap.InternalConfig.Prediction.ArtifactURI),
			zap.Error(loadErr),
		)
	}
	bootstrap.ModelClose = model.Close
	bootstrap.RuntimeClose = runtimeClose

	// Prediction
	predictionUsecase := predictions.NewPredictionUsecase(bootstrap.Logger, vocabulary, catalog, model, loadErr)
	predictionController := controllers.NewPredictionController(bootstrap.Logger, predictionUsecase, bootstrap.InternalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, bootstrap.AccessLogger, middlewares, predictionController)
	return nil
}
