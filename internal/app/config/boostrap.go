package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Logger         *zap.Logger
	AccessLogger   *logrus.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// ModelClose releases the loaded classifier, if any.
	ModelClose func() error
	// RuntimeClose tears down the ONNX Runtime environment after the model is closed.
	RuntimeClose func() error
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.ModelClose != nil {
		err := b.ModelClose()
		if err != nil {
			return err
		}
		log.Println("Successfully closing prediction model")
	}

	if b.RuntimeClose != nil {
		err := b.RuntimeClose()
		if err != nil {
			return err
		}
		log.Println("Successfully closing ONNX Runtime")
	}

	if b.Logger != nil {
		// Sync on stdout/stderr returns EINVAL on some platforms.
		_ = b.Logger.Sync()
		log.Println("Successfully closing Logger")
	}

	return nil
}
