package routers

import (
	"diagnosis-service/internal/app/config"
	"diagnosis-service/internal/app/delivery/http/controllers"
	"diagnosis-service/internal/app/delivery/http/middlewares"
	"diagnosis-service/internal/pkg/constvars"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// scoringRoutes wraps the scoring handler with the per-IP limiter and the body cap.
type scoringRoutes struct {
	predict http.Handler
}

func newScoringRoutes(internalConfig *config.InternalConfig, m *middlewares.Middlewares, predictionController *controllers.PredictionController) *scoringRoutes {
	limiter := middlewares.NewRateLimiter(
		m.Log,
		internalConfig.App.PredictionRequestsPerMinute,
		time.Minute,
		time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second,
	)
	return &scoringRoutes{
		predict: limiter.Limit(m.BodyLimit(http.HandlerFunc(predictionController.Predict))),
	}
}

func attachLegacyPredictRoute(router chi.Router, scoring *scoringRoutes) {
	router.Method(constvars.MethodPost, "/predict", scoring.predict)
}

func attachPredictionRoutes(router chi.Router, middlewares *middlewares.Middlewares, predictionController *controllers.PredictionController, scoring *scoringRoutes) {
	router.Method(constvars.MethodPost, "/", scoring.predict)
	router.Get(fmt.Sprintf("/%s", constvars.ResourceSymptoms), predictionController.ListSymptoms)
	router.Get(fmt.Sprintf("/%s", constvars.ResourceDiseases), predictionController.ListDiseases)
	router.Get(fmt.Sprintf("/%s/{%s}", constvars.ResourceDiseases, constvars.URLParamDisease), predictionController.FindDiseaseReference)
}
