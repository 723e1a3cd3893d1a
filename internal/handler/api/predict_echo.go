package api

import (
	"errors"

	models "lottopick/internal/domain/models"
	"lottopick/internal/services/predict"
	"lottopick/internal/usecase"
	xhttp "lottopick/pkg/http"
	xlogger "lottopick/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Requested windows outside this range are clamped, not rejected.
const (
	windowMin = 10
	windowMax = 500
)

// PredictEchoHandler implements Echo-based HTTP handlers following Clean Architecture.
type PredictEchoHandler struct {
	logger *xlogger.Logger
	agg    *usecase.PredictionAggregator
}

func NewPredictEchoHandler(logger *xlogger.Logger, agg *usecase.PredictionAggregator) *PredictEchoHandler {
	return &PredictEchoHandler{logger: logger, agg: agg}
}

func (h *PredictEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/predict", h.Predict)
	g.GET("/predict/multi", h.PredictMulti)
	g.GET("/info", h.Info)
	g.GET("/algorithm/:code", h.Algorithm)
	g.GET("/live", h.Live)
	e.GET("/healthz", h.Health)
}

func (h *PredictEchoHandler) Predict(c echo.Context) error {
	req := &models.PredictRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.agg.AnalyzeWindow(c.Request().Context(), clampWindow(req.Window), req.Seed)
	if err != nil {
		h.logger.Error("predict usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapEngineError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *PredictEchoHandler) PredictMulti(c echo.Context) error {
	req := &models.MultiPredictRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	policy, err := models.ParsePolicy(req.Policy)
	if err != nil {
		return xhttp.AppErrorResponse(c, mapEngineError(err))
	}

	res, err := h.agg.Aggregate(
		c.Request().Context(),
		h.agg.DefaultWindows(),
		policy,
		req.Batch,
		req.Seed,
		predict.Constraints{HotSplit: req.HotSplit},
	)
	if err != nil {
		h.logger.Error("predict multi usecase error", xlogger.Error(err), xlogger.String("policy", policy.Code()))
		return xhttp.AppErrorResponse(c, mapEngineError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *PredictEchoHandler) Info(c echo.Context) error {
	res, err := h.agg.Info(c.Request().Context())
	if err != nil {
		h.logger.Error("info usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *PredictEchoHandler) Algorithm(c echo.Context) error {
	info, err := h.agg.DescribePolicy(c.Param("code"))
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("unknown algorithm %q", c.Param("code")).WithError(err))
	}
	return xhttp.SuccessResponse(c, info)
}

func (h *PredictEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func clampWindow(w int) int {
	if w < windowMin {
		return windowMin
	}
	if w > windowMax {
		return windowMax
	}
	return w
}

// mapEngineError assigns HTTP status to engine sentinel errors. Parameter
// errors are the caller's fault; history and satisfiability errors mean the
// request was well-formed but the dataset cannot serve it.
func mapEngineError(err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidParameters):
		return xhttp.BadRequestError(err.Error()).WithError(err)
	case errors.Is(err, models.ErrInsufficientHistory),
		errors.Is(err, models.ErrPolicyUnsatisfiable):
		return xhttp.UnprocessableError(err.Error()).WithError(err)
	default:
		return err
	}
}
