package api

import (
	"net/http"

	models "lottopick/internal/domain/models"
	"lottopick/internal/services/predict"
	xhttp "lottopick/pkg/http"
	xlogger "lottopick/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Live upgrades to a websocket and streams generated combinations one by
// one. Validation happens before the upgrade so bad requests still get a
// regular HTTP 400.
func (h *PredictEchoHandler) Live(c echo.Context) error {
	req := &models.LiveRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	policy, err := models.ParsePolicy(req.Policy)
	if err != nil {
		return xhttp.AppErrorResponse(c, mapEngineError(err))
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Error("live upgrade failed", xlogger.Error(err))
		return err
	}
	defer conn.Close()

	streamErr := h.agg.Stream(
		c.Request().Context(),
		clampWindow(req.Window),
		policy,
		req.Count,
		req.Seed,
		predict.Constraints{HotSplit: req.HotSplit},
		func(p models.Prediction) error {
			return conn.WriteJSON(p)
		},
	)
	if streamErr != nil {
		h.logger.Warn("live stream ended with error", xlogger.Error(streamErr), xlogger.String("policy", policy.Code()))
		// Best effort: report the failure on the socket before closing.
		_ = conn.WriteJSON(map[string]string{"error": streamErr.Error()})
		return nil
	}

	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
	return nil
}
