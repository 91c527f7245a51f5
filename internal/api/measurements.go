package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/feinstaub/airbridge/internal/bridge"
)

// handleMeasurement decodes a measurement report and hands it to the
// bridge. The outcome maps onto the status codes the vendor firmware
// understands: 200 accepted, 400 malformed, 401 key mismatch, 500 broker
// trouble (the firmware retries on its next report cycle either way).
func (s *Server) handleMeasurement(w http.ResponseWriter, r *http.Request) {
	var m bridge.Measurement
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeBadRequest(w, "invalid measurement payload")
		return
	}

	// JSON that decodes but lacks the required fields is still malformed;
	// an empty esp8266id would otherwise register the bogus device
	// identity "airrohr-".
	if m.SensorID == "" || m.SensorDataValues == nil {
		writeBadRequest(w, "measurement requires esp8266id and sensordatavalues")
		return
	}

	presentedKey := chi.URLParam(r, "key")

	outcome, err := s.bridge.Handle(&m, presentedKey)
	switch outcome {
	case bridge.OutcomeAccepted:
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	case bridge.OutcomeUnauthorized:
		writeUnauthorized(w, "device key mismatch")
	case bridge.OutcomePublishFailure:
		s.logger.Error("measurement rejected",
			"device", m.Identity().Name(),
			"error", err,
			"request_id", r.Context().Value(ctxKeyRequestID),
		)
		writeInternalError(w, "failed to publish measurement")
	default:
		writeInternalError(w, "unexpected outcome")
	}
}
