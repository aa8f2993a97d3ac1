package fakeportal

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-jportal/internal/logger"
	"github.com/MKhiriev/go-jportal/models"
)

func successStatus() models.Status {
	return models.Status{
		"responseStatus": models.StatusSuccess,
		"errors":         nil,
		"responseCode":   "200",
		"httpStatus":     "OK",
	}
}

func failureStatus(messages ...string) models.Status {
	return models.Status{
		"responseStatus": "Failure",
		"errors":         messages,
		"responseCode":   "500",
		"httpStatus":     "OK",
	}
}

// writeEnvelope writes status and response with HTTP 200; the portal reports
// application failures inside the envelope, not through the HTTP status.
func writeEnvelope(w http.ResponseWriter, r *http.Request, status models.Status, response any) {
	raw, err := json.Marshal(map[string]any{
		"status":   status,
		"response": response,
	})
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing envelope")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func writeSuccess(w http.ResponseWriter, r *http.Request, response any) {
	writeEnvelope(w, r, successStatus(), response)
}

func writeFailure(w http.ResponseWriter, r *http.Request, messages ...string) {
	logger.FromRequest(r).Debug().Strs("errors", messages).Msg("request rejected")
	writeEnvelope(w, r, failureStatus(messages...), nil)
}
