package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-jportal/internal/config"
	"github.com/MKhiriev/go-jportal/internal/logger"
	"github.com/MKhiriev/go-jportal/internal/utils"
	"github.com/MKhiriev/go-jportal/models"
)

type httpPortalAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPPortalAdapter constructs the resty implementation of [PortalAdapter]
// for the portal described by portalCfg.
//
// Returns an error if portalCfg.BaseURL is empty or not an absolute URL.
func NewHTTPPortalAdapter(portalCfg config.Portal, logger *logger.Logger) (PortalAdapter, error) {
	baseURL, err := utils.NormalizeBaseURL(portalCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid portal base url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, portalCfg.RequestTimeout, portalCfg.InsecureSkipVerify)

	return &httpPortalAdapter{client: client, logger: logger}, nil
}

// Do implements [PortalAdapter].
func (h *httpPortalAdapter) Do(ctx context.Context, req models.Request) (models.Envelope, error) {
	requestID := utils.NewRequestID()
	started := time.Now()

	r := h.client.R().
		SetContext(ctx).
		SetHeaders(req.Headers)
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	resp, err := r.Execute(method, req.Path)
	if err != nil {
		h.logger.Debug().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", req.Path).
			Dur("duration", time.Since(started)).
			Err(err).
			Msg("portal request failed")
		return models.Envelope{}, fmt.Errorf("%s %s request: %w", method, req.Path, err)
	}

	h.logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", req.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(started)).
		Msg("portal request")

	if err = mapHTTPError(resp); err != nil {
		// the portal may reject a call with an error code and a failure
		// envelope; the status object decides, not the code
		if envelope, ok := failureEnvelope(resp.Body()); ok {
			return envelope, nil
		}
		return models.Envelope{}, fmt.Errorf("%s %s: %w", method, req.Path, err)
	}

	var envelope models.Envelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %s %s: %w", ErrMalformedResponse, method, req.Path, err)
	}
	if envelope.Status == nil {
		return models.Envelope{}, fmt.Errorf("%w: %s %s: missing status", ErrMalformedResponse, method, req.Path)
	}

	return envelope, nil
}

// failureEnvelope decodes body as an envelope carrying a non-Success status.
func failureEnvelope(body []byte) (models.Envelope, bool) {
	var envelope models.Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return models.Envelope{}, false
	}
	if envelope.Status == nil || envelope.Status.Success() {
		return models.Envelope{}, false
	}
	return envelope, true
}
