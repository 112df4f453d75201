package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/tendant/presigned-gateway/pkg/gateway"
	"github.com/tendant/presigned-gateway/pkg/gateway/metrics"
)

// DownloadHandler serves the redirect endpoint backed by a gateway.Service
type DownloadHandler struct {
	service        gateway.Service
	allowedOrigins []string
}

func NewDownloadHandler(service gateway.Service, allowedOrigins []string) *DownloadHandler {
	return &DownloadHandler{
		service:        service,
		allowedOrigins: allowedOrigins,
	}
}

// Routes returns the router for the download endpoint. The locator is taken
// from the "uri" query parameter first, then from the request path.
func (h *DownloadHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Download)
	r.Get("/*", h.Download)
	r.Options("/", h.Preflight)
	return r
}

// ErrorResponse is the JSON body of every non-redirect response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Download resolves an s3:// locator into a 302 redirect to a presigned URL.
// Header lookup via Header.Get is case-insensitive, so Origin/origin/ORIGIN
// all match. The redirect itself carries no CORS headers; browsers follow it
// without preflighting, and only error responses are read cross-origin.
func (h *DownloadHandler) Download(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	origin := r.Header.Get("Origin")
	referer := r.Header.Get("Referer")

	uri := r.URL.Query().Get("uri")
	if uri == "" {
		uri = chi.URLParam(r, "*")
	}

	signedURL, err := h.service.ResolveDownload(r.Context(), gateway.ResolveRequest{
		Origin:  origin,
		Referer: referer,
		URI:     uri,
	})
	if err != nil {
		status := h.renderError(w, r, origin, err)
		metrics.ObserveDownload(status, time.Since(start))
		return
	}

	slog.Info("Redirecting to presigned URL", "uri", uri)
	w.Header().Set("Location", signedURL)
	w.WriteHeader(http.StatusFound)
	metrics.ObserveDownload(http.StatusFound, time.Since(start))
}

// Preflight answers CORS preflight requests for the download endpoint
func (h *DownloadHandler) Preflight(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	setCORSHeaders(w.Header(), gateway.SelectCORSOrigin(origin, h.allowedOrigins))
	w.WriteHeader(http.StatusNoContent)
}

func (h *DownloadHandler) renderError(w http.ResponseWriter, r *http.Request, origin string, err error) int {
	status := http.StatusInternalServerError
	message := "Internal server error"

	var gerr *gateway.GatewayError
	if errors.As(err, &gerr) {
		status = gerr.Status
		message = gerr.Message
	}

	if status == http.StatusInternalServerError {
		slog.Error("Download failed", "err", err)
	} else {
		slog.Warn("Download rejected", "status", status, "err", err)
	}

	setCORSHeaders(w.Header(), gateway.SelectCORSOrigin(origin, h.allowedOrigins))
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: message})
	return status
}

// setCORSHeaders applies the fixed CORS header set used on every error
// response and on preflight answers.
func setCORSHeaders(header http.Header, corsOrigin string) {
	header.Set("Access-Control-Allow-Origin", corsOrigin)
	header.Set("Access-Control-Allow-Methods", "OPTIONS,GET")
	header.Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
	header.Set("Access-Control-Allow-Credentials", "true")
}
