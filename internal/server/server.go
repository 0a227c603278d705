package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/kiesman99/tiledebug/internal/api"
	"github.com/kiesman99/tiledebug/internal/gridoverlay"
	"github.com/kiesman99/tiledebug/internal/legend"
	"github.com/kiesman99/tiledebug/internal/logger"
	"github.com/kiesman99/tiledebug/internal/styles"
	"github.com/kiesman99/tiledebug/pkg/tile"
)

// maxLegendSide bounds requested legend dimensions.
const maxLegendSide = 4096

// Config holds what the server renders with.
type Config struct {
	Version   string
	Catalogue *styles.Catalogue
	// Overlay is copied for every grid request; its color may be overridden per request.
	Overlay gridoverlay.Layer
	// Legend holds the default width and height for legend requests.
	Legend legend.Options
}

// Server implements api.ServerInterface
type Server struct {
	startTime time.Time
	version   string
	catalogue *styles.Catalogue
	overlay   gridoverlay.Layer
	legend    legend.Options
}

// NewServer creates a new server instance
func NewServer(cfg Config) *Server {
	catalogue := cfg.Catalogue
	if catalogue == nil {
		catalogue = styles.Default()
	}

	return &Server{
		startTime: time.Now(),
		version:   cfg.Version,
		catalogue: catalogue,
		overlay:   cfg.Overlay,
		legend:    cfg.Legend,
	}
}

// GetHealth implements the health check endpoint
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	uptime := int(time.Since(s.startTime).Seconds())

	response := api.HealthResponse{
		Status:    api.Healthy,
		Timestamp: time.Now(),
		Uptime:    &uptime,
		Version:   &s.version,
	}

	s.writeJSON(w, "application/json", response)
}

// GetGridTile returns the debug grid primitives of one tile as GeoJSON.
func (s *Server) GetGridTile(w http.ResponseWriter, r *http.Request, z int, x int, y int, params api.GetGridTileParams) {
	requestID := requestID(r)

	t, err := tile.At(x, y, z, s.overlay.Config.ZoomRange())
	if err != nil {
		s.writeErrorResponse(w, http.StatusNotFound, api.TileOutOfRange, err.Error(), &requestID, map[string]interface{}{
			"min_zoom": s.overlay.Config.MinZoom,
			"max_zoom": s.overlay.Config.MaxZoom,
		})
		return
	}

	layer := s.overlay
	if params.Color != nil {
		c, err := styles.ParseColor(*params.Color)
		if err != nil {
			s.writeErrorResponse(w, http.StatusBadRequest, api.InvalidParameter, err.Error(), &requestID, nil)
			return
		}
		layer.Style.Color = c
	}

	prims := layer.RenderSubLayers(t, gridoverlay.TileID(layer.ID, t))
	s.writeJSON(w, "application/geo+json", layer.FeatureCollection(prims))
}

// ListLegends lists the variables a legend can be drawn for.
func (s *Server) ListLegends(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, "application/json", api.LegendList{Variables: s.catalogue.Variables()})
}

// GetLegend rasterizes the legend of a variable as PNG.
func (s *Server) GetLegend(w http.ResponseWriter, r *http.Request, variable string, params api.GetLegendParams) {
	requestID := requestID(r)

	l, err := s.catalogue.Legend(variable)
	if err != nil {
		if errors.Is(err, styles.ErrUnknownVariable) {
			s.writeErrorResponse(w, http.StatusNotFound, api.UnknownVariable, err.Error(), &requestID, nil)
			return
		}
		s.writeErrorResponse(w, http.StatusInternalServerError, api.InternalError, "Internal server error", &requestID, nil)
		return
	}

	opts := legend.Options{
		Width:  s.legend.Width,
		Height: s.legend.Height,
		Title:  s.catalogue.Title(variable),
	}
	if params.Width != nil {
		opts.Width = *params.Width
	}
	if params.Height != nil {
		opts.Height = *params.Height
	}
	if params.Title != nil {
		opts.Title = *params.Title
	}

	if opts.Width <= 0 || opts.Width > maxLegendSide || opts.Height <= 0 || opts.Height > maxLegendSide {
		s.writeErrorResponse(w, http.StatusBadRequest, api.InvalidParameter,
			fmt.Sprintf("width and height must be between 1 and %d", maxLegendSide), &requestID, nil)
		return
	}

	surface := legend.NewSurface(opts.Width, opts.Height)
	legend.Draw(surface, l, opts)

	data, err := tile.EncodePNG(surface.NRGBA())
	if err != nil {
		logger.Logger().Error("encoding legend", "variable", variable, "error", err)
		s.writeErrorResponse(w, http.StatusInternalServerError, api.InternalError, "Internal server error", &requestID, nil)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Request-ID", requestID)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.Logger().Error("writing legend response", "error", err)
	}
}

// HandleParamError writes parameter binding failures as validation errors.
func (s *Server) HandleParamError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := requestID(r)
	s.writeErrorResponse(w, http.StatusBadRequest, api.InvalidParameter, err.Error(), &requestID, nil)
}

func (s *Server) writeJSON(w http.ResponseWriter, contentType string, v interface{}) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Logger().Error("encoding response", "error", err)
	}
}

// writeErrorResponse writes a standard error response
func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, errorCode, message string, requestID *string, details map[string]interface{}) {
	response := api.ErrorResponse{
		Error:     errorCode,
		Message:   message,
		RequestId: requestID,
	}

	if details != nil {
		response.Details = &details
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(response)
}

// requestID returns the id set by the RequestID middleware, or a fresh one.
func requestID(r *http.Request) string {
	if id := middleware.GetReqID(r.Context()); id != "" {
		return id
	}
	return fmt.Sprintf("req_%d", time.Now().UnixNano())
}
