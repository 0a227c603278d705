// Package api defines the HTTP surface of the tile debug server: response
// types, the ServerInterface implemented by internal/server, and its chi wiring.
package api

import "time"

// HealthResponseStatus is the reported service state.
type HealthResponseStatus string

const (
	Healthy HealthResponseStatus = "healthy"
)

// Error codes used in ErrorResponse.
const (
	InvalidParameter = "INVALID_PARAMETER"
	TileOutOfRange   = "TILE_OUT_OF_RANGE"
	UnknownVariable  = "UNKNOWN_VARIABLE"
	InternalError    = "INTERNAL_ERROR"
)

// HealthResponse defines model for HealthResponse.
type HealthResponse struct {
	Status    HealthResponseStatus `json:"status"`
	Timestamp time.Time            `json:"timestamp"`
	Uptime    *int                 `json:"uptime,omitempty"`
	Version   *string              `json:"version,omitempty"`
}

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error     string                  `json:"error"`
	Message   string                  `json:"message"`
	RequestId *string                 `json:"request_id,omitempty"`
	Details   *map[string]interface{} `json:"details,omitempty"`
}

// LegendList defines model for LegendList.
type LegendList struct {
	Variables []string `json:"variables"`
}

// GetGridTileParams defines parameters for GetGridTile.
type GetGridTileParams struct {
	// Color overrides the overlay color, as #rrggbb or #rrggbbaa.
	Color *string `form:"color,omitempty" json:"color,omitempty"`
}

// GetLegendParams defines parameters for GetLegend.
type GetLegendParams struct {
	Width  *int    `form:"width,omitempty" json:"width,omitempty"`
	Height *int    `form:"height,omitempty" json:"height,omitempty"`
	Title  *string `form:"title,omitempty" json:"title,omitempty"`
}
