package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Service health
	// (GET /health)
	GetHealth(w http.ResponseWriter, r *http.Request)
	// Debug grid primitives for one tile as GeoJSON
	// (GET /grid/{z}/{x}/{y})
	GetGridTile(w http.ResponseWriter, r *http.Request, z int, x int, y int, params GetGridTileParams)
	// Variables with a legend
	// (GET /legends)
	ListLegends(w http.ResponseWriter, r *http.Request)
	// Rasterized legend as PNG
	// (GET /legends/{variable})
	GetLegend(w http.ResponseWriter, r *http.Request, variable string, params GetLegendParams)
}

// InvalidParamFormatError is passed to the error handler when a parameter cannot be bound.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

// ServerInterfaceWrapper converts requests to typed handler calls.
type ServerInterfaceWrapper struct {
	Handler          ServerInterface
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// GetHealth operation middleware
func (siw *ServerInterfaceWrapper) GetHealth(w http.ResponseWriter, r *http.Request) {
	siw.Handler.GetHealth(w, r)
}

// GetGridTile operation middleware
func (siw *ServerInterfaceWrapper) GetGridTile(w http.ResponseWriter, r *http.Request) {
	var z, x, y int

	for _, p := range []struct {
		name string
		dest *int
	}{{"z", &z}, {"x", &x}, {"y", &y}} {
		err := runtime.BindStyledParameterWithOptions("simple", p.name, chi.URLParam(r, p.name), p.dest,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
		if err != nil {
			siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: p.name, Err: err})
			return
		}
	}

	var params GetGridTileParams
	if err := runtime.BindQueryParameter("form", true, false, "color", r.URL.Query(), &params.Color); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "color", Err: err})
		return
	}

	siw.Handler.GetGridTile(w, r, z, x, y, params)
}

// ListLegends operation middleware
func (siw *ServerInterfaceWrapper) ListLegends(w http.ResponseWriter, r *http.Request) {
	siw.Handler.ListLegends(w, r)
}

// GetLegend operation middleware
func (siw *ServerInterfaceWrapper) GetLegend(w http.ResponseWriter, r *http.Request) {
	var variable string

	err := runtime.BindStyledParameterWithOptions("simple", "variable", chi.URLParam(r, "variable"), &variable,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "variable", Err: err})
		return
	}

	var params GetLegendParams
	query := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "width", query, &params.Width); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "width", Err: err})
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "height", query, &params.Height); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "height", Err: err})
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "title", query, &params.Title); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "title", Err: err})
		return
	}

	siw.Handler.GetLegend(w, r, variable, params)
}

// ChiServerOptions configures HandlerWithOptions.
type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// Handler creates an http.Handler with routing matching the API.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

// HandlerWithOptions creates an http.Handler with additional options.
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:          si,
		ErrorHandlerFunc: options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/health", wrapper.GetHealth)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/grid/{z}/{x}/{y}", wrapper.GetGridTile)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/legends", wrapper.ListLegends)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/legends/{variable}", wrapper.GetLegend)
	})

	return r
}
