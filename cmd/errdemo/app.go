package main

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/jmgilman/go/httperrors/config"
	"github.com/jmgilman/go/httperrors/errors"
	"github.com/jmgilman/go/httperrors/handler"
	"github.com/jmgilman/go/httperrors/logging"
	"github.com/jmgilman/go/httperrors/mapper"
	"github.com/jmgilman/go/httperrors/validation"
)

// maxBodyBytes bounds request payloads read by the demo routes.
const maxBodyBytes = 1 << 20

const defaultSchema = `
import "strings"

#Order: {
	sku:      string & =~"^[A-Z]{3}-[0-9]{4}$"
	quantity: int & >=1 & <=100
	note?:    string & strings.MaxRunes(140)
	priority: *"normal" | "express"
}
`

// order is the decoded body of POST /orders.
type order struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	Note     string `json:"note,omitempty"`
	Priority string `json:"priority"`
}

type app struct {
	dispatcher *handler.Dispatcher
	mapper     *mapper.Mapper
	validator  *validation.Validator
	logger     logging.Logger
}

func newApp(cfg config.Config, logger logging.Logger) (*app, error) {
	table := mapper.DefaultTable()
	if cfg.MappingFile != "" {
		custom, err := mapper.LoadTableFile(cfg.MappingFile)
		if err != nil {
			return nil, err
		}
		table = mapper.Merge(table, custom)
	}

	var (
		v   *validation.Validator
		err error
	)
	if cfg.SchemaFile != "" {
		v, err = validation.LoadSchemaFile(cfg.SchemaFile, validation.WithDefinition("#Order"))
	} else {
		v, err = validation.NewValidator(defaultSchema, validation.WithDefinition("#Order"))
	}
	if err != nil {
		return nil, err
	}

	d := handler.NewDispatcher(
		&handler.HTTPErrorStrategy{Logger: logger, OmitStack: cfg.OmitStack},
		&handler.ValidationErrorStrategy{Logger: logger},
		&handler.FallbackStrategy{Logger: logger},
	)
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &app{
		dispatcher: d,
		mapper:     mapper.New(table, mapper.WithLogger(logger)),
		validator:  v,
		logger:     logger,
	}, nil
}

func (a *app) routes() http.Handler {
	d := a.dispatcher

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(d.Recoverer)

	r.NotFound(d.NotFound())
	r.MethodNotAllowed(d.MethodNotAllowed())

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", d.Handle(a.createOrder))
		r.Get("/{id}", d.Handle(a.getOrder))
	})

	r.Get("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("demo panic")
	})

	return r
}

func (a *app) createOrder(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return a.toHTTP(errors.Wrap(err, errors.CodeInvalidInput, "failed to read request body"))
	}

	var o order
	if err := a.validator.DecodeJSON(r.Context(), body, &o); err != nil {
		if errors.KindOf(err) == errors.KindInputValidation {
			return err
		}
		if base, ok := errors.Find[*errors.BaseError](err); ok {
			return a.toHTTP(base)
		}
		return err
	}

	a.logger.Info("order accepted", map[string]interface{}{
		"request_id": middleware.GetReqID(r.Context()),
		"sku":        o.SKU,
		"quantity":   o.Quantity,
	})

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, o)
	return nil
}

func (a *app) getOrder(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")

	switch id {
	case "locked":
		return a.toHTTP(errors.New(errors.CodeConflict, "order is locked by another checkout").
			WithMeta("order_id", id))
	case "legacy":
		return a.toHTTP(errors.New("E_LEGACY_ORDER", "order predates the current schema").
			WithMeta("order_id", id))
	case "broken":
		var v map[string]interface{}
		return json.Unmarshal([]byte("{"), &v)
	}

	return a.toHTTP(errors.Newf(errors.CodeNotFound, "order %q not found", id).
		WithMeta("order_id", id).
		WithMeta("request_id", middleware.GetReqID(r.Context())))
}

// toHTTP maps a business error onto its HTTP response layer.
func (a *app) toHTTP(err *errors.BaseError) error {
	if err == nil {
		return nil
	}
	return a.mapper.Map(err)
}
