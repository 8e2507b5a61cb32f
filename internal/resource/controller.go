// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/internal/store"
	"github.com/MKhiriev/resourcekit/internal/utils"
	"github.com/MKhiriev/resourcekit/models"
	"github.com/go-chi/chi/v5"
)

// Pagination defaults, used when the query parameter is absent or not a
// positive integer.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Hook observes a record after a successful operation.
type Hook[T any] func(ctx context.Context, record models.Record[T])

// Hooks run after the store call succeeded and before the response is
// written. A nil hook is skipped.
type Hooks[T any] struct {
	AfterCreate Hook[T]
	AfterGet    Hook[T]
	AfterUpdate Hook[T]
	AfterDelete Hook[T]
}

// Option configures a [Controller].
type Option[T any] func(*Controller[T])

func WithHooks[T any](hooks Hooks[T]) Option[T] {
	return func(c *Controller[T]) {
		c.hooks = hooks
	}
}

// WithVerboseErrors attaches the raw error text to error responses.
func WithVerboseErrors[T any](verbose bool) Option[T] {
	return func(c *Controller[T]) {
		c.verbose = verbose
	}
}

// Controller is the generic CRUD [Handler] over a store collection.
type Controller[T any] struct {
	collection store.Collection[T]
	hooks      Hooks[T]
	verbose    bool
}

// NewController returns a controller over collection, or nil when
// collection is nil. [NewRouter] registers no routes for a nil handler.
func NewController[T any](collection store.Collection[T], opts ...Option[T]) Handler {
	if collection == nil {
		return nil
	}

	c := &Controller[T]{collection: collection}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller[T]) Create(w http.ResponseWriter, r *http.Request) {
	var data T
	if err := decodeBody(w, r, &data); err != nil {
		c.fail(w, r, err, "Create")
		return
	}

	if d, ok := any(&data).(models.Defaulter); ok {
		d.ApplyDefaults()
	}

	record, err := c.collection.Create(r.Context(), data)
	if err != nil {
		c.fail(w, r, err, "Create")
		return
	}

	c.run(r.Context(), c.hooks.AfterCreate, record)
	c.respond(w, r, record, http.StatusCreated)
}

func (c *Controller[T]) List(w http.ResponseWriter, r *http.Request) {
	records, err := c.collection.FindAll(r.Context())
	if err != nil {
		c.fail(w, r, err, "List")
		return
	}
	if records == nil {
		records = []models.Record[T]{}
	}

	c.respond(w, r, records, http.StatusOK)
}

// ListPaginated answers one page of the collection.
//
// next is set when at least one record exists past the current window; prev
// is set whenever page is above 1. An empty window reports page 1.
func (c *Controller[T]) ListPaginated(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := positiveInt(query.Get("page"), DefaultPage)
	size := positiveInt(query.Get("page_size"), DefaultPageSize)

	skip := math.MaxInt
	if page-1 <= math.MaxInt/size {
		skip = (page - 1) * size
	}

	ctx := r.Context()
	records, err := c.collection.FindWindow(ctx, skip, size)
	if err != nil {
		c.fail(w, r, err, "ListPaginated")
		return
	}

	var ahead []models.Record[T]
	if skip <= math.MaxInt-size {
		if ahead, err = c.collection.FindWindow(ctx, skip+size, 1); err != nil {
			c.fail(w, r, err, "ListPaginated")
			return
		}
	}

	total, err := c.collection.Count(ctx)
	if err != nil {
		c.fail(w, r, err, "ListPaginated")
		return
	}

	if records == nil {
		records = []models.Record[T]{}
	}

	result := models.Page[T]{
		Page:       page,
		PageSize:   size,
		TotalCount: total,
		Results:    records,
	}
	if len(records) == 0 {
		result.Page = DefaultPage
	}
	if len(ahead) > 0 {
		next := page + 1
		result.Next = &next
	}
	if page > 1 {
		prev := page - 1
		result.Prev = &prev
	}

	c.respond(w, r, result, http.StatusOK)
}

func (c *Controller[T]) Get(w http.ResponseWriter, r *http.Request) {
	record, err := c.collection.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.fail(w, r, err, "Get")
		return
	}

	c.run(r.Context(), c.hooks.AfterGet, record)
	c.respond(w, r, record, http.StatusOK)
}

func (c *Controller[T]) Update(w http.ResponseWriter, r *http.Request) {
	c.update(w, r, "Update")
}

// Patch shares the shallow merge of Update.
func (c *Controller[T]) Patch(w http.ResponseWriter, r *http.Request) {
	c.update(w, r, "Patch")
}

func (c *Controller[T]) update(w http.ResponseWriter, r *http.Request, op string) {
	var patch json.RawMessage
	if err := decodeBody(w, r, &patch); err != nil {
		c.fail(w, r, err, op)
		return
	}

	record, err := c.collection.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		c.fail(w, r, err, op)
		return
	}

	c.run(r.Context(), c.hooks.AfterUpdate, record)
	c.respond(w, r, record, http.StatusOK)
}

func (c *Controller[T]) Delete(w http.ResponseWriter, r *http.Request) {
	record, err := c.collection.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.fail(w, r, err, "Delete")
		return
	}

	c.run(r.Context(), c.hooks.AfterDelete, record)
	c.respond(w, r, models.MessageResponse{Message: MsgItemDeleted}, http.StatusOK)
}

func (c *Controller[T]) run(ctx context.Context, hook Hook[T], record models.Record[T]) {
	if hook != nil {
		hook(ctx, record)
	}
}

func (c *Controller[T]) respond(w http.ResponseWriter, r *http.Request, body any, status int) {
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "resource.Controller.respond").Msg("error writing response")
	}
}

func (c *Controller[T]) fail(w http.ResponseWriter, r *http.Request, err error, op string) {
	status, message := classify(err)

	log := logger.FromRequest(r)
	if status == http.StatusBadRequest && message == MsgBadRequest {
		log.Err(err).Str("func", "resource.Controller."+op).Msg("store operation failed")
	} else {
		log.Debug().Err(err).Str("func", "resource.Controller."+op).Msg("request rejected")
	}

	writeError(w, r, status, message, err, c.verbose)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	data, err := readBody(w, r)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", errMalformedJSON, err)
	}
	return nil
}

// positiveInt parses s, falling back to def for anything that is not an
// integer of at least 1.
func positiveInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}
