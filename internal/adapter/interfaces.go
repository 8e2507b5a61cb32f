// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the upstream placeholder REST API
// (jsonplaceholder-compatible) on behalf of the /api proxy endpoints.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] regardless of the
// upstream's response body (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/resourcekit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/placeholder_adapter_mock.go -package=mock

// PlaceholderAdapter fetches resources from the placeholder API.
type PlaceholderAdapter interface {
	// Users returns every user object of the upstream, untouched and in
	// upstream order.
	Users(ctx context.Context) ([]models.PlaceholderUser, error)

	// Posts returns every post of the upstream.
	Posts(ctx context.Context) ([]models.Post, error)

	// PostsByUser returns the posts authored by the user with userID.
	PostsByUser(ctx context.Context, userID int) ([]models.Post, error)
}
