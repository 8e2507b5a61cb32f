// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the account requests of the /auth routes.
//
// Resource payloads are checked by JSON Schemas (package validation) and by
// their own Validate methods. What is left here are the rules a schema
// expresses poorly: email syntax, password strength and non-blank tokens.
// [AuthValidator] is injected into the auth service through a wrapper, so
// handlers and storage never see an invalid request.
package validators

import "context"

// Validator checks obj, optionally only the named fields of it.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
