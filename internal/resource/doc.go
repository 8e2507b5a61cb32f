// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resource builds CRUD routers for record collections.
//
// A resource is described by a [Config]: the set of enabled [Method]s, the
// JSON Schemas validating each method's body, query and path parameters,
// and the middleware buckets applied to its routes. [NewRouter] turns any
// [Handler] plus a Config into a chi router; [NewController] is the generic
// Handler over a store.Collection.
//
// Routes of methods missing from Config.Methods are never registered, so a
// request for them gets the router's plain 404 rather than the JSON
// {"error":"Item not found"} produced by a registered route.
//
// Example usage:
//
//	products := resource.NewController[models.Product](collection)
//	router.Mount("/products", resource.NewRouter(products, resource.Config{
//		Methods: resource.AllMethods,
//		Validation: resource.ValidationRules{
//			resource.Create: {Body: productSchema},
//		},
//	}))
package resource
