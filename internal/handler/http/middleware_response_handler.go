// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseData is a snapshot of a completed response, taken after the
// handler chain returned.
type responseData struct {
	status int
	size   int
}

// responseWriter records the status code and body size of a response on
// its way to the client.
//
// WriteHeader is forwarded to the wrapped writer only once, matching the
// [http.ResponseWriter] contract.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implies a 200 when no status was written yet.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Unwrap exposes the wrapped writer to [http.ResponseController].
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// data returns what was written so far. A handler that wrote nothing
// produced an implicit 200.
func (w *responseWriter) data() responseData {
	status := w.status
	if !w.wroteHeader {
		status = http.StatusOK
	}
	return responseData{status: status, size: w.size}
}
