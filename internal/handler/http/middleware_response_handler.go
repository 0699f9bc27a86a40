// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// maxCapturedBody bounds how much of a failed response is kept for the
// access log.
const maxCapturedBody = 256

// responseWriter records what a handler wrote so withLogging can report it
// afterwards. Only error responses keep their body, truncated to
// maxCapturedBody bytes.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
	failure     []byte
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n

	if w.status >= http.StatusBadRequest && len(w.failure) < maxCapturedBody {
		rest := min(maxCapturedBody-len(w.failure), n)
		w.failure = append(w.failure, b[:rest]...)
	}
	return n, err
}

// Flush lets streaming handlers and the compressor flush through the
// recorder.
func (w *responseWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
