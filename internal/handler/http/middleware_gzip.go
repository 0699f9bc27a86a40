// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/soletraderai/teachy-sub001/internal/app"
	"github.com/soletraderai/teachy-sub001/internal/utils"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip transparently inflates gzip-encoded request bodies. Response
// compression is left to chi's Compress middleware.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Body == nil || !strings.Contains(req.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		if err := gzipReader.Reset(req.Body); err != nil {
			gzipReaderPool.Put(gzipReader)
			utils.WriteError(w, app.MsgInvalidGzip, http.StatusBadRequest)
			return
		}

		req.Body = &pooledGzipBody{Reader: gzipReader, source: req.Body}
		req.Header.Del("Content-Encoding")
		req.ContentLength = -1

		next.ServeHTTP(w, req)
	})
}

// pooledGzipBody returns its reader to the pool on Close.
type pooledGzipBody struct {
	*gzip.Reader
	source io.Closer
	once   sync.Once
}

func (b *pooledGzipBody) Close() error {
	var err error
	b.once.Do(func() {
		b.Reader.Close()
		gzipReaderPool.Put(b.Reader)
		err = b.source.Close()
	})
	return err
}
