// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/soletraderai/teachy-sub001/internal/app"
	"github.com/soletraderai/teachy-sub001/internal/utils"
)

// CheckHTTPMethod answers 404 instead of chi's default 405, so unsupported
// methods don't reveal which paths exist. chi only calls it once the path
// has matched and the method has not; it must never route the request again.
//
//	router.MethodNotAllowed(CheckHTTPMethod)
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}
