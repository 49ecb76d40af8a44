// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/pkg/errors"
	"github.com/xmidt-org/cama/httperror"
	"github.com/xmidt-org/cama/logging"
	"github.com/xmidt-org/cama/secure"
	"github.com/xmidt-org/cama/xhttp"
	"go.uber.org/zap"
)

const (
	// RefreshField is the request field carrying the refresh token
	RefreshField = "refresh"

	// TokenNotValidCode is the code reported for any rejected refresh token
	TokenNotValidCode = "token_not_valid"

	maxFormMemory = 1 << 20
)

var (
	// InvalidTokenBody is the 401 body for any token that fails verification
	InvalidTokenBody = map[string]string{
		"detail": "Token is invalid or expired",
		"code":   TokenNotValidCode,
	}

	// MissingRefreshBody is the 400 body for a request without a refresh token
	MissingRefreshBody = map[string][]string{
		RefreshField: {"This field is required."},
	}

	formDecoder = newFormDecoder()
)

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

type refreshRequest struct {
	Refresh string `json:"refresh" schema:"refresh"`
}

// decodeRefreshRequest accepts either a JSON object or a url-encoded form
func decodeRefreshRequest(request *http.Request) (refreshRequest, error) {
	var rr refreshRequest
	mediaType, _, _ := mime.ParseMediaType(request.Header.Get("Content-Type"))

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := request.ParseForm(); err != nil {
			return rr, errors.Wrap(err, "form parse error")
		}

	case "multipart/form-data":
		if err := request.ParseMultipartForm(maxFormMemory); err != nil {
			return rr, errors.Wrap(err, "form parse error")
		}

	default:
		if request.Body == nil || request.ContentLength == 0 {
			return rr, nil
		}

		err := json.NewDecoder(request.Body).Decode(&rr)
		return rr, errors.Wrap(err, "JSON parse error")
	}

	err := formDecoder.Decode(&rr, request.PostForm)
	return rr, errors.Wrap(err, "form parse error")
}

// RefreshHandler exchanges a refresh token for a new access token
type RefreshHandler struct {
	Issuer *secure.Issuer
}

func (rh RefreshHandler) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	logger := logging.GetLogger(request.Context())

	rr, err := decodeRefreshRequest(request)
	if err != nil {
		logger.Debug("unable to decode refresh request", zap.Error(err))
		httperror.WriteBody(response, http.StatusBadRequest, nil, map[string]string{"detail": err.Error()})
		return
	}

	if len(rr.Refresh) == 0 {
		httperror.WriteBody(response, http.StatusBadRequest, nil, MissingRefreshBody)
		return
	}

	pair, err := rh.Issuer.Refresh(rr.Refresh)
	if err != nil {
		logger.Info("refresh rejected", zap.String("reason", secure.Reason(err)), zap.Error(err))
		httperror.WriteBody(response, http.StatusUnauthorized, authenticateHeader, InvalidTokenBody)
		return
	}

	if err := xhttp.WriteJSON(response, http.StatusOK, pair); err != nil {
		logger.Error("unable to write refreshed tokens", zap.Error(err))
	}
}
