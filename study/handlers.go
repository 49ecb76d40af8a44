// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package study

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/pkg/errors"
	"github.com/xmidt-org/cama/httperror"
	"github.com/xmidt-org/cama/logging"
	"github.com/xmidt-org/cama/route"
	"github.com/xmidt-org/cama/secure/handler"
	"github.com/xmidt-org/cama/xhttp"
	"go.uber.org/zap"
)

// IDVariable is the route variable holding a study id
const IDVariable = "id"

// Handlers serves the study API from a Store
type Handlers struct {
	Store  Store
	Errors route.ErrorHandlers

	queryDecoder *schema.Decoder
}

// NewHandlers creates the study API handlers
func NewHandlers(s Store, eh route.ErrorHandlers) *Handlers {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)

	return &Handlers{
		Store:        s,
		Errors:       eh,
		queryDecoder: d,
	}
}

func (h *Handlers) fail(response http.ResponseWriter, request *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		h.Errors.ForStatus(http.StatusNotFound).ServeHTTP(response, request)

	case errors.Is(err, ErrInvalid):
		var ve ValidationError
		if errors.As(err, &ve) {
			httperror.WriteBody(response, http.StatusBadRequest, nil, ve)
		} else {
			httperror.WriteMessage(response, err.Error(), http.StatusBadRequest, nil)
		}

	default:
		logging.GetLogger(request.Context()).Error("study store failure", zap.Error(err))
		h.Errors.ForStatus(http.StatusInternalServerError).ServeHTTP(response, request)
	}
}

func (h *Handlers) writeList(response http.ResponseWriter, request *http.Request, f Filter) {
	studies, err := h.Store.List(request.Context(), f)
	if err != nil {
		h.fail(response, request, err)
		return
	}

	if studies == nil {
		studies = []Study{}
	}

	xhttp.WriteJSON(response, http.StatusOK, studies)
}

// pathID extracts the study id.  Ids too large for an int64 cannot exist, so they are not found.
func pathID(request *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(request)[IDVariable], 10, 64)
	if err != nil {
		return 0, ErrNotFound
	}

	return id, nil
}

// Approved lists approved studies
func (h *Handlers) Approved(response http.ResponseWriter, request *http.Request) {
	h.writeList(response, request, Filter{Approved: Approved(true)})
}

// All lists every study, approved or not
func (h *Handlers) All(response http.ResponseWriter, request *http.Request) {
	h.writeList(response, request, Filter{})
}

// Search lists approved studies whose title contains the title query parameter
func (h *Handlers) Search(response http.ResponseWriter, request *http.Request) {
	var f Filter
	if err := h.queryDecoder.Decode(&f, request.URL.Query()); err != nil {
		h.Errors.ForStatus(http.StatusBadRequest).ServeHTTP(response, request)
		return
	}

	h.writeList(response, request, Filter{Title: f.Title, Approved: Approved(true)})
}

// Filtered lists approved studies in the category named by the category__name query parameter
func (h *Handlers) Filtered(response http.ResponseWriter, request *http.Request) {
	var f Filter
	if err := h.queryDecoder.Decode(&f, request.URL.Query()); err != nil {
		h.Errors.ForStatus(http.StatusBadRequest).ServeHTTP(response, request)
		return
	}

	h.writeList(response, request, Filter{Category: f.Category, Approved: Approved(true)})
}

// Detail returns a single study.  Unapproved studies are only visible to admins.
func (h *Handlers) Detail(response http.ResponseWriter, request *http.Request) {
	id, err := pathID(request)
	if err != nil {
		h.fail(response, request, err)
		return
	}

	s, err := h.Store.Get(request.Context(), id)
	if err != nil {
		h.fail(response, request, err)
		return
	}

	if !s.Approved {
		if claims, ok := handler.ClaimsFromContext(request.Context()); !ok || !claims.IsAdmin {
			h.fail(response, request, ErrNotFound)
			return
		}
	}

	xhttp.WriteJSON(response, http.StatusOK, s)
}

// Create stores a new unapproved study uploaded by the authorized user
func (h *Handlers) Create(response http.ResponseWriter, request *http.Request) {
	claims, ok := handler.ClaimsFromContext(request.Context())
	if !ok {
		httperror.WriteMessage(response, "Authentication credentials were not provided.", http.StatusUnauthorized, nil)
		return
	}

	var s Study
	if err := json.NewDecoder(request.Body).Decode(&s); err != nil {
		httperror.WriteBody(response, http.StatusBadRequest, nil, map[string]string{"detail": "JSON parse error - " + err.Error()})
		return
	}

	s.ID = 0
	s.Approved = false
	s.Downloads = 0
	s.Uploader = claims.UserID

	created, err := h.Store.Create(request.Context(), s)
	if err != nil {
		h.fail(response, request, err)
		return
	}

	logging.GetLogger(request.Context()).Info("study created", zap.Int64("studyID", created.ID))
	xhttp.WriteJSON(response, http.StatusCreated, created)
}

// Approve marks a study approved
func (h *Handlers) Approve(response http.ResponseWriter, request *http.Request) {
	id, err := pathID(request)
	if err != nil {
		h.fail(response, request, err)
		return
	}

	s, err := h.Store.Approve(request.Context(), id)
	if err != nil {
		h.fail(response, request, err)
		return
	}

	logging.GetLogger(request.Context()).Info("study approved", zap.Int64("studyID", id))
	xhttp.WriteJSON(response, http.StatusOK, s)
}

// Delete removes a study
func (h *Handlers) Delete(response http.ResponseWriter, request *http.Request) {
	id, err := pathID(request)
	if err != nil {
		h.fail(response, request, err)
		return
	}

	if err := h.Store.Delete(request.Context(), id); err != nil {
		h.fail(response, request, err)
		return
	}

	logging.GetLogger(request.Context()).Info("study deleted", zap.Int64("studyID", id))
	response.WriteHeader(http.StatusNoContent)
}
