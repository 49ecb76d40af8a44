// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package admin

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/xmidt-org/cama/logging"
	"github.com/xmidt-org/cama/route"
	"github.com/xmidt-org/cama/secure/handler"
	"github.com/xmidt-org/cama/study"
	"github.com/xmidt-org/cama/xhttp"
	"go.uber.org/zap"
)

const (
	IndexRoute   = "admin:index"
	HealthRoute  = "admin:health"
	PendingRoute = "admin:studies_pending"
)

// Index is the body of the admin index page
type Index struct {
	Routes []route.Description `json:"routes"`
}

// Site holds what the admin routes expose
type Site struct {
	// Describe lists the routes of the whole server.  It is invoked per request, so
	// it may refer to a table that is assembled after the admin routes.
	Describe func() []route.Description

	// Health serves the health statistics
	Health http.Handler

	Studies study.Store
	Errors  route.ErrorHandlers
}

func (s Site) index(response http.ResponseWriter, _ *http.Request) {
	var i Index
	if s.Describe != nil {
		i.Routes = s.Describe()
	}

	if i.Routes == nil {
		i.Routes = []route.Description{}
	}

	xhttp.WriteJSON(response, http.StatusOK, i)
}

func (s Site) pending(response http.ResponseWriter, request *http.Request) {
	studies, err := s.Studies.List(request.Context(), study.Filter{Approved: study.Approved(false)})
	if err != nil {
		logging.GetLogger(request.Context()).Error("unable to list pending studies", zap.Error(err))
		s.Errors.ForStatus(http.StatusInternalServerError).ServeHTTP(response, request)
		return
	}

	xhttp.WriteJSON(response, http.StatusOK, studies)
}

// Routes is the admin route table, relative to its mount point.  A nil Health or
// Studies omits the corresponding route.
func Routes(s Site, auth handler.AuthorizationHandler) route.Table {
	admin := alice.New(auth.Decorate, handler.RequireAdmin(s.Errors.ForStatus(http.StatusForbidden)))

	t := route.Table{
		{Pattern: "/", Methods: []string{http.MethodGet}, Name: IndexRoute, Handler: admin.ThenFunc(s.index)},
	}

	if s.Health != nil {
		t = append(t, route.Route{Pattern: "/health/", Methods: []string{http.MethodGet}, Name: HealthRoute, Handler: admin.Then(s.Health)})
	}

	if s.Studies != nil {
		t = append(t, route.Route{Pattern: "/studies/pending/", Methods: []string{http.MethodGet}, Name: PendingRoute, Handler: admin.ThenFunc(s.pending)})
	}

	return t
}
