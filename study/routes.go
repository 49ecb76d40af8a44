// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package study

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/xmidt-org/cama/route"
	"github.com/xmidt-org/cama/secure/handler"
)

// Route names, as used with route.Reverse
const (
	ApprovedRoute = "api:studies_approved"
	ListRoute     = "api:studies_all"
	CreateRoute   = "api:studies_create"
	DetailRoute   = "api:study_detail"
	DeleteRoute   = "api:study_delete"
	ApproveRoute  = "api:study_approve"
	SearchRoute   = "api:studies_search"
	FilterRoute   = "api:studies_filtered"
)

// Routes is the study route table, relative to its mount point
func Routes(h *Handlers, auth handler.AuthorizationHandler) route.Table {
	optionalAuth := auth
	optionalAuth.Optional = true

	var (
		public        = alice.New()
		authenticated = alice.New(auth.Decorate)
		optional      = alice.New(optionalAuth.Decorate)
		admin         = authenticated.Append(handler.RequireAdmin(h.Errors.ForStatus(http.StatusForbidden)))
	)

	return route.Table{
		{Pattern: "/studies/approved", Methods: []string{http.MethodGet}, Name: ApprovedRoute, Handler: public.ThenFunc(h.Approved)},
		{Pattern: "/studies/all", Methods: []string{http.MethodGet}, Name: ListRoute, Handler: authenticated.ThenFunc(h.All)},
		{Pattern: "/studies/all", Methods: []string{http.MethodPost}, Name: CreateRoute, Handler: authenticated.ThenFunc(h.Create)},
		{Pattern: "/studies/{id:[0-9]+}/", Methods: []string{http.MethodGet}, Name: DetailRoute, Handler: optional.ThenFunc(h.Detail)},
		{Pattern: "/studies/{id:[0-9]+}/", Methods: []string{http.MethodDelete}, Name: DeleteRoute, Handler: admin.ThenFunc(h.Delete)},
		{Pattern: "/study/{id:[0-9]+}/", Methods: []string{http.MethodPatch}, Name: ApproveRoute, Handler: admin.ThenFunc(h.Approve)},
		{Pattern: "/studies-search/", Methods: []string{http.MethodGet}, Name: SearchRoute, Handler: public.ThenFunc(h.Search)},
		{Pattern: "/studies-filterd/", Methods: []string{http.MethodGet}, Name: FilterRoute, Handler: public.ThenFunc(h.Filtered)},
	}
}
