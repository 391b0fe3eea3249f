// Package common holds the request parsing shared by the dashboard handlers.
package common

import (
	"net/http"

	"dinedesk/infras/otel"
	"dinedesk/shared/constant"
	gDto "dinedesk/shared/dto"
	"dinedesk/shared/failure"
	"dinedesk/shared/modal"
	"dinedesk/shared/query"
	"dinedesk/shared/validator"
	"dinedesk/shared/view"
	"dinedesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Params reads an explicit list cursor from the query string, or nil for the stored one.
func Params(r *http.Request, filterKeys ...string) *query.Params {
	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, filterKeys...)

	return queryParams.ToParams()
}

func QueryUpdate(r *http.Request) (view.Update, error) {
	req := gDto.QueryUpdateRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		return view.Update{}, err //nolint:wrapcheck
	}

	return req.ToUpdate(), nil
}

func ID(r *http.Request) string {
	return chi.URLParam(r, constant.RequestParamID)
}

func Kind(r *http.Request) (modal.Kind, error) {
	kind, ok := modal.ParseKind(chi.URLParam(r, constant.RequestParamKind))
	if !ok {
		return "", failure.BadRequestFromString("unknown dialog " + chi.URLParam(r, constant.RequestParamKind))
	}

	return kind, nil
}

// Fail traces and logs err, then writes it as the response.
func Fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)

	response.WithError(w, err)
}
