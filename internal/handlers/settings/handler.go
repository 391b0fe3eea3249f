package settings

import (
	"net/http"

	"dinedesk/infras/otel"
	"dinedesk/internal/domains/auth/model/dto"
	"dinedesk/internal/domains/settings/service"
	"dinedesk/internal/handlers/common"
	"dinedesk/shared/constant"
	"dinedesk/shared/validator"
	"dinedesk/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Settings
	otel    otel.Otel
}

func New(service service.Settings, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/profile", handler.GetProfile)
		routerGroup.Put("/profile", handler.UpdateProfile)
		routerGroup.Put("/password", handler.ChangePassword)
		routerGroup.Get("/table-types", handler.GetTableTypes)
	})
}

// GetProfile loads the restaurant profile form.
// @Summary Get restaurant profile
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Data[dto.ProfileForm]
// @Failure 401 {object} response.Error
// @Router /v1/settings/profile [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	res, err := handler.service.Profile(ctx)
	if err != nil {
		common.Fail(w, scope, err, "failed to get profile")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateProfile saves the restaurant profile and its table types.
// @Summary Update restaurant profile
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.ProfileForm true "Profile"
// @Success 200 {object} response.Data[dto.ProfileForm]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/settings/profile [put]
// @Security BearerAuth
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	req := dto.ProfileForm{}

	if err := validator.Decode(r.Body, &req); err != nil {
		common.Fail(w, scope, err, "failed to decode request body")

		return
	}

	res, err := handler.service.UpdateProfile(ctx, req)
	if err != nil {
		common.Fail(w, scope, err, "failed to update profile")

		return
	}

	scope.AddEvent("Profile updated")

	response.WithJSON(w, http.StatusOK, res)
}

// ChangePassword changes the operator's backend password.
// @Summary Change password
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Passwords"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/settings/password [put]
// @Security BearerAuth
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	req := dto.ChangePasswordRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		common.Fail(w, scope, err, "failed to decode request body")

		return
	}

	if err := handler.service.ChangePassword(ctx, req); err != nil {
		common.Fail(w, scope, err, "failed to change password")

		return
	}

	scope.AddEvent("Password changed")

	response.WithMessage(w, http.StatusOK, "Your password has been changed successfully.")
}

func (handler *Handler) GetTableTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTableTypes")
	defer scope.End()

	res, err := handler.service.TableTypes(ctx)
	if err != nil {
		common.Fail(w, scope, err, "failed to get table types")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
