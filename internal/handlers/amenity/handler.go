package amenity

import (
	"context"
	"net/http"
	"resort/infras/otel"
	"resort/internal/domains/amenity/model"
	"resort/internal/domains/amenity/model/dto"
	"resort/internal/domains/amenity/service"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Amenity
	otel    otel.Otel
}

func New(service service.Amenity, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// trace opens the handler span for one endpoint.
func (handler *Handler) trace(r *http.Request, endpoint string) (context.Context, otel.Scope) {
	return handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+endpoint)
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/amenities", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAmenity)
		routerGroup.Get("/", handler.GetAmenities)
		routerGroup.Get("/{id}", handler.GetAmenityByID)
		routerGroup.Patch("/{id}", handler.UpdateAmenity)
		routerGroup.Delete("/{id}", handler.DeleteAmenity)
	})
}

// CreateAmenity handles the creation of a new amenity.
// @Summary Create a new amenity
// @Tags Amenity
// @Accept json
// @Produce json
// @Param request body dto.CreateAmenityRequest true "Create Amenity Request"
// @Success 201 {object} response.Message "Amenity created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/amenities [post]
// @Security BearerAuth
func (handler *Handler) CreateAmenity(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.trace(request, "CreateAmenity")
	defer scope.End()

	req := dto.CreateAmenityRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		response.Fail(writer, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		response.Fail(writer, scope, err, "failed to create amenity")

		return
	}

	scope.AddEvent("Amenity created successfully by user " + shared.UserID(ctx))

	response.WithMessage(writer, http.StatusCreated, "Amenity created successfully")
}

// GetAmenities retrieves amenities based on query parameters.
// @Summary Get all amenities
// @Tags Amenity
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param is_active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetAmenitiesResponse] "List of amenities"
// @Failure 500 {object} response.Error
// @Router /v1/amenities [get]
func (handler *Handler) GetAmenities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "GetAmenities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.All()
	filterGroup.FromQuery(r.URL.Query(), model.TableName, gDto.FilterOperatorLike, model.FieldName)
	filterGroup.FlagsFromQuery(r.URL.Query(), model.TableName, model.FieldIsActive)

	amenities, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		response.Fail(w, scope, err, "failed to get amenities")

		return
	}

	response.WithJSON(w, http.StatusOK, amenities)
}

// GetAmenityByID retrieves an amenity by its ID.
// @Summary Get an amenity by ID
// @Tags Amenity
// @Produce json
// @Param id path string true "Amenity ID"
// @Success 200 {object} response.Data[dto.AmenityResponse] "Amenity details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/amenities/{id} [get]
func (handler *Handler) GetAmenityByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "GetAmenityByID")
	defer scope.End()

	amenity, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.Fail(w, scope, err, "failed to get amenity by ID")

		return
	}

	response.WithJSON(w, http.StatusOK, amenity)
}

// UpdateAmenity updates an existing amenity by its ID.
// @Summary Update an amenity by ID
// @Tags Amenity
// @Accept json
// @Produce json
// @Param id path string true "Amenity ID"
// @Param request body dto.UpdateAmenityRequest true "Update Amenity Request"
// @Success 200 {object} response.Message "Amenity updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/amenities/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "UpdateAmenity")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAmenityRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		response.Fail(w, scope, err, "failed to update amenity")

		return
	}

	scope.AddEvent("Amenity updated successfully by user " + shared.UserID(ctx))

	response.WithMessage(w, http.StatusOK, "Amenity updated successfully")
}

// DeleteAmenity deletes an amenity by its ID.
// @Summary Delete an amenity by ID
// @Tags Amenity
// @Produce json
// @Param id path string true "Amenity ID"
// @Success 200 {object} response.Message "Amenity deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/amenities/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAmenity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "DeleteAmenity")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.Fail(w, scope, err, "failed to delete amenity")

		return
	}

	scope.AddEvent("Amenity deleted successfully by user " + shared.UserID(ctx))

	response.WithMessage(w, http.StatusOK, "Amenity deleted successfully")
}
