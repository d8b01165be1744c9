package accommodation

import (
	"context"
	"net/http"
	"resort/infras/otel"
	"resort/internal/domains/accommodation/model"
	"resort/internal/domains/accommodation/model/dto"
	"resort/internal/domains/accommodation/service"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Accommodation
	otel    otel.Otel
}

func New(service service.Accommodation, otel otel.Otel) Handler {
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
	router.Route("/accommodations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAccommodation)
		routerGroup.Get("/", handler.GetAccommodations)
		routerGroup.Get("/{id}", handler.GetAccommodationByID)
		routerGroup.Patch("/{id}", handler.UpdateAccommodation)
		routerGroup.Delete("/{id}", handler.DeleteAccommodation)
	})
}

// CreateAccommodation handles the creation of a new accommodation.
// @Summary Create a new accommodation
// @Tags Accommodation
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Accommodation name"
// @Param type formData string true "Accommodation type, its first three letters prefix booking references"
// @Param description formData string false "Description"
// @Param price_per_night formData number true "Nightly price"
// @Param capacity formData integer true "Maximum guests"
// @Param is_active formData boolean false "Active status"
// @Param image formData file false "Accommodation image"
// @Success 201 {object} response.Message "Accommodation created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations [post]
// @Security BearerAuth
func (handler *Handler) CreateAccommodation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.trace(request, "CreateAccommodation")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		response.Fail(writer, scope, err, "failed to parse multipart form")

		return
	}

	req := dto.CreateAccommodationRequest{
		Name:        request.FormValue(model.FieldName),
		Type:        request.FormValue(model.FieldType),
		Description: request.FormValue("description"),
	}

	if priceStr := request.FormValue(model.FieldPricePerNight); priceStr != "" {
		if p, err := shared.ConvertStringToFloat(priceStr); err == nil {
			req.PricePerNight = p
		}
	}

	if capStr := request.FormValue(model.FieldCapacity); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.Capacity = c
		}
	}

	if activeStr := request.FormValue(model.FieldIsActive); activeStr != "" {
		req.IsActive = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := request.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		response.Fail(writer, scope, err, "failed to validate request")

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		response.Fail(writer, scope, err, "failed to create accommodation")

		return
	}

	scope.AddEvent("Accommodation created successfully by user " + shared.UserID(ctx))

	response.WithMessage(writer, http.StatusCreated, "Accommodation created successfully")
}

// GetAccommodations retrieves accommodations based on query parameters.
// @Summary Get all accommodations
// @Tags Accommodation
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param type query string false "Filter by type"
// @Param is_active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetAccommodationsResponse] "List of accommodations"
// @Failure 500 {object} response.Error
// @Router /v1/accommodations [get]
func (handler *Handler) GetAccommodations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "GetAccommodations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	switch queryParams.SortBy {
	case model.FieldName, model.FieldPricePerNight, model.FieldCapacity:
	default:
		queryParams.SortBy = model.FieldName
	}

	if queryParams.SortDir == constant.Empty {
		queryParams.SortDir = gDto.SortDirAsc
	}

	query := r.URL.Query()
	filterGroup := gDto.All()
	filterGroup.FromQuery(query, model.TableName, gDto.FilterOperatorLike, model.FieldName)
	filterGroup.FromQuery(query, model.TableName, gDto.FilterOperatorEq, model.FieldType)
	filterGroup.FlagsFromQuery(query, model.TableName, model.FieldIsActive)

	accommodations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		response.Fail(w, scope, err, "failed to get accommodations")

		return
	}

	response.WithJSON(w, http.StatusOK, accommodations)
}

// GetAccommodationByID retrieves an accommodation by its ID.
// @Summary Get an accommodation by ID
// @Tags Accommodation
// @Produce json
// @Param id path string true "Accommodation ID"
// @Success 200 {object} response.Data[dto.AccommodationResponse] "Accommodation details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations/{id} [get]
func (handler *Handler) GetAccommodationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "GetAccommodationByID")
	defer scope.End()

	accommodation, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.Fail(w, scope, err, "failed to get accommodation by ID")

		return
	}

	response.WithJSON(w, http.StatusOK, accommodation)
}

// UpdateAccommodation updates an existing accommodation by its ID.
// @Summary Update an accommodation by ID
// @Tags Accommodation
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Accommodation ID"
// @Param name formData string false "Accommodation name"
// @Param type formData string false "Accommodation type"
// @Param description formData string false "Description"
// @Param price_per_night formData number false "Nightly price"
// @Param capacity formData integer false "Maximum guests"
// @Param is_active formData boolean false "Active status"
// @Param image formData file false "Accommodation image"
// @Success 200 {object} response.Message "Accommodation updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAccommodation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "UpdateAccommodation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		response.Fail(w, scope, err, "failed to parse multipart form")

		return
	}

	req := dto.UpdateAccommodationRequest{
		Name:        r.FormValue(model.FieldName),
		Type:        r.FormValue(model.FieldType),
		Description: r.FormValue("description"),
	}

	if priceStr := r.FormValue(model.FieldPricePerNight); priceStr != "" {
		if p, err := shared.ConvertStringToFloat(priceStr); err == nil {
			req.PricePerNight = &p
		}
	}

	if capStr := r.FormValue(model.FieldCapacity); capStr != "" {
		if c, err := shared.ConvertStringToInt(capStr); err == nil {
			req.Capacity = &c
		}
	}

	if activeStr := r.FormValue(model.FieldIsActive); activeStr != "" {
		req.IsActive = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		response.Fail(w, scope, err, "failed to validate request")

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		response.Fail(w, scope, err, "failed to update accommodation")

		return
	}

	scope.AddEvent("Accommodation updated successfully by user " + shared.UserID(ctx))

	response.WithMessage(w, http.StatusOK, "Accommodation updated successfully")
}

// DeleteAccommodation deletes an accommodation by its ID.
// @Summary Delete an accommodation by ID
// @Tags Accommodation
// @Produce json
// @Param id path string true "Accommodation ID"
// @Success 200 {object} response.Message "Accommodation deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAccommodation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "DeleteAccommodation")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.Fail(w, scope, err, "failed to delete accommodation")

		return
	}

	scope.AddEvent("Accommodation deleted successfully by user " + shared.UserID(ctx))

	response.WithMessage(w, http.StatusOK, "Accommodation deleted successfully")
}
