package packages

import (
	"context"
	"net/http"
	"resort/infras/otel"
	"resort/internal/domains/packages/model"
	"resort/internal/domains/packages/model/dto"
	"resort/internal/domains/packages/service"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Package
	otel    otel.Otel
}

func New(service service.Package, otel otel.Otel) Handler {
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
	router.Route("/packages", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePackage)
		routerGroup.Get("/", handler.GetPackages)
		routerGroup.Get("/{id}", handler.GetPackageByID)
		routerGroup.Patch("/{id}", handler.UpdatePackage)
		routerGroup.Delete("/{id}", handler.DeletePackage)
	})
}

// CreatePackage handles the creation of a new package.
// @Summary Create a new package
// @Tags Package
// @Accept json
// @Produce json
// @Param request body dto.CreatePackageRequest true "Create Package Request"
// @Success 201 {object} response.Message "Package created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages [post]
// @Security BearerAuth
func (handler *Handler) CreatePackage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.trace(request, "CreatePackage")
	defer scope.End()

	req := dto.CreatePackageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		response.Fail(writer, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		response.Fail(writer, scope, err, "failed to create package")

		return
	}

	scope.AddEvent("Package created successfully by user " + shared.UserID(ctx))

	response.WithMessage(writer, http.StatusCreated, "Package created successfully")
}

// GetPackages retrieves packages based on query parameters.
// @Summary Get all packages
// @Tags Package
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param is_active query boolean false "Filter by active status"
// @Param is_featured query boolean false "Filter featured packages"
// @Success 200 {object} response.Data[dto.GetPackagesResponse] "List of packages"
// @Failure 500 {object} response.Error
// @Router /v1/packages [get]
func (handler *Handler) GetPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "GetPackages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	switch queryParams.SortBy {
	case model.FieldName, model.FieldPrice, model.FieldCode:
	default:
		queryParams.SortBy = model.FieldName
	}

	if queryParams.SortDir == constant.Empty {
		queryParams.SortDir = gDto.SortDirAsc
	}

	query := r.URL.Query()
	filterGroup := gDto.All()
	filterGroup.FromQuery(query, model.TableName, gDto.FilterOperatorLike, model.FieldName)
	filterGroup.FlagsFromQuery(query, model.TableName, model.FieldIsActive, model.FieldIsFeatured)

	packages, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		response.Fail(w, scope, err, "failed to get packages")

		return
	}

	response.WithJSON(w, http.StatusOK, packages)
}

// GetPackageByID retrieves a package by its ID.
// @Summary Get a package by ID
// @Tags Package
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} response.Data[dto.PackageResponse] "Package details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id} [get]
func (handler *Handler) GetPackageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "GetPackageByID")
	defer scope.End()

	pkg, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.Fail(w, scope, err, "failed to get package by ID")

		return
	}

	response.WithJSON(w, http.StatusOK, pkg)
}

// UpdatePackage updates an existing package by its ID.
// @Summary Update a package by ID
// @Tags Package
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param request body dto.UpdatePackageRequest true "Update Package Request"
// @Success 200 {object} response.Message "Package updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "UpdatePackage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePackageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		response.Fail(w, scope, err, "failed to update package")

		return
	}

	scope.AddEvent("Package updated successfully by user " + shared.UserID(ctx))

	response.WithMessage(w, http.StatusOK, "Package updated successfully")
}

// DeletePackage hides a package from the catalog.
// @Summary Delete a package by ID
// @Tags Package
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} response.Message "Package deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/packages/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "DeletePackage")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		response.Fail(w, scope, err, "failed to delete package")

		return
	}

	scope.AddEvent("Package deleted successfully by user " + shared.UserID(ctx))

	response.WithMessage(w, http.StatusOK, "Package deleted successfully")
}
