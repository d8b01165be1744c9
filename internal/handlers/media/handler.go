package media

import (
	"context"
	"net/http"
	"resort/infras/otel"
	"resort/internal/domains/media/model/dto"
	"resort/internal/domains/media/service"
	"resort/shared/constant"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service service.Media
	otel    otel.Otel
}

func New(service service.Media, otel otel.Otel) Handler {
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
	router.Route("/media", func(routerGroup chi.Router) {
		routerGroup.Post("/upload", handler.Upload)
		routerGroup.Delete("/", handler.Delete)
	})
}

// Upload stores package images.
// @Summary Upload package images
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Images, up to 10"
// @Success 201 {object} response.Data[dto.UploadResponse] "Uploaded image URLs"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/media/upload [post]
// @Security BearerAuth
func (handler *Handler) Upload(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.trace(request, "Upload")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		response.Fail(writer, scope, err, "failed to parse multipart form")

		return
	}

	req := dto.UploadRequest{Files: request.MultipartForm.File["files"]}

	if err := validator.ValidateStruct(&req); err != nil {
		response.Fail(writer, scope, err, "failed to validate request")

		return
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		response.Fail(writer, scope, err, "failed to upload media")

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// Delete removes previously uploaded images.
// @Summary Delete package images
// @Tags Media
// @Accept json
// @Produce json
// @Param request body dto.DeleteRequest true "Image URLs"
// @Success 200 {object} response.Message "Media deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/media [delete]
// @Security BearerAuth
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.trace(r, "Delete")
	defer scope.End()

	req := dto.DeleteRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		response.Fail(w, scope, err, "failed to validate request body")

		return
	}

	if err := handler.service.Delete(ctx, req); err != nil {
		response.Fail(w, scope, err, "failed to delete media")

		return
	}

	response.WithMessage(w, http.StatusOK, "Media deleted successfully")
}
