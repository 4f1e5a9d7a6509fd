package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "domus/internal/errors"
	"domus/internal/storage"
)

// UploadHandler accepts image uploads and returns provisional paths for later
// attachment to a listing.
type UploadHandler struct {
	images *storage.ImageStore
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(images *storage.ImageStore) *UploadHandler {
	return &UploadHandler{images: images}
}

// UploadImage godoc
// @Summary Upload a single image
// @Tags upload
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /upload/image [post]
func (h *UploadHandler) UploadImage(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "image file is required",
			Code:  "VALIDATION_ERROR",
		})
	}
	path, err := h.images.SaveUpload(fh)
	if err != nil {
		return uploadError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"path": path})
}

// UploadImages godoc
// @Summary Upload multiple images
// @Tags upload
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param images formData file true "Image files"
// @Success 201 {object} map[string][]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /upload/images [post]
func (h *UploadHandler) UploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "multipart form is required",
			Code:  "VALIDATION_ERROR",
		})
	}
	files := form.File["images"]
	if len(files) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "at least one image file is required",
			Code:  "VALIDATION_ERROR",
		})
	}

	paths := make([]string, 0, len(files))
	for _, fh := range files {
		path, err := h.images.SaveUpload(fh)
		if err != nil {
			return uploadError(err)
		}
		paths = append(paths, path)
	}
	return c.JSON(http.StatusCreated, echo.Map{"paths": paths})
}

func uploadError(err error) *echo.HTTPError {
	if errors.Is(err, storage.ErrUnsupportedImageType) {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
		Error: "failed to store image",
		Code:  "INTERNAL_ERROR",
	})
}
