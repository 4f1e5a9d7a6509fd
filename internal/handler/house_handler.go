package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"domus/internal/model"
	"domus/internal/repository"
	"domus/internal/service"
)

// HouseHandler handles listing endpoints.
type HouseHandler struct {
	houseService service.HouseService
}

// NewHouseHandler creates a new house handler.
func NewHouseHandler(houseService service.HouseService) *HouseHandler {
	return &HouseHandler{houseService: houseService}
}

// HouseListResponse is one page of listings.
type HouseListResponse struct {
	Items      []model.House     `json:"items"`
	Pagination PaginationDetails `json:"pagination"`
}

// PaginationDetails describes the page window.
type PaginationDetails struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// List godoc
// @Summary List houses with filters and pagination
// @Tags houses
// @Produce json
// @Param priceMin query number false "Minimum price, inclusive"
// @Param priceMax query number false "Maximum price, inclusive"
// @Param rooms query string false "Bedroom count, number or N+ for at least N"
// @Param floors query string false "Floor count, number or N+ for at least N"
// @Param withRepair query boolean false "Only houses with repair"
// @Param withFurniture query boolean false "Only furnished houses"
// @Param page query int false "Page number, 1-indexed"
// @Param limit query int false "Page size, default 10"
// @Success 200 {object} HouseListResponse
// @Router /houses [get]
func (h *HouseHandler) List(c echo.Context) error {
	filter := parseHouseFilter(c)
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.houseService.List(c.Request().Context(), filter, page, limit)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, HouseListResponse{
		Items: result.Items,
		Pagination: PaginationDetails{
			Page:       result.Page,
			Limit:      result.Limit,
			TotalCount: result.TotalCount,
			TotalPages: result.TotalPages,
		},
	})
}

// Get godoc
// @Summary Fetch one house
// @Tags houses
// @Produce json
// @Param id path int true "House ID"
// @Success 200 {object} model.House
// @Failure 404 {object} errors.ErrorResponse
// @Router /houses/{id} [get]
func (h *HouseHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	house, err := h.houseService.Get(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, house)
}

// Create godoc
// @Summary Create a house listing
// @Tags houses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param house body model.House true "House payload"
// @Success 201 {object} model.House
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /houses [post]
func (h *HouseHandler) Create(c echo.Context) error {
	var house model.House
	if err := c.Bind(&house); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	created, err := h.houseService.Create(c.Request().Context(), &house)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a house listing
// @Tags houses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "House ID"
// @Param house body model.House true "House payload"
// @Success 200 {object} model.House
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /houses/{id} [put]
func (h *HouseHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var house model.House
	if err := c.Bind(&house); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	updated, err := h.houseService.Update(c.Request().Context(), id, &house)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a house listing and its images
// @Tags houses
// @Produce json
// @Security BearerAuth
// @Param id path int true "House ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /houses/{id} [delete]
func (h *HouseHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	warning, err := h.houseService.Delete(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	body := echo.Map{"message": "house deleted"}
	if warning != "" {
		body["warning"] = warning
	}
	return c.JSON(http.StatusOK, body)
}

// parseHouseFilter reads the query-string filter criteria. Absent parameters
// impose no constraint.
func parseHouseFilter(c echo.Context) repository.HouseFilter {
	var filter repository.HouseFilter

	if v := c.QueryParam("priceMin"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.PriceMin = &f
		}
	}
	if v := c.QueryParam("priceMax"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.PriceMax = &f
		}
	}
	filter.Bedrooms, filter.BedroomsMin = parseCountParam(c.QueryParam("rooms"))
	filter.Floors, filter.FloorsMin = parseCountParam(c.QueryParam("floors"))
	if v := c.QueryParam("withRepair"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filter.WithRepair = &b
		}
	}
	if v := c.QueryParam("withFurniture"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filter.WithFurniture = &b
		}
	}
	return filter
}

// parseCountParam handles "N" as exact and "N+" as at-least-N.
func parseCountParam(v string) (exact *int, atLeast *int) {
	if v == "" {
		return nil, nil
	}
	if strings.HasSuffix(v, "+") {
		if n, err := strconv.Atoi(strings.TrimSuffix(v, "+")); err == nil {
			return nil, &n
		}
		return nil, nil
	}
	if n, err := strconv.Atoi(v); err == nil {
		return &n, nil
	}
	return nil, nil
}

func parseID(c echo.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
