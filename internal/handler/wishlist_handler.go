package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"domus/internal/service"
)

// WishlistHandler handles per-customer wishlist endpoints. All routes sit
// behind the bearer-token middleware; the customer id always comes from the
// verified claims, never from the request.
type WishlistHandler struct {
	wishlistService service.WishlistService
}

// NewWishlistHandler creates a new wishlist handler.
func NewWishlistHandler(wishlistService service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// Get godoc
// @Summary Get the caller's wishlist
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.House
// @Failure 401 {object} errors.ErrorResponse
// @Router /house-wishlist [get]
func (h *WishlistHandler) Get(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	houses, err := h.wishlistService.Get(c.Request().Context(), claims.CustomerID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, houses)
}

// Add godoc
// @Summary Add a house to the wishlist
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param houseId path int true "House ID"
// @Success 200 {array} model.House
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /house-wishlist/{houseId} [post]
func (h *WishlistHandler) Add(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	houseID, err := parseID(c, "houseId")
	if err != nil {
		return err
	}
	houses, err := h.wishlistService.Add(c.Request().Context(), claims.CustomerID, houseID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, houses)
}

// Remove godoc
// @Summary Remove a house from the wishlist
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param houseId path int true "House ID"
// @Success 200 {array} model.House
// @Failure 401 {object} errors.ErrorResponse
// @Router /house-wishlist/{houseId} [delete]
func (h *WishlistHandler) Remove(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	houseID, err := parseID(c, "houseId")
	if err != nil {
		return err
	}
	houses, err := h.wishlistService.Remove(c.Request().Context(), claims.CustomerID, houseID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, houses)
}

// Clear godoc
// @Summary Clear the wishlist
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /house-wishlist [delete]
func (h *WishlistHandler) Clear(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	if err := h.wishlistService.Clear(c.Request().Context(), claims.CustomerID); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "wishlist cleared"})
}

// Check godoc
// @Summary Check wishlist membership
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param houseId path int true "House ID"
// @Success 200 {object} map[string]bool
// @Failure 401 {object} errors.ErrorResponse
// @Router /house-wishlist/check/{houseId} [get]
func (h *WishlistHandler) Check(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	houseID, err := parseID(c, "houseId")
	if err != nil {
		return err
	}
	contains, err := h.wishlistService.Contains(c.Request().Context(), claims.CustomerID, houseID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"inWishlist": contains})
}
