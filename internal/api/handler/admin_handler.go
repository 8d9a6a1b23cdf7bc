package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fixora/booking-api/internal/core/ports"
)

// AdminHandler serves the admin-only read views. RBAC is enforced at the
// router; these handlers assume an admin session.
type AdminHandler struct {
	admin   ports.AdminService
	contact ports.ContactService
}

func NewAdminHandler(admin ports.AdminService, contact ports.ContactService) *AdminHandler {
	return &AdminHandler{admin: admin, contact: contact}
}

// Users lists every registered user with booking counts.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        role  query     string  false  "Filter by role (user|admin)"
// @Success      200   {object}  usersResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.admin.ListUsers(c.Request().Context(), c.QueryParam("role"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersResponse{Users: users, Total: len(users)})
}

// Bookings lists every booking with owner contact details.
//
// @Summary      List all bookings
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status (pending|confirmed|completed|cancelled)"
// @Success      200     {object}  adminBookingsResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Router       /admin/bookings [get]
func (h *AdminHandler) Bookings(c echo.Context) error {
	bookings, err := h.admin.ListBookings(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, adminBookingsResponse{Bookings: bookings, Total: len(bookings)})
}

// Analytics returns the dashboard report.
//
// @Summary      Dashboard analytics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AnalyticsReport
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/analytics [get]
func (h *AdminHandler) Analytics(c echo.Context) error {
	report, err := h.admin.Analytics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// Contacts lists contact-form submissions newest-first.
//
// @Summary      List contact messages
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  contactsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/contacts [get]
func (h *AdminHandler) Contacts(c echo.Context) error {
	messages, err := h.contact.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contactsResponse{Messages: messages, Total: len(messages)})
}
