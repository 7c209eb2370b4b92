package booking

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tablebook/internal/domain"
	"tablebook/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeAuth stands in for the JWT middleware in handler tests.
func fakeAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func newRouter(svc *Service, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/api/v1", fakeAuth(userID))
	h := NewHandler(svc)
	h.RegisterCustomerRoutes(group)
	h.RegisterOwnerRoutes(group)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandler_CreateBooking_Created(t *testing.T) {
	svc, bookings, users, restaurants, broadcaster, _ := newTestService()

	users.On("GetByID", mock.Anything, "customer-1").Return(testCustomer(), nil)
	restaurants.On("GetByID", mock.Anything, "restaurant-1").Return(testRestaurant(), nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	broadcaster.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(1)

	r := newRouter(svc, "customer-1")
	w := postJSON(t, r, "/api/v1/bookings/create-booking", validCreateRequest())

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]any)
	b := data["booking"].(map[string]any)
	assert.Equal(t, "pending", b["status"])
	assert.NotEmpty(t, b["id"])
}

func TestHandler_CreateBooking_ValidationDetails(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	req := validCreateRequest()
	req.PhoneNumber = "123" // fails len=10

	r := newRouter(svc, "customer-1")
	w := postJSON(t, r, "/api/v1/bookings/create-booking", req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_ERROR", errObj["code"])
	details := errObj["details"].(map[string]any)
	assert.Contains(t, details, "PhoneNumber")
}

func TestHandler_CreateBooking_RestaurantMissing(t *testing.T) {
	svc, _, users, restaurants, _, _ := newTestService()

	users.On("GetByID", mock.Anything, "customer-1").Return(testCustomer(), nil)
	restaurants.On("GetByID", mock.Anything, "restaurant-1").Return(nil, repository.ErrNotFound)

	r := newRouter(svc, "customer-1")
	w := postJSON(t, r, "/api/v1/bookings/create-booking", validCreateRequest())

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errObj["code"])
}

func TestHandler_ChangeStatus_OK(t *testing.T) {
	svc, bookings, users, restaurants, _, mail := newTestService()

	bookings.On("GetByID", mock.Anything, "booking-1").Return(pendingBooking(), nil)
	restaurants.On("GetByOwner", mock.Anything, "owner-1").Return(testRestaurant(), nil)
	bookings.On("UpdateStatusIfPending", mock.Anything, "booking-1", domain.BookingAccepted).Return(true, nil)
	users.On("GetByID", mock.Anything, "customer-1").Return(testCustomer(), nil)
	mail.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	r := newRouter(svc, "owner-1")
	w := postJSON(t, r, "/api/v1/bookings/change-booking-status", ChangeBookingStatusRequest{
		BookingID: "booking-1",
		NewStatus: "accepted",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "warning")
}

func TestHandler_ChangeStatus_EmailWarning(t *testing.T) {
	svc, bookings, users, restaurants, _, mail := newTestService()

	bookings.On("GetByID", mock.Anything, "booking-1").Return(pendingBooking(), nil)
	restaurants.On("GetByOwner", mock.Anything, "owner-1").Return(testRestaurant(), nil)
	bookings.On("UpdateStatusIfPending", mock.Anything, "booking-1", domain.BookingRejected).Return(true, nil)
	users.On("GetByID", mock.Anything, "customer-1").Return(testCustomer(), nil)
	mail.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp relay down"))

	r := newRouter(svc, "owner-1")
	w := postJSON(t, r, "/api/v1/bookings/change-booking-status", ChangeBookingStatusRequest{
		BookingID: "booking-1",
		NewStatus: "rejected",
	})

	// Email failure never fails the request; the transition is committed.
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["warning"])
	b := body["data"].(map[string]any)["booking"].(map[string]any)
	assert.Equal(t, "rejected", b["status"])
}

func TestHandler_ChangeStatus_Forbidden(t *testing.T) {
	svc, bookings, _, restaurants, _, _ := newTestService()

	other := &domain.Restaurant{ID: "restaurant-2", OwnerID: "owner-2"}
	bookings.On("GetByID", mock.Anything, "booking-1").Return(pendingBooking(), nil)
	restaurants.On("GetByOwner", mock.Anything, "owner-2").Return(other, nil)

	r := newRouter(svc, "owner-2")
	w := postJSON(t, r, "/api/v1/bookings/change-booking-status", ChangeBookingStatusRequest{
		BookingID: "booking-1",
		NewStatus: "accepted",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	body := decodeBody(t, w)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "FORBIDDEN", errObj["code"])
}

func TestHandler_ChangeStatus_NoLongerPending(t *testing.T) {
	svc, bookings, _, restaurants, _, _ := newTestService()

	resolved := pendingBooking()
	resolved.Status = domain.BookingRejected
	bookings.On("GetByID", mock.Anything, "booking-1").Return(resolved, nil)
	restaurants.On("GetByOwner", mock.Anything, "owner-1").Return(testRestaurant(), nil)

	r := newRouter(svc, "owner-1")
	w := postJSON(t, r, "/api/v1/bookings/change-booking-status", ChangeBookingStatusRequest{
		BookingID: "booking-1",
		NewStatus: "accepted",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "INVALID_STATE", errObj["code"])
}

func TestHandler_ChangeStatus_RejectsUnknownStatus(t *testing.T) {
	svc, bookings, _, _, _, _ := newTestService()

	r := newRouter(svc, "owner-1")
	w := postJSON(t, r, "/api/v1/bookings/change-booking-status", map[string]string{
		"bookingID": "booking-1",
		"newStatus": "confirmed",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	bookings.AssertNotCalled(t, "UpdateStatusIfPending", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_GetBookingsByCustomer(t *testing.T) {
	svc, bookings, _, _, _, _ := newTestService()

	bookings.On("ListByCustomer", mock.Anything, "customer-1").Return([]domain.Booking{*pendingBooking()}, nil)

	r := newRouter(svc, "customer-1")
	w := postJSON(t, r, "/api/v1/bookings/get-bookings-by-customer", gin.H{})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	list := data["bookings"].([]any)
	assert.Len(t, list, 1)
}
