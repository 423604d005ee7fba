package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ownplate/internal/core/domain/model/order"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return token
}

func TestJWTAuth(t *testing.T) {
	e := echo.New()
	handler := JWTAuth(testSecret)(func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, CallerUID(ctx))
	})

	t.Run("valid token passes caller uid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, jwt.MapClaims{"uid": "user-1"}))
		rec := httptest.NewRecorder()

		err := handler(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1", rec.Body.String())
	})

	t.Run("missing token is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		err := handler(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token without uid claim is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, jwt.MapClaims{"sub": "user-1"}))
		rec := httptest.NewRecorder()

		err := handler(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with wrong key is unauthorized", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"uid": "user-1"}).
			SignedString([]byte("other-secret"))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()

		err = handler(e.NewContext(req, rec))

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestPlaceOrder_InvalidIdentifier(t *testing.T) {
	e := echo.New()
	server := &Server{}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"tip": 1.5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("restaurantID", "orderID")
	ctx.SetParamValues("not-a-uuid", "also-not-a-uuid")

	err := server.PlaceOrder(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrderStatus_InvalidStatus(t *testing.T) {
	e := echo.New()
	server := &Server{}

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"status": "Exploded"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("restaurantID", "orderID")
	ctx.SetParamValues("7b9356cc-3cd5-4f1c-9f6a-5d3a39c9a1f4", "c2d9f7f1-5fd9-4b86-8f7a-2bb8f54a9f11")

	err := server.UpdateOrderStatus(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatusFromRequest(t *testing.T) {
	t.Run("numeric enum value", func(t *testing.T) {
		target, err := statusFromRequest(json.RawMessage(`3`))

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, target)
	})

	t.Run("status name", func(t *testing.T) {
		target, err := statusFromRequest(json.RawMessage(`"CookingCompleted"`))

		require.NoError(t, err)
		assert.Equal(t, order.CookingCompleted, target)
	})

	t.Run("numeric value outside the enum is rejected", func(t *testing.T) {
		_, err := statusFromRequest(json.RawMessage(`99`))
		assert.Error(t, err)

		_, err = statusFromRequest(json.RawMessage(`0`))
		assert.Error(t, err)
	})

	t.Run("unknown name is rejected", func(t *testing.T) {
		_, err := statusFromRequest(json.RawMessage(`"accepted"`))
		assert.Error(t, err)
	})

	t.Run("absent status is rejected", func(t *testing.T) {
		_, err := statusFromRequest(nil)
		assert.Error(t, err)
	})
}

func TestUpdateOrderStatus_NumericStatusOutsideEnum(t *testing.T) {
	e := echo.New()
	server := &Server{}

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"status": 42}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("restaurantID", "orderID")
	ctx.SetParamValues("7b9356cc-3cd5-4f1c-9f6a-5d3a39c9a1f4", "c2d9f7f1-5fd9-4b86-8f7a-2bb8f54a9f11")

	err := server.UpdateOrderStatus(ctx)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
