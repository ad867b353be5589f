package handler

import (
	"context"
	"encoding/json"
	"errors"
	"go-facade/application/middleware"
	"go-facade/dto"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockFacade struct {
	mock.Mock
}

func (m *mockFacade) TestOperation(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockFacade) CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.CreateOrderResponse)
	return resp, args.Error(1)
}

func setupApp(f *mockFacade) *fiber.App {
	app := fiber.New()
	app.Use(middleware.ResponseError())
	NewFacadeHandler(f).RegisterRoutes(app)
	return app
}

func postCreateOrder(t *testing.T, app *fiber.App, body string, contentType string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/CreateOrder", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	return resp.StatusCode, got
}

func TestGetTestOperation(t *testing.T) {
	f := new(mockFacade)
	f.On("TestOperation", mock.Anything).Return("Hello from the Facade!", nil)

	resp, err := setupApp(f).Test(httptest.NewRequest(http.MethodGet, "/TestOperation", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Hello from the Facade!", string(body))
	f.AssertExpectations(t)
}

func TestPostCreateOrder(t *testing.T) {
	f := new(mockFacade)
	want := &dto.CreateOrderResponse{OrderID: 1234, ProductName: "Widget", Quantity: 5, Status: "Pending"}
	f.On("CreateOrder", mock.Anything, &dto.CreateOrderRequest{ProductName: "Widget", Quantity: 5}).Return(want, nil)

	req := httptest.NewRequest(http.MethodPost, "/CreateOrder", strings.NewReader(`{"productName":"Widget","quantity":5}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := setupApp(f).Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got dto.CreateOrderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, *want, got)
	f.AssertExpectations(t)
}

func TestPostCreateOrderBindErrors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		wantStatus  int
	}{
		{name: "truncated_json", body: `{"productName":`, contentType: "application/json", wantStatus: http.StatusBadRequest},
		{name: "quantity_overflows_int32", body: `{"productName":"Widget","quantity":99999999999}`, contentType: "application/json", wantStatus: http.StatusBadRequest},
		{name: "quantity_not_a_number", body: `{"productName":"Widget","quantity":"five"}`, contentType: "application/json", wantStatus: http.StatusBadRequest},
		{name: "no_content_type", body: `{"productName":"Widget","quantity":5}`, contentType: "", wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := new(mockFacade)

			status, body := postCreateOrder(t, setupApp(f), tt.body, tt.contentType)

			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, body["error"])
			f.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
		})
	}
}

func TestPostCreateOrderFacadeErrorIsMasked(t *testing.T) {
	f := new(mockFacade)
	f.On("CreateOrder", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	status, body := postCreateOrder(t, setupApp(f), `{"productName":"Widget","quantity":5}`, "application/json")

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", body["error"])
}
