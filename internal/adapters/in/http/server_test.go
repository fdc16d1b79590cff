package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/api"
	httpadapter "storefront/internal/adapters/in/http"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commandFunc[C any] func(ctx context.Context, cmd C) error

func (f commandFunc[C]) Handle(ctx context.Context, cmd C) error { return f(ctx, cmd) }

type resultFunc[C, R any] func(ctx context.Context, cmd C) (R, error)

func (f resultFunc[C, R]) Handle(ctx context.Context, cmd C) (R, error) { return f(ctx, cmd) }

type stubTokens map[string]ports.Identity

func (s stubTokens) Issue(ports.Identity) (string, error) { return "", errors.New("not used") }

func (s stubTokens) Parse(token string) (ports.Identity, error) {
	identity, ok := s[token]
	if !ok {
		return ports.Identity{}, errors.New("unknown token")
	}
	return identity, nil
}

var (
	customer = ports.Identity{UserID: kernel.NewUUID(), Role: user.RoleCustomer}
	courier  = ports.Identity{UserID: kernel.NewUUID(), Role: user.RoleAgent, AgentID: kernel.NewUUID()}
	admin    = ports.Identity{UserID: kernel.NewUUID(), Role: user.RoleAdmin}
	tokens   = stubTokens{"customer-token": customer, "agent-token": courier, "admin-token": admin}
)

func newRouter(t *testing.T, h httpadapter.Handlers) *echo.Echo {
	t.Helper()
	e, err := httpadapter.NewRouter(context.Background(), httpadapter.NewServer(h), tokens, api.OpenAPI,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return e
}

func do(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpadapter.ErrorResponse {
	t.Helper()
	var body httpadapter.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	return body
}

func decodeSuccess(t *testing.T, rec *httptest.ResponseRecorder) httpadapter.SuccessResponse {
	t.Helper()
	var body httpadapter.SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	return body
}

func TestLoadOpenAPI_EmbeddedContract(t *testing.T) {
	doc, err := httpadapter.LoadOpenAPI(t.Context(), api.OpenAPI)

	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/api/v1/auth/registration-code"))
	assert.Contains(t, doc.Components.Responses, "Success")
}

func TestHealth(t *testing.T) {
	rec := do(newRouter(t, httpadapter.Handlers{}), nethttp.MethodGet, "/health", "", "")

	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestGetProducts_PassesFiltersAndRendersMoneyAsStrings(t *testing.T) {
	var got queries.GetProductsQuery
	price := kernel.MustMoney("70.00")
	h := httpadapter.Handlers{
		GetProducts: resultFunc[queries.GetProductsQuery, queries.GetProductsQueryResponse](
			func(_ context.Context, q queries.GetProductsQuery) (queries.GetProductsQueryResponse, error) {
				got = q
				return queries.GetProductsQueryResponse{
					Products: []queries.ProductSummary{{ID: kernel.NewUUID(), Name: "Silk Saree", Category: "Women", Rentable: true, MinRentPrice: &price, InStock: true}},
					Page:     2,
					HasNext:  true,
				}, nil
			}),
	}

	rec := do(newRouter(t, h), nethttp.MethodGet, "/api/v1/products?search=silk&category=women&type=rent&page=2", "", "")

	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "silk", got.Search())
	require.NotNil(t, got.Category())
	assert.Equal(t, catalog.Women, *got.Category())
	assert.Equal(t, queries.RentType, got.Type())
	assert.Equal(t, 2, got.Page())

	var page httpadapter.ProductPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.True(t, page.HasNext)
	require.Len(t, page.Products, 1)
	require.NotNil(t, page.Products[0].MinRentPrice)
	assert.Equal(t, "70.00", *page.Products[0].MinRentPrice)
	assert.Nil(t, page.Products[0].MinSalePrice)
}

func TestGetProducts_RejectsRequestsOutsideTheContract(t *testing.T) {
	called := false
	h := httpadapter.Handlers{
		GetProducts: resultFunc[queries.GetProductsQuery, queries.GetProductsQueryResponse](
			func(context.Context, queries.GetProductsQuery) (queries.GetProductsQueryResponse, error) {
				called = true
				return queries.GetProductsQueryResponse{}, nil
			}),
	}
	e := newRouter(t, h)

	for _, target := range []string{"/api/v1/products?page=0", "/api/v1/products?type=lease"} {
		rec := do(e, nethttp.MethodGet, target, "", "")
		assert.Equal(t, nethttp.StatusBadRequest, rec.Code, target)
		decodeError(t, rec)
	}
	assert.False(t, called)
}

func TestGetProduct_NotFound(t *testing.T) {
	h := httpadapter.Handlers{
		GetProduct: resultFunc[queries.GetProductQuery, queries.GetProductQueryResponse](
			func(_ context.Context, q queries.GetProductQuery) (queries.GetProductQueryResponse, error) {
				return queries.GetProductQueryResponse{}, errs.NewObjectNotFoundError("product", q.ProductID())
			}),
	}

	rec := do(newRouter(t, h), nethttp.MethodGet, "/api/v1/products/"+kernel.NewUUID().String(), "", "")

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "object not found")
}

func TestAuthentication(t *testing.T) {
	h := httpadapter.Handlers{
		GetCart: resultFunc[queries.GetCartQuery, queries.GetCartQueryResponse](
			func(context.Context, queries.GetCartQuery) (queries.GetCartQueryResponse, error) {
				return queries.GetCartQueryResponse{Total: kernel.ZeroMoney}, nil
			}),
	}
	e := newRouter(t, h)

	rec := do(e, nethttp.MethodGet, "/api/v1/cart", "", "")
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	assert.Equal(t, "authentication required", decodeError(t, rec).Message)

	rec = do(e, nethttp.MethodGet, "/api/v1/cart", "forged", "")
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)

	rec = do(e, nethttp.MethodGet, "/api/v1/cart", "customer-token", "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"total":"0.00"}`, rec.Body.String())
}

func TestRoleChecks(t *testing.T) {
	e := newRouter(t, httpadapter.Handlers{})

	rec := do(e, nethttp.MethodGet, "/api/v1/admin/dashboard", "customer-token", "")
	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
	decodeError(t, rec)

	rec = do(e, nethttp.MethodGet, "/api/v1/agent/tasks", "admin-token", "")
	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
}

func TestAddToCart_RentalLine(t *testing.T) {
	var got commands.AddToCartCommand
	h := httpadapter.Handlers{
		AddToCart: commandFunc[commands.AddToCartCommand](func(_ context.Context, cmd commands.AddToCartCommand) error {
			got = cmd
			return nil
		}),
	}
	variantID := kernel.NewUUID()

	rec := do(newRouter(t, h), nethttp.MethodPost, "/api/v1/cart/items", "customer-token",
		`{"variant_id":"`+variantID.String()+`","quantity":2,"start_date":"2024-01-05","end_date":"2024-01-08"}`)

	require.Equal(t, nethttp.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, got.CustomerID().IsEqual(customer.UserID))
	assert.True(t, got.VariantID().IsEqual(variantID))
	assert.Equal(t, 2, got.Quantity())
	require.NotNil(t, got.Period())
	assert.Equal(t, 3, got.Period().Days())

	var created httpadapter.CreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, got.ItemID().String(), created.ID.String())
	assert.Equal(t, "success", created.Status)
	assert.Equal(t, "Item added to cart", created.Message)
}

func TestAddToCart_HalfAPeriodIsRejected(t *testing.T) {
	h := httpadapter.Handlers{
		AddToCart: commandFunc[commands.AddToCartCommand](func(context.Context, commands.AddToCartCommand) error {
			t.Fatal("handler must not run")
			return nil
		}),
	}

	rec := do(newRouter(t, h), nethttp.MethodPost, "/api/v1/cart/items", "customer-token",
		`{"variant_id":"`+kernel.NewUUID().String()+`","quantity":1,"start_date":"2024-01-05"}`)

	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "rental period")
}

func TestCheckout(t *testing.T) {
	var got commands.CheckoutCommand
	h := httpadapter.Handlers{
		Checkout: commandFunc[commands.CheckoutCommand](func(_ context.Context, cmd commands.CheckoutCommand) error {
			got = cmd
			return nil
		}),
	}
	e := newRouter(t, h)

	rec := do(e, nethttp.MethodPost, "/api/v1/checkout", "customer-token",
		`{"phone":"+91 98200 00000","street":"1 MG Road","city":"Pune","state":"MH"}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "zip_code")

	rec = do(e, nethttp.MethodPost, "/api/v1/checkout", "customer-token",
		`{"phone":"+91 98200 00000","street":"1 MG Road","city":"Pune","state":"MH","zip_code":"411001"}`)
	require.Equal(t, nethttp.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, got.CustomerID().IsEqual(customer.UserID))
	assert.Equal(t, "Pune", got.Address().City())
}

func TestCheckout_EmptyCartIsAConflict(t *testing.T) {
	h := httpadapter.Handlers{
		Checkout: commandFunc[commands.CheckoutCommand](func(context.Context, commands.CheckoutCommand) error {
			return errs.NewConflictError("cart", errors.New("cart is empty"))
		}),
	}

	rec := do(newRouter(t, h), nethttp.MethodPost, "/api/v1/checkout", "customer-token",
		`{"phone":"1","street":"s","city":"c","state":"st","zip_code":"z"}`)

	assert.Equal(t, nethttp.StatusConflict, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "cart is empty")
}

func TestLogin(t *testing.T) {
	h := httpadapter.Handlers{
		Login: resultFunc[commands.LoginCommand, string](func(_ context.Context, cmd commands.LoginCommand) (string, error) {
			if cmd.Password() != "correct horse" {
				return "", commands.ErrInvalidCredentials
			}
			return "signed", nil
		}),
	}
	e := newRouter(t, h)

	rec := do(e, nethttp.MethodPost, "/api/v1/auth/login", "", `{"email":"a@example.com","password":"wrong"}`)
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid email or password", decodeError(t, rec).Message)

	rec = do(e, nethttp.MethodPost, "/api/v1/auth/login", "", `{"email":"a@example.com","password":"correct horse"}`)
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","message":"Logged in","token":"signed"}`, rec.Body.String())
}

func TestRequestRegistrationCode_ReturnsSession(t *testing.T) {
	var got commands.RequestRegistrationCodeCommand
	h := httpadapter.Handlers{
		RequestRegistrationCode: commandFunc[commands.RequestRegistrationCodeCommand](
			func(_ context.Context, cmd commands.RequestRegistrationCodeCommand) error {
				got = cmd
				return nil
			}),
	}

	rec := do(newRouter(t, h), nethttp.MethodPost, "/api/v1/auth/registration-code", "", `{"email":"New@Example.com"}`)

	require.Equal(t, nethttp.StatusAccepted, rec.Code, rec.Body.String())
	var session httpadapter.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, got.SessionID().String(), session.SessionID.String())
	assert.Equal(t, "success", session.Status)
	assert.Equal(t, "new@example.com", got.Email())
}

func TestDeliveryRoutes_ActAsTheTokenAgent(t *testing.T) {
	var status commands.UpdateDeliveryStatusCommand
	var complete commands.CompleteDeliveryCommand
	h := httpadapter.Handlers{
		UpdateDeliveryStatus: commandFunc[commands.UpdateDeliveryStatusCommand](
			func(_ context.Context, cmd commands.UpdateDeliveryStatusCommand) error {
				status = cmd
				return nil
			}),
		CompleteDelivery: commandFunc[commands.CompleteDeliveryCommand](
			func(_ context.Context, cmd commands.CompleteDeliveryCommand) error {
				complete = cmd
				return errs.NewValueIsInvalidError("delivery code")
			}),
	}
	e := newRouter(t, h)
	deliveryID := kernel.NewUUID()

	rec := do(e, nethttp.MethodPost, "/api/v1/deliveries/"+deliveryID.String()+"/status", "agent-token",
		`{"status":"Out for Delivery"}`)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Status updated to Out for Delivery", decodeSuccess(t, rec).Message)
	assert.True(t, status.AgentID().IsEqual(courier.AgentID))
	assert.Equal(t, delivery.StatusOutForDelivery, status.Status())

	rec = do(e, nethttp.MethodPost, "/api/v1/deliveries/"+deliveryID.String()+"/complete", "agent-token",
		`{"code":"000000"}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.True(t, complete.DeliveryID().IsEqual(deliveryID))
	assert.Equal(t, "000000", complete.Code())

	rec = do(e, nethttp.MethodPost, "/api/v1/deliveries/"+deliveryID.String()+"/status", "agent-token",
		`{"status":"Delivered"}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestDispatchDelivery(t *testing.T) {
	var got []commands.DispatchDeliveryCommand
	h := httpadapter.Handlers{
		DispatchDelivery: commandFunc[commands.DispatchDeliveryCommand](
			func(_ context.Context, cmd commands.DispatchDeliveryCommand) error {
				got = append(got, cmd)
				if cmd.AgentID() == nil {
					return commands.ErrNoActiveAgentsFound
				}
				return nil
			}),
	}
	e := newRouter(t, h)
	orderID, agentID := kernel.NewUUID(), kernel.NewUUID()
	target := "/api/v1/admin/orders/" + orderID.String() + "/dispatch"

	rec := do(e, nethttp.MethodPost, target, "admin-token", "")
	assert.Equal(t, nethttp.StatusConflict, rec.Code)
	assert.Equal(t, "no active agents found", decodeError(t, rec).Message)

	rec = do(e, nethttp.MethodPost, target, "admin-token", `{"agent_id":"`+agentID.String()+`"}`)
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success","message":"Order dispatched"}`, rec.Body.String())

	require.Len(t, got, 2)
	assert.True(t, got[1].OrderID().IsEqual(orderID))
	require.NotNil(t, got[1].AgentID())
	assert.True(t, got[1].AgentID().IsEqual(agentID))
}

func TestDashboard(t *testing.T) {
	day := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	h := httpadapter.Handlers{
		GetDashboard: resultFunc[queries.GetDashboardQuery, queries.GetDashboardQueryResponse](
			func(context.Context, queries.GetDashboardQuery) (queries.GetDashboardQueryResponse, error) {
				return queries.GetDashboardQueryResponse{
					TotalRevenue:   kernel.MustMoney("3400.00"),
					TotalOrders:    3,
					SalesTrend:     []queries.DailySales{{Date: day, Total: kernel.MustMoney("200.00")}},
					RentalStatuses: []queries.StatusCount{{Status: "Active", Count: 1}},
				}, nil
			}),
	}

	rec := do(newRouter(t, h), nethttp.MethodGet, "/api/v1/admin/dashboard", "admin-token", "")

	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "3400.00", got["total_revenue"])
	assert.EqualValues(t, 3, got["total_orders"])
	assert.Equal(t, []any{map[string]any{"date": "2024-01-07", "total": "200.00"}}, got["sales_trend"])
	assert.Equal(t, []any{}, got["recent_orders"])
}

func TestInternalErrorsAreNotLeaked(t *testing.T) {
	h := httpadapter.Handlers{
		GetOrders: resultFunc[queries.GetOrdersQuery, []queries.OrderView](
			func(context.Context, queries.GetOrdersQuery) ([]queries.OrderView, error) {
				return nil, errors.New("pq: connection refused")
			}),
	}

	rec := do(newRouter(t, h), nethttp.MethodGet, "/api/v1/admin/orders", "admin-token", "")

	assert.Equal(t, nethttp.StatusInternalServerError, rec.Code)
	assert.Equal(t, "system error", decodeError(t, rec).Message)
}
