package http

import (
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Requests.

type RegistrationCodeRequest struct {
	Email string `json:"email"`
}

type RegisterRequest struct {
	SessionID       openapi_types.UUID `json:"session_id"`
	Code            string             `json:"code"`
	FirstName       string             `json:"first_name"`
	LastName        string             `json:"last_name"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	Password        string             `json:"password"`
	ConfirmPassword string             `json:"confirm_password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type NewVariant struct {
	Size            string  `json:"size"`
	Color           string  `json:"color"`
	Stock           int     `json:"stock"`
	SalePrice       *string `json:"sale_price"`
	RentPricePerDay *string `json:"rent_price_per_day"`
}

type NewProductRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	SubCategory string       `json:"sub_category"`
	Rentable    bool         `json:"rentable"`
	Variants    []NewVariant `json:"variants"`
}

type VariantStockRequest struct {
	Stock     int     `json:"stock"`
	SalePrice *string `json:"sale_price"`
}

type AddToCartRequest struct {
	VariantID openapi_types.UUID  `json:"variant_id"`
	Quantity  int                 `json:"quantity"`
	StartDate *openapi_types.Date `json:"start_date"`
	EndDate   *openapi_types.Date `json:"end_date"`
}

type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutRequest struct {
	Phone   string `json:"phone"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type CodeRequest struct {
	Code string `json:"code"`
}

type AgentRequest struct {
	AgentID *openapi_types.UUID `json:"agent_id"`
}

type NewAgentRequest struct {
	UserID        openapi_types.UUID `json:"user_id"`
	VehicleNumber string             `json:"vehicle_number"`
	VehicleType   string             `json:"vehicle_type"`
}

type AgentActiveRequest struct {
	Active bool `json:"active"`
}

// Responses.

// SuccessResponse is the body of every successful command. Responses that
// carry more fields embed it.
type SuccessResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func success(message string) SuccessResponse {
	return SuccessResponse{Status: "success", Message: message}
}

type CreatedResponse struct {
	SuccessResponse
	ID openapi_types.UUID `json:"id"`
}

type SessionResponse struct {
	SuccessResponse
	SessionID openapi_types.UUID `json:"session_id"`
}

type TokenResponse struct {
	SuccessResponse
	Token string `json:"token"`
}

type CountResponse struct {
	SuccessResponse
	Count int `json:"count"`
}

type ProductSummary struct {
	ID           openapi_types.UUID `json:"id"`
	Name         string             `json:"name"`
	Category     string             `json:"category"`
	SubCategory  string             `json:"sub_category"`
	Rentable     bool               `json:"rentable"`
	MinSalePrice *string            `json:"min_sale_price"`
	MinRentPrice *string            `json:"min_rent_price"`
	InStock      bool               `json:"in_stock"`
	CreatedAt    time.Time          `json:"created_at"`
}

type ProductPage struct {
	Products []ProductSummary `json:"products"`
	Page     int              `json:"page"`
	HasNext  bool             `json:"has_next"`
}

type Variant struct {
	ID              openapi_types.UUID `json:"id"`
	Size            string             `json:"size"`
	Color           string             `json:"color"`
	Stock           int                `json:"stock"`
	SalePrice       *string            `json:"sale_price"`
	RentPricePerDay *string            `json:"rent_price_per_day"`
}

type Product struct {
	ID          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	SubCategory string             `json:"sub_category"`
	Rentable    bool               `json:"rentable"`
	CreatedAt   time.Time          `json:"created_at"`
	Variants    []Variant          `json:"variants"`
}

type CartItem struct {
	ID         openapi_types.UUID  `json:"id"`
	VariantID  openapi_types.UUID  `json:"variant_id"`
	Product    string              `json:"product"`
	Variant    string              `json:"variant"`
	Kind       string              `json:"kind"`
	StartDate  *openapi_types.Date `json:"start_date,omitempty"`
	EndDate    *openapi_types.Date `json:"end_date,omitempty"`
	Days       int                 `json:"days,omitempty"`
	Quantity   int                 `json:"quantity"`
	PriceAtAdd string              `json:"price_at_add"`
	Cost       string              `json:"cost"`
	InStock    int                 `json:"in_stock"`
}

type Cart struct {
	Items []CartItem `json:"items"`
	Total string     `json:"total"`
}

type Line struct {
	ID        openapi_types.UUID `json:"id"`
	VariantID openapi_types.UUID `json:"variant_id"`
	Product   string             `json:"product"`
	Variant   string             `json:"variant"`
	Quantity  int                `json:"quantity"`
	Status    string             `json:"status"`
	Total     string             `json:"total"`
}

type Rental struct {
	Line
	StartDate      openapi_types.Date `json:"start_date"`
	EndDate        openapi_types.Date `json:"end_date"`
	DailyRate      string             `json:"daily_rate"`
	ReturnedAt     *time.Time         `json:"returned_at,omitempty"`
	PendingLateFee string             `json:"pending_late_fee"`
}

type Order struct {
	ID             openapi_types.UUID  `json:"id"`
	CustomerID     openapi_types.UUID  `json:"customer_id"`
	CustomerName   string              `json:"customer_name"`
	CustomerEmail  string              `json:"customer_email"`
	CreatedAt      time.Time           `json:"created_at"`
	Address        string              `json:"address"`
	TotalPrice     string              `json:"total_price"`
	DeliveryID     *openapi_types.UUID `json:"delivery_id,omitempty"`
	DeliveryStatus string              `json:"delivery_status,omitempty"`
	AgentID        *openapi_types.UUID `json:"agent_id,omitempty"`
	AgentName      string              `json:"agent_name,omitempty"`
	SaleItems      []Line              `json:"sale_items"`
	RentBookings   []Rental            `json:"rent_bookings"`
}

type ActiveRental struct {
	Rental
	OrderID       openapi_types.UUID `json:"order_id"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	CustomerPhone string             `json:"customer_phone"`
}

type DailySales struct {
	Date  openapi_types.Date `json:"date"`
	Total string             `json:"total"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type Dashboard struct {
	TotalRevenue      string        `json:"total_revenue"`
	TotalOrders       int           `json:"total_orders"`
	TotalProducts     int           `json:"total_products"`
	TotalCustomers    int           `json:"total_customers"`
	PendingDeliveries int           `json:"pending_deliveries"`
	LowStockProducts  int           `json:"low_stock_products"`
	ActiveRentals     int           `json:"active_rentals"`
	RecentOrders      []Order       `json:"recent_orders"`
	SalesTrend        []DailySales  `json:"sales_trend"`
	RentalStatuses    []StatusCount `json:"rental_statuses"`
}

func apiUUID(id kernel.UUID) openapi_types.UUID {
	return id.Bytes()
}

func apiOptionalUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	u := apiUUID(*id)
	return &u
}

func apiOptionalMoney(m *kernel.Money) *string {
	if m == nil {
		return nil
	}
	s := m.String()
	return &s
}

func apiDate(t time.Time) openapi_types.Date {
	return openapi_types.Date{Time: t}
}

func toProductPage(resp queries.GetProductsQueryResponse) ProductPage {
	page := ProductPage{Products: make([]ProductSummary, 0, len(resp.Products)), Page: resp.Page, HasNext: resp.HasNext}
	for _, p := range resp.Products {
		page.Products = append(page.Products, ProductSummary{
			ID:           apiUUID(p.ID),
			Name:         p.Name,
			Category:     p.Category,
			SubCategory:  p.SubCategory,
			Rentable:     p.Rentable,
			MinSalePrice: apiOptionalMoney(p.MinSalePrice),
			MinRentPrice: apiOptionalMoney(p.MinRentPrice),
			InStock:      p.InStock,
			CreatedAt:    p.CreatedAt,
		})
	}
	return page
}

func toProduct(resp queries.GetProductQueryResponse) Product {
	p := Product{
		ID:          apiUUID(resp.ID),
		Name:        resp.Name,
		Description: resp.Description,
		Category:    resp.Category,
		SubCategory: resp.SubCategory,
		Rentable:    resp.Rentable,
		CreatedAt:   resp.CreatedAt,
		Variants:    make([]Variant, 0, len(resp.Variants)),
	}
	for _, v := range resp.Variants {
		p.Variants = append(p.Variants, Variant{
			ID:              apiUUID(v.ID),
			Size:            v.Size,
			Color:           v.Color,
			Stock:           v.Stock,
			SalePrice:       apiOptionalMoney(v.SalePrice),
			RentPricePerDay: apiOptionalMoney(v.RentPricePerDay),
		})
	}
	return p
}

func toCart(resp queries.GetCartQueryResponse) Cart {
	c := Cart{Items: make([]CartItem, 0, len(resp.Items)), Total: resp.Total.String()}
	for _, item := range resp.Items {
		dto := CartItem{
			ID:         apiUUID(item.ID),
			VariantID:  apiUUID(item.VariantID),
			Product:    item.Product,
			Variant:    item.Variant,
			Kind:       item.Kind,
			Days:       item.Days,
			Quantity:   item.Quantity,
			PriceAtAdd: item.PriceAtAdd.String(),
			Cost:       item.Cost.String(),
			InStock:    item.InStock,
		}
		if item.StartDate != nil && item.EndDate != nil {
			start, end := apiDate(*item.StartDate), apiDate(*item.EndDate)
			dto.StartDate, dto.EndDate = &start, &end
		}
		c.Items = append(c.Items, dto)
	}
	return c
}

func toLine(v queries.LineView) Line {
	return Line{
		ID:        apiUUID(v.ID),
		VariantID: apiUUID(v.VariantID),
		Product:   v.Product,
		Variant:   v.Variant,
		Quantity:  v.Quantity,
		Status:    v.Status,
		Total:     v.Total.String(),
	}
}

func toRental(v queries.RentalView) Rental {
	return Rental{
		Line:           toLine(v.LineView),
		StartDate:      apiDate(v.StartDate),
		EndDate:        apiDate(v.EndDate),
		DailyRate:      v.DailyRate.String(),
		ReturnedAt:     v.ReturnedAt,
		PendingLateFee: v.PendingLateFee.String(),
	}
}

func toOrders(views []queries.OrderView) []Order {
	orders := make([]Order, 0, len(views))
	for _, v := range views {
		o := Order{
			ID:             apiUUID(v.ID),
			CustomerID:     apiUUID(v.CustomerID),
			CustomerName:   v.CustomerName,
			CustomerEmail:  v.CustomerEmail,
			CreatedAt:      v.CreatedAt,
			Address:        v.Address,
			TotalPrice:     v.TotalPrice.String(),
			DeliveryID:     apiOptionalUUID(v.DeliveryID),
			DeliveryStatus: v.DeliveryStatus,
			AgentID:        apiOptionalUUID(v.AgentID),
			AgentName:      v.AgentName,
			SaleItems:      make([]Line, 0, len(v.SaleItems)),
			RentBookings:   make([]Rental, 0, len(v.RentBookings)),
		}
		for _, item := range v.SaleItems {
			o.SaleItems = append(o.SaleItems, toLine(item))
		}
		for _, booking := range v.RentBookings {
			o.RentBookings = append(o.RentBookings, toRental(booking))
		}
		orders = append(orders, o)
	}
	return orders
}

func toActiveRentals(views []queries.ActiveRentalView) []ActiveRental {
	rentals := make([]ActiveRental, 0, len(views))
	for _, v := range views {
		rentals = append(rentals, ActiveRental{
			Rental:        toRental(v.RentalView),
			OrderID:       apiUUID(v.OrderID),
			CustomerName:  v.CustomerName,
			CustomerEmail: v.CustomerEmail,
			CustomerPhone: v.CustomerPhone,
		})
	}
	return rentals
}

func toDashboard(resp queries.GetDashboardQueryResponse) Dashboard {
	d := Dashboard{
		TotalRevenue:      resp.TotalRevenue.String(),
		TotalOrders:       resp.TotalOrders,
		TotalProducts:     resp.TotalProducts,
		TotalCustomers:    resp.TotalCustomers,
		PendingDeliveries: resp.PendingDeliveries,
		LowStockProducts:  resp.LowStockProducts,
		ActiveRentals:     resp.ActiveRentals,
		RecentOrders:      toOrders(resp.RecentOrders),
		SalesTrend:        make([]DailySales, 0, len(resp.SalesTrend)),
		RentalStatuses:    make([]StatusCount, 0, len(resp.RentalStatuses)),
	}
	for _, day := range resp.SalesTrend {
		d.SalesTrend = append(d.SalesTrend, DailySales{Date: apiDate(day.Date), Total: day.Total.String()})
	}
	for _, s := range resp.RentalStatuses {
		d.RentalStatuses = append(d.RentalStatuses, StatusCount{Status: s.Status, Count: s.Count})
	}
	return d
}
