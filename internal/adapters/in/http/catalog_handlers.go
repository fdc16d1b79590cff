package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetProducts handles GET /api/v1/products.
func (s *Server) GetProducts(c echo.Context) error {
	search, err := queryString(c, "search")
	if err != nil {
		return err
	}
	category, err := queryString(c, "category")
	if err != nil {
		return err
	}
	productType, err := queryString(c, "type")
	if err != nil {
		return err
	}
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return err
	}

	query, err := queries.NewGetProductsQuery(search, category, queries.ProductType(productType), page)
	if err != nil {
		return err
	}
	resp, err := s.h.GetProducts.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductPage(resp))
}

// GetProduct handles GET /api/v1/products/{productId}.
func (s *Server) GetProduct(c echo.Context) error {
	productID, err := pathUUID(c, "productId")
	if err != nil {
		return err
	}
	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return err
	}
	resp, err := s.h.GetProduct.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProduct(resp))
}

// CreateProduct handles POST /api/v1/admin/products.
func (s *Server) CreateProduct(c echo.Context) error {
	var req NewProductRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	category, err := catalog.ParseCategory(req.Category)
	if err != nil {
		return err
	}
	variants := make([]commands.VariantSpec, 0, len(req.Variants))
	for _, v := range req.Variants {
		spec, specErr := toVariantSpec(v)
		if specErr != nil {
			return specErr
		}
		variants = append(variants, spec)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(productID, req.Name, req.Description, category,
		req.SubCategory, req.Rentable, variants)
	if err != nil {
		return err
	}
	if err := s.h.CreateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{SuccessResponse: success("Product created"), ID: apiUUID(productID)})
}

// AddVariant handles POST /api/v1/admin/products/{productId}/variants.
func (s *Server) AddVariant(c echo.Context) error {
	productID, err := pathUUID(c, "productId")
	if err != nil {
		return err
	}
	var req NewVariant
	if err := bindBody(c, &req); err != nil {
		return err
	}
	spec, err := toVariantSpec(req)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddVariantCommand(productID, spec)
	if err != nil {
		return err
	}
	if err := s.h.AddVariant.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, CreatedResponse{SuccessResponse: success("Variant added"), ID: apiUUID(spec.ID)})
}

// DeleteProduct handles DELETE /api/v1/admin/products/{productId}.
func (s *Server) DeleteProduct(c echo.Context) error {
	productID, err := pathUUID(c, "productId")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return err
	}
	if err := s.h.DeleteProduct.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Product deleted"))
}

// DeleteVariant handles DELETE /api/v1/admin/variants/{variantId}.
func (s *Server) DeleteVariant(c echo.Context) error {
	variantID, err := pathUUID(c, "variantId")
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteVariantCommand(variantID)
	if err != nil {
		return err
	}
	if err := s.h.DeleteVariant.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Variant deleted"))
}

// UpdateVariantStock handles PUT /api/v1/admin/variants/{variantId}/stock.
func (s *Server) UpdateVariantStock(c echo.Context) error {
	variantID, err := pathUUID(c, "variantId")
	if err != nil {
		return err
	}
	var req VariantStockRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	salePrice, err := optionalMoney("sale price", req.SalePrice)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateVariantStockCommand(variantID, req.Stock, salePrice)
	if err != nil {
		return err
	}
	if err := s.h.UpdateVariantStock.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success("Stock updated"))
}

func toVariantSpec(v NewVariant) (commands.VariantSpec, error) {
	salePrice, err := optionalMoney("sale price", v.SalePrice)
	if err != nil {
		return commands.VariantSpec{}, err
	}
	rentPrice, err := optionalMoney("rent price per day", v.RentPricePerDay)
	if err != nil {
		return commands.VariantSpec{}, err
	}
	return commands.VariantSpec{
		ID:              kernel.NewUUID(),
		Size:            v.Size,
		Color:           v.Color,
		Stock:           v.Stock,
		SalePrice:       salePrice,
		RentPricePerDay: rentPrice,
	}, nil
}
