package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/tuffpuff/internal/domain"
	"github.com/shopspring/decimal"
)

type productListQuery struct {
	pageQuery
	Category  string `form:"category"`
	Brand     string `form:"brand"`
	MinPrice  string `form:"minPrice"`
	MaxPrice  string `form:"maxPrice"`
	Search    string `form:"search"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

func (q productListQuery) filter(defaultLimit int, onlyActive bool) (domain.ProductFilter, error) {
	filter := domain.ProductFilter{
		Brand:      q.Brand,
		Search:     q.Search,
		SortBy:     domain.ProductSortField(q.SortBy),
		SortDesc:   q.SortOrder != "asc",
		OnlyActive: onlyActive,
		Pagination: q.pagination(defaultLimit),
	}
	if filter.SortBy == "" {
		filter.SortBy = domain.SortByCreatedAt
	}

	if q.Category != "" {
		category, err := domain.ToProductCategory(q.Category)
		if err != nil {
			return filter, domain.InvalidRequest("Invalid category")
		}
		filter.Category = &category
	}

	for _, bound := range []struct {
		raw  string
		dest **decimal.Decimal
	}{
		{raw: q.MinPrice, dest: &filter.MinPrice},
		{raw: q.MaxPrice, dest: &filter.MaxPrice},
	} {
		if bound.raw == "" {
			continue
		}
		value, err := decimal.NewFromString(bound.raw)
		if err != nil {
			return filter, domain.InvalidRequest("Invalid price filter")
		}
		*bound.dest = &value
	}

	if err := filter.Validate(); err != nil {
		return filter, domain.InvalidRequest("%s", err.Error())
	}

	return filter, nil
}

func (s *Server) searchProducts(c *gin.Context, defaultLimit int, onlyActive bool) {
	var q productListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		s.fail(c, domain.InvalidRequest("Invalid query"))
		return
	}

	filter, err := q.filter(defaultLimit, onlyActive)
	if err != nil {
		s.fail(c, err)
		return
	}

	page, err := s.products.SearchProducts(c.Request.Context(), filter)
	if err != nil {
		s.fail(c, err)
		return
	}

	respondPage(c, page, toProductDTO)
}

func (s *Server) listProducts(c *gin.Context) {
	s.searchProducts(c, defaultProductLimit, true)
}

func (s *Server) listBrands(c *gin.Context) {
	brands, err := s.products.ListBrands(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}

	respond(c, http.StatusOK, brands)
}

func (s *Server) listCategories(c *gin.Context) {
	respond(c, http.StatusOK, domain.ProductCategories)
}

// activeProduct hides deactivated products from the public catalog.
func (s *Server) activeProduct(c *gin.Context) (domain.Product, bool) {
	productID, err := pathID(c, "id", "Product")
	if err != nil {
		s.fail(c, err)
		return domain.Product{}, false
	}

	product, err := s.products.GetProduct(c.Request.Context(), productID)
	if err == nil && !product.IsActive {
		err = domain.NotFound("Product")
	}
	if err != nil {
		s.fail(c, err)
		return domain.Product{}, false
	}

	return product, true
}

func (s *Server) getProduct(c *gin.Context) {
	product, ok := s.activeProduct(c)
	if !ok {
		return
	}

	respond(c, http.StatusOK, toProductDTO(product))
}

func (s *Server) listSimilarProducts(c *gin.Context) {
	product, ok := s.activeProduct(c)
	if !ok {
		return
	}

	similar, err := s.products.ListSimilarProducts(c.Request.Context(), product, similarProductsLimit)
	if err != nil {
		s.fail(c, err)
		return
	}

	dtos := make([]productDTO, 0, len(similar))
	for _, p := range similar {
		dtos = append(dtos, toProductDTO(p))
	}

	respond(c, http.StatusOK, dtos)
}
