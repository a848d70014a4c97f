package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/tuffpuff/internal/auth"
	"github.com/nikolayk812/tuffpuff/internal/domain"
)

const (
	defaultOrderLimit        = 20
	defaultProductLimit      = 12
	defaultAdminProductLimit = 50
	defaultUserLimit         = 20
	similarProductsLimit     = 4
	dashboardRecentOrders    = 10
)

type pageQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

func (q pageQuery) pagination(defaultLimit int) domain.Pagination {
	p := domain.Pagination{Page: q.Page, Limit: q.Limit}
	if p.Page == 0 {
		p.Page = 1
	}
	if p.Limit == 0 {
		p.Limit = defaultLimit
	}
	return p
}

func bindPage(c *gin.Context, defaultLimit int) (domain.Pagination, error) {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return domain.Pagination{}, domain.InvalidRequest("Invalid pagination")
	}

	p := q.pagination(defaultLimit)
	if err := p.Validate(); err != nil {
		return domain.Pagination{}, domain.InvalidRequest("%s", err.Error())
	}
	return p, nil
}

// pathID parses a uuid path parameter. A malformed id cannot name any row,
// so it is reported as not found.
func pathID(c *gin.Context, name, entity string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domain.NotFound(entity)
	}
	return id, nil
}

// mustUser returns the user attached by RequireAuth.
func mustUser(c *gin.Context) domain.User {
	user, ok := auth.CurrentUser(c)
	if !ok {
		panic("httpapi: route is missing RequireAuth")
	}
	return user
}
