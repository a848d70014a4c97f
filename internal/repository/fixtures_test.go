package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/tuffpuff/internal/domain"
	"github.com/nikolayk812/tuffpuff/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

// fixtures inserts the rows an order depends on.
type fixtures struct {
	pool *pgxpool.Pool
}

func (f fixtures) user(t *testing.T) domain.User {
	t.Helper()

	user, err := repository.NewUser(f.pool).InsertUser(t.Context(), randomUser())
	require.NoError(t, err)

	return user
}

func (f fixtures) address(t *testing.T, userID uuid.UUID) domain.Address {
	t.Helper()

	address := randomAddress()
	address.UserID = userID

	inserted, err := repository.NewAddress(f.pool).InsertAddress(t.Context(), address)
	require.NoError(t, err)

	return inserted
}

func (f fixtures) product(t *testing.T, mutate ...func(*domain.Product)) domain.Product {
	t.Helper()

	product := randomProduct()
	for _, fn := range mutate {
		fn(&product)
	}

	inserted, err := repository.NewProduct(f.pool).InsertProduct(t.Context(), product)
	require.NoError(t, err)

	return inserted
}

// order builds a PENDING order for user at address with one line per product.
func (f fixtures) order(user domain.User, address domain.Address, products ...domain.Product) domain.Order {
	pricing := domain.DefaultPricing(currency.USD)

	items := make([]domain.OrderItem, 0, len(products))
	lines := make([]domain.PricedLine, 0, len(products))
	for _, p := range products {
		qty := gofakeit.Number(1, 3)
		items = append(items, domain.OrderItem{ProductID: p.ID, Product: p, Quantity: qty, Price: p.Price})
		lines = append(lines, domain.PricedLine{Price: p.Price, Quantity: qty})
	}

	quote := pricing.Quote(lines)

	return domain.Order{
		UserID:            user.ID,
		AddressID:         address.ID,
		Items:             items,
		TotalAmount:       quote.Subtotal,
		DeliveryFee:       quote.DeliveryFee,
		Discount:          quote.Discount,
		FinalAmount:       quote.Total,
		DeliveryNotes:     gofakeit.Phrase(),
		Status:            domain.OrderStatusPending,
		EstimatedDelivery: domain.DefaultEstimatedDelivery,
	}
}

func randomUser() domain.User {
	return domain.User{
		IdentityUID:   gofakeit.UUID(),
		Email:         gofakeit.Email(),
		Name:          gofakeit.Name(),
		Phone:         gofakeit.Phone(),
		Role:          domain.RoleUser,
		AgeVerified:   true,
		TermsAccepted: true,
	}
}

func randomAddress() domain.Address {
	return domain.Address{
		Label:       gofakeit.RandomString([]string{"Home", "Work", "Gym"}),
		FullAddress: gofakeit.Address().Address,
		Lat:         gofakeit.Latitude(),
		Lng:         gofakeit.Longitude(),
	}
}

func randomProduct() domain.Product {
	return domain.Product{
		Name:        gofakeit.ProductName(),
		Brand:       gofakeit.Company(),
		Category:    domain.ProductCategories[gofakeit.Number(0, len(domain.ProductCategories)-1)],
		Description: gofakeit.ProductDescription(),
		Price: domain.Money{
			Amount:   decimal.NewFromFloat(gofakeit.Price(1, 40)).Round(2),
			Currency: currency.USD,
		},
		Stock:    gofakeit.Number(10, 100),
		Image:    gofakeit.URL(),
		PackSize: gofakeit.RandomString([]string{"10", "20", "500ml"}),
		IsActive: true,
	}
}

var cmpOpts = cmp.Options{
	cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	}),
	cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	}),
	cmpopts.EquateApproxTime(0),
}
