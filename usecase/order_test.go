package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	domainIngredient "github.com/alien2112/menu-rwad-sub005/domains/ingredient"
	domainItem "github.com/alien2112/menu-rwad-sub005/domains/item"
	domainOrder "github.com/alien2112/menu-rwad-sub005/domains/order"
	domainSettings "github.com/alien2112/menu-rwad-sub005/domains/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeItemRepo struct {
	items map[string]domainItem.Item
}

func (f *fakeItemRepo) Create(_ context.Context, i *domainItem.Item) error {
	f.items[i.ID] = *i
	return nil
}

func (f *fakeItemRepo) GetByID(_ context.Context, id string) (*domainItem.Item, error) {
	i, ok := f.items[id]
	if !ok {
		return nil, domainItem.ErrNotFound
	}
	return &i, nil
}

func (f *fakeItemRepo) List(_ context.Context) ([]domainItem.Item, error) { return nil, nil }

func (f *fakeItemRepo) ListByCategory(_ context.Context, _ string) ([]domainItem.Item, error) {
	return nil, nil
}

func (f *fakeItemRepo) Update(_ context.Context, i *domainItem.Item) error {
	f.items[i.ID] = *i
	return nil
}

func (f *fakeItemRepo) Delete(_ context.Context, id string) error { delete(f.items, id); return nil }

type fakeIngredientRepo struct {
	stock map[string]int
}

func (f *fakeIngredientRepo) Create(_ context.Context, _ *domainIngredient.Ingredient) error {
	return nil
}

func (f *fakeIngredientRepo) GetByID(_ context.Context, id string) (*domainIngredient.Ingredient, error) {
	s, ok := f.stock[id]
	if !ok {
		return nil, domainIngredient.ErrNotFound
	}
	return &domainIngredient.Ingredient{ID: id, Stock: s}, nil
}

func (f *fakeIngredientRepo) List(_ context.Context) ([]domainIngredient.Ingredient, error) {
	return nil, nil
}

func (f *fakeIngredientRepo) Update(_ context.Context, _ *domainIngredient.Ingredient) error {
	return nil
}

func (f *fakeIngredientRepo) AdjustStock(_ context.Context, id string, delta int) error {
	s, ok := f.stock[id]
	if !ok {
		return domainIngredient.ErrNotFound
	}
	if s+delta < 0 {
		return domainIngredient.ErrInvalidStock
	}
	f.stock[id] = s + delta
	return nil
}

func (f *fakeIngredientRepo) Delete(_ context.Context, id string) error {
	delete(f.stock, id)
	return nil
}

type fakeOrderRepo struct {
	orders    map[string]domainOrder.Order
	createErr error
}

func (f *fakeOrderRepo) Create(_ context.Context, o *domainOrder.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	if o.ID == "" {
		o.ID = "order-1"
	}
	f.orders[o.ID] = *o
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*domainOrder.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, domainOrder.ErrNotFound
	}
	return &o, nil
}

func (f *fakeOrderRepo) List(_ context.Context) ([]domainOrder.Order, error) { return nil, nil }

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id string, status domainOrder.Status) error {
	o, ok := f.orders[id]
	if !ok {
		return domainOrder.ErrNotFound
	}
	o.Status = status
	f.orders[id] = o
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id string) error { delete(f.orders, id); return nil }

type fakeSettings struct {
	tax    domainSettings.TaxSettings
	number string
}

func (f *fakeSettings) GetPublic(_ context.Context) (domainSettings.Public, error) {
	return domainSettings.Public{}, nil
}

func (f *fakeSettings) GetTax(_ context.Context) (domainSettings.TaxSettings, error) {
	return f.tax, nil
}

func (f *fakeSettings) SaveTax(_ context.Context, tax domainSettings.TaxSettings) error {
	f.tax = tax
	return nil
}

func (f *fakeSettings) GetTheme(_ context.Context) (domainSettings.ThemeSettings, error) {
	return domainSettings.ThemeSettings{}, nil
}

func (f *fakeSettings) SaveTheme(_ context.Context, _ domainSettings.ThemeSettings) error {
	return nil
}

func (f *fakeSettings) GetWhatsappNumber(_ context.Context) (string, error) { return f.number, nil }

func (f *fakeSettings) SaveWhatsappNumber(_ context.Context, number string) error {
	f.number = number
	return nil
}

func newOrderFixture() (*fakeOrderRepo, *fakeItemRepo, *fakeIngredientRepo, domainOrder.IOrderUsecase) {
	orders := &fakeOrderRepo{orders: map[string]domainOrder.Order{}}
	items := &fakeItemRepo{items: map[string]domainItem.Item{
		"latte":  {ID: "latte", Name: "Latte", Price: 18, IngredientIDs: []string{"milk", "beans"}},
		"mocha":  {ID: "mocha", Name: "Mocha", Price: 22},
		"hidden": {ID: "hidden", Name: "Off menu", Price: 10},
	}}
	ingredients := &fakeIngredientRepo{stock: map[string]int{"milk": 10, "beans": 10}}
	settings := &fakeSettings{
		tax:    domainSettings.TaxSettings{Rate: 15, Currency: "SAR", DisplayName: "VAT"},
		number: "+966 50 123 4567",
	}

	return orders, items, ingredients, NewOrderService(orders, items, ingredients, settings)
}

func TestSubmitOrderPricesFromDatabase(t *testing.T) {
	_, _, _, svc := newOrderFixture()

	resp, err := svc.Submit(context.Background(), domainOrder.SubmitRequest{
		CustomerName: "Sara",
		Lines: []domainOrder.SubmitLine{
			{ItemID: "latte", Quantity: 2},
			{ItemID: "mocha", Quantity: 1},
		},
	})
	require.NoError(t, err)

	// 2*18 + 22 = 58, 15% tax on top
	assert.Equal(t, 58.0, resp.Order.Subtotal)
	assert.Equal(t, 8.7, resp.Order.TaxAmount)
	assert.Equal(t, 66.7, resp.Order.Total)
	assert.Equal(t, domainOrder.StatusPending, resp.Order.Status)
	require.Len(t, resp.Order.Lines, 2)
	assert.Equal(t, 18.0, resp.Order.Lines[0].Price, "line price must come from the database")
}

func TestSubmitOrderBuildsHandoffLink(t *testing.T) {
	_, _, _, svc := newOrderFixture()

	resp, err := svc.Submit(context.Background(), domainOrder.SubmitRequest{
		CustomerName: "Sara",
		Lines:        []domainOrder.SubmitLine{{ItemID: "latte", Quantity: 1}},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.WhatsappURL, "https://wa.me/966501234567?text="), resp.WhatsappURL)
	assert.Contains(t, resp.WhatsappURL, "Latte")
}

func TestSubmitOrderDecrementsIngredientStock(t *testing.T) {
	_, _, ingredients, svc := newOrderFixture()

	_, err := svc.Submit(context.Background(), domainOrder.SubmitRequest{
		CustomerName: "Sara",
		Lines:        []domainOrder.SubmitLine{{ItemID: "latte", Quantity: 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, 7, ingredients.stock["milk"])
	assert.Equal(t, 7, ingredients.stock["beans"])
}

func TestSubmitOrderUnknownItem(t *testing.T) {
	_, _, _, svc := newOrderFixture()

	_, err := svc.Submit(context.Background(), domainOrder.SubmitRequest{
		CustomerName: "Sara",
		Lines:        []domainOrder.SubmitLine{{ItemID: "ghost", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domainOrder.ErrUnknownItem)
}

func TestSubmitOrderFailedLineLeavesStockUntouched(t *testing.T) {
	_, _, ingredients, svc := newOrderFixture()

	_, err := svc.Submit(context.Background(), domainOrder.SubmitRequest{
		CustomerName: "Sara",
		Lines: []domainOrder.SubmitLine{
			{ItemID: "latte", Quantity: 3},
			{ItemID: "ghost", Quantity: 1},
		},
	})
	require.ErrorIs(t, err, domainOrder.ErrUnknownItem)

	assert.Equal(t, 10, ingredients.stock["milk"], "a rejected order must not consume stock")
	assert.Equal(t, 10, ingredients.stock["beans"])
}

func TestSubmitOrderFailedInsertLeavesStockUntouched(t *testing.T) {
	orders, _, ingredients, svc := newOrderFixture()
	orders.createErr = errors.New("disk full")

	_, err := svc.Submit(context.Background(), domainOrder.SubmitRequest{
		CustomerName: "Sara",
		Lines:        []domainOrder.SubmitLine{{ItemID: "latte", Quantity: 3}},
	})
	require.Error(t, err)

	assert.Equal(t, 10, ingredients.stock["milk"])
	assert.Equal(t, 10, ingredients.stock["beans"])
}

func TestSubmitOrderRejectsEmpty(t *testing.T) {
	_, _, _, svc := newOrderFixture()

	_, err := svc.Submit(context.Background(), domainOrder.SubmitRequest{CustomerName: "Sara"})
	assert.Error(t, err)
}

func TestUpdateOrderStatus(t *testing.T) {
	orders, _, _, svc := newOrderFixture()
	orders.orders["order-9"] = domainOrder.Order{ID: "order-9", Status: domainOrder.StatusPending}

	o, err := svc.UpdateStatus(context.Background(), "order-9", domainOrder.StatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, domainOrder.StatusPreparing, o.Status)

	_, err = svc.UpdateStatus(context.Background(), "order-9", domainOrder.Status("bogus"))
	assert.ErrorIs(t, err, domainOrder.ErrInvalidStatus)
}
