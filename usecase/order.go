package usecase

import (
	"context"
	"errors"
	"math"

	domainIngredient "github.com/alien2112/menu-rwad-sub005/domains/ingredient"
	domainItem "github.com/alien2112/menu-rwad-sub005/domains/item"
	domainOrder "github.com/alien2112/menu-rwad-sub005/domains/order"
	domainSettings "github.com/alien2112/menu-rwad-sub005/domains/settings"
	"github.com/alien2112/menu-rwad-sub005/pkg/whatsapp"
	"github.com/alien2112/menu-rwad-sub005/validations"
	"github.com/sirupsen/logrus"
)

type orderService struct {
	repo        domainOrder.IOrderRepository
	items       domainItem.IItemRepository
	ingredients domainIngredient.IIngredientRepository
	settings    domainSettings.ISettingsUsecase
}

func NewOrderService(
	repo domainOrder.IOrderRepository,
	items domainItem.IItemRepository,
	ingredients domainIngredient.IIngredientRepository,
	settings domainSettings.ISettingsUsecase,
) domainOrder.IOrderUsecase {
	return &orderService{repo: repo, items: items, ingredients: ingredients, settings: settings}
}

// Submit prices every line from the database (client-sent prices are never
// trusted), applies the configured tax, stores the order and returns the
// wa.me handoff link.
func (s *orderService) Submit(ctx context.Context, req domainOrder.SubmitRequest) (*domainOrder.SubmitResponse, error) {
	if err := validations.ValidateSubmitOrder(ctx, req); err != nil {
		return nil, err
	}
	if len(req.Lines) == 0 {
		return nil, domainOrder.ErrEmptyOrder
	}

	lines := make([]domainOrder.Line, 0, len(req.Lines))
	draws := make([]stockDraw, 0, len(req.Lines))
	subtotal := 0.0
	for _, l := range req.Lines {
		item, err := s.items.GetByID(ctx, l.ItemID)
		if err != nil {
			if errors.Is(err, domainItem.ErrNotFound) {
				return nil, domainOrder.ErrUnknownItem
			}
			return nil, err
		}

		lines = append(lines, domainOrder.Line{
			ItemID:   item.ID,
			Name:     item.Name,
			Quantity: l.Quantity,
			Price:    item.Price,
			Notes:    l.Notes,
		})
		subtotal += item.Price * float64(l.Quantity)

		draws = append(draws, stockDraw{item: item, quantity: l.Quantity})
	}

	tax, err := s.settings.GetTax(ctx)
	if err != nil {
		return nil, err
	}

	subtotal = round2(subtotal)
	taxAmount := 0.0
	total := subtotal
	if !tax.Included && tax.Rate > 0 {
		taxAmount = round2(subtotal * tax.Rate / 100)
		total = round2(subtotal + taxAmount)
	}

	o := &domainOrder.Order{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		TableNumber:   req.TableNumber,
		Lines:         lines,
		Subtotal:      subtotal,
		TaxAmount:     taxAmount,
		Total:         total,
		Status:        domainOrder.StatusPending,
		Notes:         req.Notes,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	// only a stored order consumes inventory; a rejected one must leave
	// stock untouched
	for _, d := range draws {
		s.consumeStock(ctx, d.item, d.quantity)
	}

	number, err := s.settings.GetWhatsappNumber(ctx)
	if err != nil {
		return nil, err
	}

	waLines := make([]whatsapp.OrderLine, 0, len(lines))
	for _, l := range lines {
		waLines = append(waLines, whatsapp.OrderLine{Name: l.Name, Quantity: l.Quantity, Price: l.Price})
	}

	logrus.WithFields(logrus.Fields{
		"order_id": o.ID,
		"lines":    len(lines),
		"total":    total,
	}).Info("[ORDER] submitted")

	return &domainOrder.SubmitResponse{
		Order:       *o,
		WhatsappURL: whatsapp.HandoffLink(number, o.ID, o.CustomerName, tax.Currency, waLines, total),
	}, nil
}

// stockDraw is an inventory decrement deferred until the order is stored.
type stockDraw struct {
	item     *domainItem.Item
	quantity int
}

// consumeStock decrements each linked ingredient, best effort. Inventory
// tracking must never block an order; a failed decrement is logged and the
// kitchen reconciles manually.
func (s *orderService) consumeStock(ctx context.Context, item *domainItem.Item, quantity int) {
	for _, ingredientID := range item.IngredientIDs {
		if err := s.ingredients.AdjustStock(ctx, ingredientID, -quantity); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"item":       item.ID,
				"ingredient": ingredientID,
			}).Warn("[INVENTORY] stock decrement failed")
		}
	}
}

func (s *orderService) Get(ctx context.Context, id string) (*domainOrder.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *orderService) List(ctx context.Context) ([]domainOrder.Order, error) {
	return s.repo.List(ctx)
}

func (s *orderService) UpdateStatus(ctx context.Context, id string, status domainOrder.Status) (*domainOrder.Order, error) {
	if !status.Valid() {
		return nil, domainOrder.ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *orderService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
