package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/domain"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/pricing"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/repository"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/shipping"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/tax"
	"github.com/ezbillify/mills-mitra-market-bloom-sub000/internal/telemetry"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type checkoutService struct {
	repo     repository.Querier
	pricer   *pricing.Aggregator
	shipping shipping.Provider
}

// NewCheckoutService creates a CheckoutService. The pricing aggregator
// is built over the given calculator so checkout and statutory
// reporting share the same breakdown arithmetic.
func NewCheckoutService(repo repository.Querier, calc tax.Calculator, shippingProvider shipping.Provider) domain.CheckoutService {
	return &checkoutService{
		repo:     repo,
		pricer:   pricing.NewAggregator(calc),
		shipping: shippingProvider,
	}
}

func (s *checkoutService) QuoteProductPrice(ctx context.Context, productID string, quantity int32, shippingAddress string) (*pricing.PriceResult, error) {
	product, err := s.loadProduct(ctx, "checkout.quote_product", productID)
	if err != nil {
		return nil, err
	}

	result := s.pricer.CalculateProductPrice(product.Snapshot(), quantity, shippingAddress)

	if telemetry.Business != nil {
		telemetry.Business.QuotesComputed.WithLabelValues("line").Inc()
	}
	return &result, nil
}

func (s *checkoutService) QuoteOrderTotals(ctx context.Context, items []domain.QuoteItem, shippingAddress string) (*domain.Quote, error) {
	lineItems, _, err := s.resolveItems(ctx, "checkout.quote_order", items)
	if err != nil {
		return nil, err
	}

	quote, err := s.priceCart(ctx, lineItems, shippingAddress)
	if err != nil {
		return nil, err
	}

	if telemetry.Business != nil {
		telemetry.Business.QuotesComputed.WithLabelValues("order").Inc()
	}
	return quote, nil
}

func (s *checkoutService) PlaceOrder(ctx context.Context, params domain.PlaceOrderParams) (*domain.OrderDetail, error) {
	const op = "checkout.place_order"

	if len(params.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	var userID pgtype.UUID
	if err := userID.Scan(params.UserID); err != nil {
		return nil, domain.Invalid(op, "Invalid user ID")
	}

	lineItems, products, err := s.resolveItems(ctx, op, params.Items)
	if err != nil {
		return nil, err
	}

	quote, err := s.priceCart(ctx, lineItems, params.ShippingAddress)
	if err != nil {
		return nil, err
	}

	order, err := s.repo.CreateOrder(ctx, repository.CreateOrderParams{
		OrderNumber:         newOrderNumber(),
		UserID:              userID,
		ShippingAddress:     params.ShippingAddress,
		PaymentMethod:       params.PaymentMethod,
		TotalBaseAmount:     quote.Totals.TotalBaseAmount,
		TotalDiscountAmount: quote.Totals.TotalDiscountAmount,
		TotalTaxableAmount:  quote.Totals.TotalTaxableAmount,
		TotalTaxAmount:      quote.Totals.TotalTaxAmount,
		TotalFinalPrice:     quote.Totals.TotalFinalPrice,
		DeliveryPrice:       quote.Totals.DeliveryPrice,
		GrandTotal:          quote.Totals.GrandTotal,
		Status:              "confirmed",
	})
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to create order")
	}

	detail := &domain.OrderDetail{
		Order: orderFromRow(order),
		Items: make([]domain.OrderItem, 0, len(params.Items)),
	}

	// Product attributes are frozen on the item row so later catalog
	// edits cannot change what this order reports.
	for i, p := range products {
		var productID pgtype.UUID
		if err := productID.Scan(p.ID); err != nil {
			return nil, domain.Internal(err, op, "Invalid product ID on stored product")
		}

		unitPrice := p.Price
		if p.DiscountedPrice != nil {
			unitPrice = *p.DiscountedPrice
		}

		item, err := s.repo.CreateOrderItem(ctx, repository.CreateOrderItemParams{
			OrderID:       order.ID,
			ProductID:     productID,
			ProductName:   p.Name,
			HsnCode:       p.HSNCode,
			GstPercentage: p.GSTPercentage,
			Price:         unitPrice,
			Quantity:      params.Items[i].Quantity,
		})
		if err != nil {
			return nil, domain.Internal(err, op, "Failed to create order item")
		}
		detail.Items = append(detail.Items, orderItemFromRow(item))
	}

	if telemetry.Business != nil {
		telemetry.Business.OrdersPlaced.Inc()
		telemetry.Business.OrderValue.Observe(quote.Totals.GrandTotal)
		telemetry.Business.OrderItemCount.Observe(float64(len(detail.Items)))
	}
	return detail, nil
}

func (s *checkoutService) GetOrder(ctx context.Context, orderID string) (*domain.OrderDetail, error) {
	const op = "checkout.get_order"

	var id pgtype.UUID
	if err := id.Scan(orderID); err != nil {
		return nil, domain.Invalid(op, "Invalid order ID")
	}

	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, domain.Internal(err, op, "Failed to load order")
	}

	items, err := s.repo.GetOrderItems(ctx, id)
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to load order items")
	}

	detail := &domain.OrderDetail{
		Order: orderFromRow(order),
		Items: make([]domain.OrderItem, len(items)),
	}
	for i, it := range items {
		detail.Items[i] = orderItemFromRow(it)
	}
	return detail, nil
}

// loadProduct fetches a product and rejects inactive ones. Quoting and
// ordering both go through here so a deactivated product disappears
// from both paths at once.
func (s *checkoutService) loadProduct(ctx context.Context, op, productID string) (*domain.Product, error) {
	var id pgtype.UUID
	if err := id.Scan(productID); err != nil {
		return nil, domain.Invalid(op, "Invalid product ID")
	}

	row, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, domain.Internal(err, op, "Failed to load product")
	}
	if !row.IsActive {
		return nil, domain.ErrProductInactive
	}

	p := productFromRow(row)
	return &p, nil
}

func (s *checkoutService) resolveItems(ctx context.Context, op string, items []domain.QuoteItem) ([]pricing.LineItem, []*domain.Product, error) {
	lineItems := make([]pricing.LineItem, 0, len(items))
	products := make([]*domain.Product, 0, len(items))

	for _, item := range items {
		p, err := s.loadProduct(ctx, op, item.ProductID)
		if err != nil {
			return nil, nil, err
		}
		lineItems = append(lineItems, pricing.LineItem{
			Product:  p.Snapshot(),
			Quantity: item.Quantity,
		})
		products = append(products, p)
	}
	return lineItems, products, nil
}

// priceCart resolves delivery from the pre-delivery cart value, then
// runs the order aggregation.
func (s *checkoutService) priceCart(ctx context.Context, items []pricing.LineItem, shippingAddress string) (*domain.Quote, error) {
	preDelivery := s.pricer.CalculateOrderTotals(items, shippingAddress, 0)

	rate, err := s.shipping.GetRate(ctx, shipping.RateParams{
		ShippingAddress: shippingAddress,
		OrderValue:      preDelivery.TotalFinalPrice,
	})
	if err != nil {
		return nil, domain.Internal(err, "checkout.delivery_rate", "Failed to resolve delivery rate")
	}

	lines := make([]pricing.PriceResult, len(items))
	for i, item := range items {
		lines[i] = s.pricer.CalculateProductPrice(item.Product, item.Quantity, shippingAddress)
	}

	return &domain.Quote{
		Lines:         lines,
		Totals:        s.pricer.CalculateOrderTotals(items, shippingAddress, rate.Price),
		DeliveryLabel: rate.ServiceName,
	}, nil
}

func newOrderNumber() string {
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), uuid.NewString()[:8])
}

func orderFromRow(row repository.Order) domain.Order {
	return domain.Order{
		ID:              row.ID.String(),
		OrderNumber:     row.OrderNumber,
		UserID:          row.UserID.String(),
		ShippingAddress: row.ShippingAddress,
		PaymentMethod:   row.PaymentMethod,
		Totals: pricing.OrderTotals{
			TotalBaseAmount:     row.TotalBaseAmount,
			TotalDiscountAmount: row.TotalDiscountAmount,
			TotalTaxableAmount:  row.TotalTaxableAmount,
			TotalTaxAmount:      row.TotalTaxAmount,
			TotalFinalPrice:     row.TotalFinalPrice,
			DeliveryPrice:       row.DeliveryPrice,
			GrandTotal:          row.GrandTotal,
		},
		Status:    row.Status,
		CreatedAt: row.CreatedAt.Time,
	}
}

func orderItemFromRow(row repository.OrderItem) domain.OrderItem {
	return domain.OrderItem{
		ID:            row.ID.String(),
		OrderID:       row.OrderID.String(),
		ProductID:     row.ProductID.String(),
		ProductName:   row.ProductName,
		HSNCode:       row.HsnCode,
		GSTPercentage: row.GstPercentage,
		Price:         row.Price,
		Quantity:      row.Quantity,
	}
}
