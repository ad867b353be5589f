package service

import (
	"context"
	"go-facade/dto"
	"go-facade/util/logger"
	"math/rand/v2"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const (
	Greeting           = "Hello from the Facade!"
	OrderStatusPending = "Pending"

	// ช่วงของ order id คือ [MinOrderID, MaxOrderID)
	MinOrderID = 1000
	MaxOrderID = 9999
)

type Facade interface {
	TestOperation(ctx context.Context) (string, error)
	CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error)
}

type OrderIDGenerator func() int

type Option func(*facade)

// ใช้แทนตัวสุ่ม order id เช่นใน test
func WithOrderIDGenerator(gen OrderIDGenerator) Option {
	return func(f *facade) {
		if gen != nil {
			f.nextOrderID = gen
		}
	}
}

// ถ้าไม่ระบุจะใช้ global MeterProvider ของ otel
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(f *facade) {
		if mp != nil {
			f.meterProvider = mp
		}
	}
}

type facade struct {
	nextOrderID   OrderIDGenerator
	meterProvider metric.MeterProvider
	ordersCreated metric.Int64Counter
}

func NewFacade(opts ...Option) Facade {
	f := &facade{
		nextOrderID:   randomOrderID,
		meterProvider: otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(f)
	}

	// error เกิดได้เฉพาะชื่อ instrument ไม่ถูกต้อง และยังได้ instrument ที่ใช้งานได้กลับมา
	f.ordersCreated, _ = f.meterProvider.Meter("go-facade/service").Int64Counter(
		"facade.orders.created",
		metric.WithDescription("Number of orders created by the facade."),
	)
	return f
}

func (f *facade) TestOperation(ctx context.Context) (string, error) {
	return Greeting, nil
}

func (f *facade) CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	resp := dto.NewCreateOrderResponse(f.nextOrderID(), req, OrderStatusPending)

	f.ordersCreated.Add(ctx, 1, metric.WithAttributes(attribute.String("status", resp.Status)))

	logger.FromContext(ctx).Info("order created",
		zap.Int("order_id", resp.OrderID),
		zap.String("product_name", resp.ProductName),
		zap.Int32("quantity", resp.Quantity),
	)

	return resp, nil
}

// top-level function ของ math/rand/v2 ปลอดภัยต่อการเรียกพร้อมกันหลาย goroutine
func randomOrderID() int {
	return MinOrderID + rand.IntN(MaxOrderID-MinOrderID)
}
