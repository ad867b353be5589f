package middleware

import (
	"fmt"
	"go-facade/util/logger"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const HeaderRequestID = "X-Request-ID"

// path ที่ไม่สร้าง span และไม่นับ metric
var untracedPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// Observability แนบ request id และ logger ของ request ไปกับ context
// สร้าง span และนับ metric ต่อ route แล้วเขียน access log หนึ่งบรรทัดต่อ request
func Observability(mp metric.MeterProvider) fiber.Handler {
	tracer := otel.GetTracerProvider().Tracer("go-facade/http")
	meter := mp.Meter("go-facade/http")

	requests, _ := meter.Int64Counter("http.server.requests",
		metric.WithDescription("Number of handled HTTP requests."))
	duration, _ := meter.Float64Histogram("http.server.duration",
		metric.WithDescription("Duration of handled HTTP requests."),
		metric.WithUnit("s"))

	return func(c fiber.Ctx) error {
		start := time.Now()
		method := c.Method()
		path := c.Path()

		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(HeaderRequestID, requestID)

		traced := !untracedPaths[path]
		ctx := c.Context()
		span := trace.SpanFromContext(ctx)
		if traced {
			ctx, span = tracer.Start(ctx, method+" "+path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attribute.String("http.request_id", requestID)),
			)
			defer span.End()
		}

		reqLogger := logger.FromContext(ctx).With(
			zap.String("request_id", requestID),
			zap.String("http.request.method", method),
			zap.String("url.path", path),
		)
		c.SetContext(logger.NewContext(ctx, reqLogger))

		err := c.Next()

		elapsed := time.Since(start)
		status := c.Response().StatusCode()
		// route pattern ไม่ใช่ path จริง เพื่อไม่ให้ label บวม
		route := c.Route().Path

		if traced {
			attrs := metric.WithAttributes(
				attribute.String("http.request.method", method),
				attribute.String("http.route", route),
				attribute.Int("http.response.status_code", status),
			)
			requests.Add(ctx, 1, attrs)
			duration.Record(ctx, elapsed.Seconds(), attrs)

			span.SetName(method + " " + route)
			span.SetAttributes(
				attribute.String("http.route", route),
				attribute.Int("http.response.status_code", status),
			)
			if status >= fiber.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}
		}

		if err != nil {
			reqLogger.Error("unhandled error", zap.Error(err))
		}

		reqLogger.Info(fmt.Sprintf("%d - %s %s", status, method, path),
			zap.Int("http.response.status_code", status),
			zap.Duration("duration", elapsed),
			zap.String("trace_id", span.SpanContext().TraceID().String()),
		)

		return err
	}
}
