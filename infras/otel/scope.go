package otel

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"pms/shared/constant"
	"pms/shared/failure"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	attrFailureCode = "failure.code"
	eventRejected   = "request.rejected"
)

// Scope is one span of work: a handler call, a service operation or a consumed event.
type Scope interface {
	End()
	TraceError(err error)
	TraceIfError(err error)
	AddEvent(name string)
	SetAttribute(key string, value any)
	SetAttributes(attributes map[string]any)
}

type scopeImpl struct {
	span oteltrace.Span
}

func NewScope(span oteltrace.Span) Scope {
	return &scopeImpl{span: span}
}

func (s *scopeImpl) End() {
	s.span.End()
}

// TraceError marks the span failed. Client failures such as a booking
// conflict or an unknown room are expected outcomes and only leave an event.
func (s *scopeImpl) TraceError(err error) {
	var fail *failure.Failure
	if errors.As(err, &fail) && fail.Code < http.StatusInternalServerError {
		s.span.SetAttributes(attribute.Int(attrFailureCode, fail.Code))
		s.span.AddEvent(eventRejected, oteltrace.WithAttributes(attribute.String("message", fail.Message)))

		return
	}

	if fail != nil {
		s.span.SetAttributes(attribute.Int(attrFailureCode, fail.Code))
	}

	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *scopeImpl) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *scopeImpl) AddEvent(name string) {
	s.span.AddEvent(name)
}

func (s *scopeImpl) SetAttribute(key string, value any) {
	s.span.SetAttributes(toAttribute(key, value))
}

func (s *scopeImpl) SetAttributes(attributes map[string]any) {
	values := make([]attribute.KeyValue, 0, len(attributes))
	for key, value := range attributes {
		values = append(values, toAttribute(key, value))
	}

	s.span.SetAttributes(values...)
}

// toAttribute keeps dates in the YYYY-MM-DD form used by stays and the calendar.
func toAttribute(key string, value any) attribute.KeyValue {
	switch val := value.(type) {
	case bool:
		return attribute.Bool(key, val)
	case string:
		return attribute.String(key, val)
	case int:
		return attribute.Int(key, val)
	case int64:
		return attribute.Int64(key, val)
	case float64:
		return attribute.Float64(key, val)
	case []string:
		return attribute.StringSlice(key, val)
	case time.Time:
		return attribute.String(key, val.Format(constant.DayFormat))
	default:
		return attribute.String(key, fmt.Sprintf("%v", val))
	}
}
