package otel

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Scope wraps one span. Call End exactly once, usually deferred.
type Scope interface {
	End()
	TraceError(err error)
	TraceIfError(err error)
	AddEvent(name string)
	SetAttribute(key string, value any)
	SetAttributes(attributes map[string]any)
}

type span struct {
	oteltrace.Span
}

func NewScope(s oteltrace.Span) Scope {
	return &span{Span: s}
}

func (s *span) End() {
	s.Span.End()
}

func (s *span) TraceError(err error) {
	s.RecordError(err)
	s.SetStatus(codes.Error, err.Error())
}

func (s *span) TraceIfError(err error) {
	if err == nil {
		return
	}

	s.TraceError(err)
}

func (s *span) AddEvent(name string) {
	s.Span.AddEvent(name)
}

func (s *span) SetAttribute(key string, value any) {
	s.Span.SetAttributes(attributeOf(key, value))
}

func (s *span) SetAttributes(attributes map[string]any) {
	kvs := make([]attribute.KeyValue, 0, len(attributes))
	for key, value := range attributes {
		kvs = append(kvs, attributeOf(key, value))
	}

	s.Span.SetAttributes(kvs...)
}

func attributeOf(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case bool:
		return attribute.Bool(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case []string:
		return attribute.StringSlice(key, v)
	case fmt.Stringer:
		return attribute.String(key, v.String())
	default:
		return attribute.String(key, fmt.Sprintf("%v", v))
	}
}
