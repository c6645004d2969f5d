package logs

import "context"

type Span string

type spanKeyType struct{}

var SpanKey spanKeyType

type genKeyType struct{}

var GenKey genKeyType

// WithGenerator tags the context with the name of the generator being
// driven; the handler adds it to every record logged under the context.
func WithGenerator(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, GenKey, name)
}
