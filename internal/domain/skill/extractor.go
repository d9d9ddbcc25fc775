package skill

import "context"

// Extractor derives a skill set from unstructured text. Implementations must be
// pure: the same text always yields the same set.
type Extractor interface {
	Extract(ctx context.Context, text string) (Set, error)
}

// ExtractorFunc adapts a plain function to the Extractor interface.
type ExtractorFunc func(ctx context.Context, text string) (Set, error)

func (f ExtractorFunc) Extract(ctx context.Context, text string) (Set, error) {
	return f(ctx, text)
}
