package messages

import (
	"context"
	"embed"
	"io/fs"
)

//go:embed translations/*.yaml
var embedded embed.FS

// Default loads the bundled translations (en, de).
func Default(ctx context.Context, opts ...Option) (*Bundle, error) {
	sub, err := fs.Sub(embedded, "translations")
	if err != nil {
		return nil, err
	}
	return Load(ctx, sub, opts...)
}
