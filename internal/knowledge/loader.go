package knowledge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/document/loader/file"
	"github.com/cloudwego/eino/components/document"
	"github.com/cloudwego/eino/components/document/parser"
)

// ErrEmptyContext is returned when a context document holds no readable text.
var ErrEmptyContext = errors.New("context document has no readable text")

// Load builds the knowledge base with the system context read from the document
// at path. Any format the eino ext parser understands is accepted; unknown
// extensions are read as plain text. An empty path yields Default().
func Load(ctx context.Context, path string) (*Base, error) {
	base := Default()
	if strings.TrimSpace(path) == "" {
		return base, nil
	}

	extParser, err := parser.NewExtParser(ctx, &parser.ExtParserConfig{
		FallbackParser: parser.TextParser{},
	})
	if err != nil {
		return nil, fmt.Errorf("init context parser: %w", err)
	}
	loader, err := file.NewFileLoader(ctx, &file.FileLoaderConfig{
		UseNameAsID: true,
		Parser:      extParser,
	})
	if err != nil {
		return nil, fmt.Errorf("init context loader: %w", err)
	}

	docs, err := loader.Load(ctx, document.Source{URI: path})
	if err != nil {
		return nil, fmt.Errorf("load context %s: %w", path, err)
	}
	var builder strings.Builder
	for _, doc := range docs {
		content := strings.TrimSpace(doc.Content)
		if content == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n\n")
		}
		builder.WriteString(content)
	}
	if builder.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyContext)
	}
	base.context = builder.String()
	return base, nil
}
