package factory

import (
	"fmt"

	"ai-dialogue-be/pkg/parser"
	"ai-dialogue-be/pkg/parser/pattern"
	"ai-dialogue-be/pkg/parser/remote"
)

func NewParserProvider(providerType, baseURL string) (parser.Provider, error) {
	switch providerType {
	case "pattern", "":
		return pattern.NewProvider(), nil
	case "remote":
		if baseURL == "" {
			baseURL = "http://localhost:8090" // Default
		}
		return remote.NewProvider(baseURL), nil
	default:
		return nil, fmt.Errorf("unsupported parser provider: %s", providerType)
	}
}
