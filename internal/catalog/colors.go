package catalog

import (
	"fmt"

	"github.com/kibi-sigz/zed-f9p-gnss-viewer/internal/domain"
)

// UI color palette shared by the web frontend and the terminal tools.
var uiColors = map[string]string{
	"primary":   "#0066cc",
	"secondary": "#00cc66",
	"accent":    "#ff9900",
	"danger":    "#ff4444",
	"warning":   "#ffaa00",
	"info":      "#00aaff",
	"success":   "#00cc88",
	"dark":      "#1a1a2e",
	"light":     "#f8f9fa",
}

func UIColor(token string) (string, error) {
	hex, ok := uiColors[token]
	if !ok {
		return "", fmt.Errorf("ui color %s: %w", token, domain.ErrUnknownCode)
	}
	return hex, nil
}

// UIColorTokens returns all known color tokens in ascending order.
func UIColorTokens() []string {
	return sortedStringKeys(uiColors)
}
