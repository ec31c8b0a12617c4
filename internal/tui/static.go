package tui

import (
	"fmt"

	"github.com/verte-zerg/homeward/internal/site"
)

// RenderStatic renders a page once, fully revealed and with every stat at
// its target, for non-interactive output.
func RenderStatic(s site.Site, key string, width int) (string, error) {
	p, ok := s.Page(key)
	if !ok {
		return "", fmt.Errorf("unknown page %q", key)
	}
	mp := mountPage(p, hosts{observer: fullView{}}, mountConfig{revealThreshold: 0.1})
	defer mp.unmount()
	out, err := mp.render(width, newContactForm())
	if err != nil {
		return "", fmt.Errorf("render %s: %w", key, err)
	}
	return out, nil
}
