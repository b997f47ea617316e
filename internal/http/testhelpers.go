package httpx

import (
	"os"
	"testing"
)

// RequireTemplateRenderer creates a TemplateRenderer over the on-disk
// templates, skipping the test when they are not available.
func RequireTemplateRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: os.DirFS(TemplatePathFromTest)})
	if err != nil {
		t.Skipf("Templates not available, skipping: %v", err)
		return nil
	}
	return tr
}
