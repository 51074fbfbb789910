package testutil

import (
	"testing"

	"github.com/dalemusser/commtrack/internal/app/resources"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// BootTemplates boots a template engine over every set registered in the
// test binary, plus the shared layout, and installs it for templates.Render.
func BootTemplates(t *testing.T) {
	t.Helper()

	resources.LoadSharedTemplates()
	eng := templates.New(false)
	if err := eng.Boot(zap.NewNop()); err != nil {
		t.Fatalf("boot templates: %v", err)
	}
	templates.UseEngine(eng, zap.NewNop())
	t.Cleanup(func() { templates.UseEngine(nil, nil) })
}
