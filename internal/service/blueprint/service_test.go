package blueprint

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/endoforge/appforge/internal/domain"
)

func newService() Service {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestTemplatesCatalog(t *testing.T) {
	t.Parallel()

	catalog := newService().Templates()
	if len(catalog) != 3 {
		t.Fatalf("expected 3 templates, got %d", len(catalog))
	}
	for _, tmpl := range catalog {
		if tmpl.Key == "" || len(tmpl.Screens) == 0 || len(tmpl.Entities) == 0 {
			t.Fatalf("incomplete template: %+v", tmpl)
		}
	}
}

func TestGenerateRequiresTemplateKey(t *testing.T) {
	t.Parallel()

	if _, err := newService().Generate(domain.BlueprintInput{}); !errors.Is(err, ErrTemplateRequired) {
		t.Fatalf("expected ErrTemplateRequired, got %v", err)
	}
}

func TestGenerateFillsDefaults(t *testing.T) {
	t.Parallel()

	bp, err := newService().Generate(domain.BlueprintInput{TemplateKey: "glucose-intelligence"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bp.Summary.AppName != "Glucose Intelligence Hub" {
		t.Fatalf("expected template name as default app name, got %q", bp.Summary.AppName)
	}
	if len(bp.UIPlan.Screens) != 5 {
		t.Fatalf("expected 5 screens, got %d", len(bp.UIPlan.Screens))
	}
	for _, screen := range bp.UIPlan.Screens {
		if screen.Priority != "P0" {
			t.Fatalf("expected P0 priority, got %q", screen.Priority)
		}
	}
	if len(bp.DataPlan.Entities) != 5 {
		t.Fatalf("expected 5 entity plans, got %d", len(bp.DataPlan.Entities))
	}
	if got := bp.DataSources; len(got) != 4 || got[0] != "CGM" {
		t.Fatalf("unexpected default data sources: %v", got)
	}
	if len(bp.LaunchChecklist) != 3 || len(bp.Experiments) != 3 {
		t.Fatalf("skeleton sections incomplete: %d phases, %d experiments", len(bp.LaunchChecklist), len(bp.Experiments))
	}
}

func TestGenerateUsesProvidedInput(t *testing.T) {
	t.Parallel()

	bp, err := newService().Generate(domain.BlueprintInput{
		TemplateKey:    "metabolic-coach",
		ProjectName:    "GlucoSense Pro",
		ClinicalFocus:  "type 2 diabetes management",
		Monetization:   "enterprise licensing",
		Differentiator: "validated against RCT data",
		DataSources:    " CGM , EMR ,, wearables ",
		AIAssistants:   "glucose forecasting, meal suggestions",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bp.Summary.AppName != "GlucoSense Pro" {
		t.Fatalf("unexpected app name: %q", bp.Summary.AppName)
	}
	if bp.Summary.Tagline != "AI-powered medical solution for type 2 diabetes management" {
		t.Fatalf("unexpected tagline: %q", bp.Summary.Tagline)
	}
	if bp.MonetizationPlan.Model != "enterprise licensing" {
		t.Fatalf("unexpected monetization model: %q", bp.MonetizationPlan.Model)
	}
	if bp.Differentiator != "validated against RCT data" {
		t.Fatalf("unexpected differentiator: %q", bp.Differentiator)
	}
	if got := bp.DataSources; len(got) != 3 || got[2] != "wearables" {
		t.Fatalf("expected trimmed data sources, got %v", got)
	}
	if got := bp.AutomationPlan.CustomFeatures; len(got) != 2 || got[0] != "glucose forecasting" {
		t.Fatalf("unexpected custom features: %v", got)
	}
}

func TestGenerateUnknownKeyFallsBack(t *testing.T) {
	t.Parallel()

	bp, err := newService().Generate(domain.BlueprintInput{TemplateKey: "does-not-exist"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bp.Summary.Template != "Glucose Intelligence Hub" {
		t.Fatalf("expected fallback to first template, got %q", bp.Summary.Template)
	}
}
