package blueprint

import (
	"errors"
	"strings"

	"log/slog"

	"github.com/endoforge/appforge/internal/domain"
)

// ErrTemplateRequired indicates Generate was called without a template
// key.
var ErrTemplateRequired = errors.New("blueprint: template key is required")

// Service generates app design blueprints from the template catalog. The
// generator is pure string interpolation into a fixed skeleton; empty
// input fields fall back to template defaults.
type Service struct {
	logger *slog.Logger
}

// New constructs a Service.
func New(logger *slog.Logger) Service {
	return Service{logger: logger}
}

// Templates returns the full template catalog.
func (s Service) Templates() []domain.Template {
	return templates
}

// Generate fills the blueprint skeleton for the selected template. An
// unknown key falls back to the first template, matching the catalog's
// lenient lookup.
func (s Service) Generate(input domain.BlueprintInput) (*domain.Blueprint, error) {
	if strings.TrimSpace(input.TemplateKey) == "" {
		return nil, ErrTemplateRequired
	}
	tmpl := findTemplate(input.TemplateKey)

	projectName := orDefault(input.ProjectName, tmpl.Name)
	focus := orDefault(input.ClinicalFocus, tmpl.Category)
	audience := orDefault(input.TargetAudience, "healthcare professionals")

	screens := make([]domain.ScreenPlan, 0, len(tmpl.Screens))
	for _, sc := range tmpl.Screens {
		screens = append(screens, domain.ScreenPlan{Name: sc.Name, Description: sc.Description, Priority: "P0"})
	}
	entities := make([]domain.EntityPlan, 0, len(tmpl.Entities))
	for _, e := range tmpl.Entities {
		entities = append(entities, domain.EntityPlan{Name: e, Storage: "Cloudflare D1 + R2", Encryption: "AES-256-GCM at rest"})
	}

	bp := &domain.Blueprint{
		Summary: domain.BlueprintSummary{
			AppName:  projectName,
			Tagline:  "AI-powered medical solution for " + focus,
			Mission:  tmpl.Description + ", built for " + audience,
			Template: tmpl.Name,
		},
		UIPlan: domain.UIPlan{
			Screens:      screens,
			DesignSystem: "dark/light mode, medical accessibility per WCAG 2.1 AA",
		},
		DataPlan: domain.DataPlan{
			Entities:   entities,
			Compliance: "HIPAA and local privacy law compliance, PHI encryption and access logging",
		},
		AutomationPlan: domain.AutomationPlan{
			AIFeatures:     tmpl.AIFeatures,
			CustomFeatures: splitList(input.AIAssistants, []string{"custom AI capability"}),
			Infrastructure: "Cloudflare Workers AI + D1 + R2 + KV",
		},
		MonetizationPlan: domain.MonetizationPlan{
			Model: orDefault(input.Monetization, "freemium + subscription"),
			Tiers: pricingTiers,
		},
		LaunchChecklist: launchChecklist,
		Analytics: domain.AnalyticsPlan{
			KPI:   []string{"DAU/MAU ratio", "session length", "per-feature usage", "churn rate", "NPS"},
			Tools: "Cloudflare Analytics + custom events",
		},
		Compliance: domain.CompliancePlan{
			Standards: []string{"HIPAA", "local privacy law", "GDPR (international users)"},
			Measures:  []string{"PHI encryption", "access logging", "audit trail", "data minimization"},
		},
		Experiments:    experiments,
		Differentiator: orDefault(input.Differentiator, "evidence-based AI decision support"),
		DataSources:    splitList(input.DataSources, []string{"CGM", "EMR", "wearables", "PGHD"}),
	}
	s.logger.Info("blueprint generated", "template", tmpl.Key, "app_name", projectName)
	return bp, nil
}

func findTemplate(key string) domain.Template {
	for _, t := range templates {
		if t.Key == key {
			return t
		}
	}
	return templates[0]
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// splitList turns a comma-separated input into trimmed items, or returns
// fallback when the input is empty.
func splitList(raw string, fallback []string) []string {
	if strings.TrimSpace(raw) == "" {
		return fallback
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
