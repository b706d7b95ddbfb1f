package domain

// BlueprintInput carries the user-supplied strings the generator folds
// into the blueprint skeleton. Every field except TemplateKey is optional;
// empty fields fall back to template defaults.
type BlueprintInput struct {
	TemplateKey    string `json:"template_key"`
	ProjectName    string `json:"project_name"`
	TargetAudience string `json:"target_audience"`
	ClinicalFocus  string `json:"clinical_focus"`
	Differentiator string `json:"differentiator"`
	DataSources    string `json:"data_sources"`
	Monetization   string `json:"monetization"`
	AIAssistants   string `json:"ai_assistants"`
}

// BlueprintSummary names the generated app.
type BlueprintSummary struct {
	AppName  string `json:"app_name"`
	Tagline  string `json:"tagline"`
	Mission  string `json:"mission"`
	Template string `json:"template"`
}

// ScreenPlan is a prioritized screen in the UI plan.
type ScreenPlan struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// UIPlan lists the screens and the design system constraints.
type UIPlan struct {
	Screens      []ScreenPlan `json:"screens"`
	DesignSystem string       `json:"design_system"`
}

// EntityPlan describes storage for one domain entity.
type EntityPlan struct {
	Name       string `json:"name"`
	Storage    string `json:"storage"`
	Encryption string `json:"encryption"`
}

// DataPlan covers entities and compliance posture.
type DataPlan struct {
	Entities   []EntityPlan `json:"entities"`
	Compliance string       `json:"compliance"`
}

// AutomationPlan lists AI capabilities and their infrastructure.
type AutomationPlan struct {
	AIFeatures     []string `json:"ai_features"`
	CustomFeatures []string `json:"custom_features"`
	Infrastructure string   `json:"infrastructure"`
}

// PricingTier is one row of the monetization plan.
type PricingTier struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
}

// MonetizationPlan describes the revenue model.
type MonetizationPlan struct {
	Model string        `json:"model"`
	Tiers []PricingTier `json:"tiers"`
}

// LaunchPhase groups tasks under a milestone.
type LaunchPhase struct {
	Phase string   `json:"phase"`
	Tasks []string `json:"tasks"`
}

// AnalyticsPlan lists KPIs and tooling.
type AnalyticsPlan struct {
	KPI   []string `json:"kpi"`
	Tools string   `json:"tools"`
}

// CompliancePlan lists regulatory standards and concrete measures.
type CompliancePlan struct {
	Standards []string `json:"standards"`
	Measures  []string `json:"measures"`
}

// Experiment is a planned product experiment.
type Experiment struct {
	Name     string `json:"name"`
	Metric   string `json:"metric"`
	Duration string `json:"duration"`
}

// Blueprint is the full generated app design document.
type Blueprint struct {
	Summary          BlueprintSummary `json:"summary"`
	UIPlan           UIPlan           `json:"ui_plan"`
	DataPlan         DataPlan         `json:"data_plan"`
	AutomationPlan   AutomationPlan   `json:"automation_plan"`
	MonetizationPlan MonetizationPlan `json:"monetization_plan"`
	LaunchChecklist  []LaunchPhase    `json:"launch_checklist"`
	Analytics        AnalyticsPlan    `json:"analytics"`
	Compliance       CompliancePlan   `json:"compliance"`
	Experiments      []Experiment     `json:"experiments"`
	Differentiator   string           `json:"differentiator"`
	DataSources      []string         `json:"data_sources"`
}
