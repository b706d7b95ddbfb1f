package domain

// TemplateScreen is one screen of a template's UI plan.
type TemplateScreen struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Template is a predefined app archetype offered by the blueprint
// generator.
type Template struct {
	Key         string           `json:"key"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Screens     []TemplateScreen `json:"screens"`
	Entities    []string         `json:"entities"`
	AIFeatures  []string         `json:"ai_features"`
}
