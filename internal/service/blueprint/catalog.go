package blueprint

import "github.com/endoforge/appforge/internal/domain"

var templates = []domain.Template{
	{
		Key:         "glucose-intelligence",
		Name:        "Glucose Intelligence Hub",
		Description: "real-time glucose analytics and personalized insight platform on CGM data",
		Category:    "diabetes management",
		Screens: []domain.TemplateScreen{
			{Name: "Dashboard", Description: "live glucose monitoring, TIR gauge, daily/weekly trend charts"},
			{Name: "Pattern Analysis", Description: "AGP report, postprandial spike detection, hypoglycemia risk alerts"},
			{Name: "Meal Log", Description: "photo-based meal logging, carb estimation, glucose impact correlation"},
			{Name: "Insight Feed", Description: "AI-generated daily summaries, behavioral recommendations, weekly reports"},
			{Name: "Settings", Description: "target range configuration, alert thresholds, CGM device pairing"},
		},
		Entities:   []string{"GlucoseReading", "MealLog", "InsulinDose", "ActivitySession", "DailyReport"},
		AIFeatures: []string{"glucose pattern prediction", "early postprandial spike warning", "insulin dose optimization suggestions"},
	},
	{
		Key:         "clinical-trial-orchestrator",
		Name:        "Clinical Trial Orchestrator",
		Description: "integrated management platform digitizing the full clinical trial lifecycle",
		Category:    "clinical research",
		Screens: []domain.TemplateScreen{
			{Name: "Trial Board", Description: "enrollment progress, per-site status, milestone timeline"},
			{Name: "Subject Management", Description: "screening workflow, eligibility checklist, consent management"},
			{Name: "Data Capture", Description: "eCRF form builder, query management, data validation rules"},
			{Name: "Safety Reporting", Description: "AE/SAE reporting, causality assessment, automated regulatory reports"},
			{Name: "Analytics Dashboard", Description: "interim analysis visualization, safety signals, statistical reports"},
		},
		Entities:   []string{"Trial", "Site", "Subject", "Visit", "AdverseEvent", "CRFEntry"},
		AIFeatures: []string{"automated eligibility determination", "protocol deviation detection", "early safety signal detection"},
	},
	{
		Key:         "metabolic-coach",
		Name:        "Metabolic Lifestyle Coach",
		Description: "personalized lifestyle coaching platform driven by metabolic health markers",
		Category:    "health management",
		Screens: []domain.TemplateScreen{
			{Name: "Health Score", Description: "composite metabolic score, body composition, blood pressure, glucose and lipid trends"},
			{Name: "Meal Planner", Description: "AI meal recommendations, nutrient analysis, calorie tracking"},
			{Name: "Exercise Guide", Description: "tailored workout programs, heart-rate based intensity, activity history"},
			{Name: "Sleep Analysis", Description: "sleep patterns, recovery score, circadian rhythm optimization tips"},
			{Name: "Coach Chat", Description: "live AI coach conversations, goal setting, motivational nudges"},
		},
		Entities:   []string{"UserProfile", "HealthMetric", "MealPlan", "Exercise", "SleepRecord", "CoachMessage"},
		AIFeatures: []string{"personalized meal plan generation", "exercise intensity optimization", "sleep pattern improvement guidance"},
	},
}

var pricingTiers = []domain.PricingTier{
	{Name: "Free", Price: "$0", Features: []string{"basic monitoring", "one weekly report"}},
	{Name: "Pro", Price: "$29/mo", Features: []string{"AI insights", "real-time alerts", "unlimited reports"}},
	{Name: "Enterprise", Price: "custom quote", Features: []string{"dedicated infrastructure", "SLA guarantee", "custom integrations"}},
}

var launchChecklist = []domain.LaunchPhase{
	{Phase: "MVP (4 weeks)", Tasks: []string{"core screens", "database schema design", "authentication system"}},
	{Phase: "Beta (8 weeks)", Tasks: []string{"AI feature integration", "user testing", "performance tuning"}},
	{Phase: "Launch (12 weeks)", Tasks: []string{"security audit", "regulatory review", "app store submission"}},
}

var experiments = []domain.Experiment{
	{Name: "AI recommendation accuracy A/B test", Metric: "user adoption rate", Duration: "2 weeks"},
	{Name: "notification frequency optimization", Metric: "retention rate", Duration: "4 weeks"},
	{Name: "onboarding flow test", Metric: "completion rate", Duration: "2 weeks"},
}
