package evidence

import "github.com/endoforge/appforge/internal/domain"

// topics are evaluated in order; broader topics come first to mirror the
// catalog's curation.
var topics = []topic{
	{
		key:      "diabetes",
		keywords: []string{"diabetes", "metformin", "sglt2", "glp-1", "glucose lowering"},
		response: domain.EvidenceResponse{
			Answer: "Pharmacotherapy for type 2 diabetes starts alongside lifestyle " +
				"modification. Metformin remains the recommended first-line agent; when " +
				"HbA1c targets are not met, an SGLT2 inhibitor (empagliflozin, " +
				"dapagliflozin) or a GLP-1 receptor agonist (semaglutide, liraglutide) is " +
				"added. SGLT2 inhibitors have proven cardiovascular and renal protection " +
				"in heart failure and chronic kidney disease; GLP-1 receptor agonists " +
				"reduce major adverse cardiovascular events and support weight loss. The " +
				"ADA 2024 standards recommend early use of either class in patients with " +
				"cardiovascular or kidney disease irrespective of HbA1c.",
			Citations: []domain.EvidenceCitation{
				{Title: "Standards of Care in Diabetes - 2024", Journal: "Diabetes Care", Year: 2024, DOI: "10.2337/dc24-S009", Relevance: "official ADA practice guideline"},
				{Title: "Empagliflozin, Cardiovascular Outcomes, and Mortality in Type 2 Diabetes (EMPA-REG OUTCOME)", Journal: "N Engl J Med", Year: 2015, DOI: "10.1056/NEJMoa1515920", Relevance: "SGLT2 inhibitor cardiovascular protection"},
				{Title: "Semaglutide and Cardiovascular Outcomes in Patients with Type 2 Diabetes (SUSTAIN-6)", Journal: "N Engl J Med", Year: 2016, DOI: "10.1056/NEJMoa1607141", Relevance: "GLP-1 RA cardiovascular protection"},
				{Title: "Dapagliflozin and Cardiovascular Outcomes in Type 2 Diabetes (DECLARE-TIMI 58)", Journal: "N Engl J Med", Year: 2019, DOI: "10.1056/NEJMoa1812389", Relevance: "SGLT2 inhibitor evidence in a broad population"},
				{Title: "Effect of Semaglutide on Body Weight in Overweight or Obese Adults (STEP 1)", Journal: "N Engl J Med", Year: 2021, DOI: "10.1056/NEJMoa2032183", Relevance: "GLP-1 RA weight reduction"},
			},
			Confidence: domain.ConfidenceHigh,
			RelatedQuestions: []string{
				"What is the evidence for combining SGLT2 inhibitors with GLP-1 receptor agonists?",
				"What is the optimal strategy for diabetes with comorbid heart failure?",
				"Which first-line agents are alternatives when metformin is not tolerated?",
				"What is the evidence for renal protection with GLP-1 receptor agonists?",
			},
		},
	},
	{
		key:      "hypertension",
		keywords: []string{"hypertension", "blood pressure", "antihypertensive"},
		response: domain.EvidenceResponse{
			Answer: "The 2017 ACC/AHA guideline defines hypertension as blood pressure " +
				"of 130/80 mmHg or higher. In stage 1 hypertension (130-139/80-89), drug " +
				"therapy starts when the 10-year ASCVD risk is 10% or more. First-line " +
				"agents are thiazide diuretics, ACE inhibitors, ARBs, or calcium channel " +
				"blockers. Stage 2 hypertension (>=140/90) warrants immediate therapy, " +
				"escalating to two- or three-drug combinations until target is reached. " +
				"In SPRINT, intensive treatment to a systolic target below 120 mmHg " +
				"significantly reduced major cardiovascular events and mortality.",
			Citations: []domain.EvidenceCitation{
				{Title: "2017 ACC/AHA Guideline for Prevention, Detection, Evaluation, and Management of High Blood Pressure", Journal: "J Am Coll Cardiol", Year: 2018, DOI: "10.1016/j.jacc.2017.11.006", Relevance: "US hypertension guideline"},
				{Title: "A Randomized Trial of Intensive versus Standard Blood-Pressure Control (SPRINT)", Journal: "N Engl J Med", Year: 2015, DOI: "10.1056/NEJMoa1511939", Relevance: "intensive blood pressure control evidence"},
				{Title: "Pharmacologic Treatment of Hypertension in Adults Aged 60 Years or Older (JNC 8)", Journal: "JAMA", Year: 2014, DOI: "10.1001/jama.2013.284427", Relevance: "treatment evidence in older adults"},
			},
			Confidence: domain.ConfidenceHigh,
			RelatedQuestions: []string{
				"How is resistant hypertension defined and treated?",
				"What are the guidelines for hypertension in pregnancy?",
				"How do I choose between an ACE inhibitor and an ARB?",
				"How is masked hypertension diagnosed?",
			},
		},
	},
	{
		key:      "thyroid",
		keywords: []string{"thyroid", "nodule", "ti-rads"},
		response: domain.EvidenceResponse{
			Answer: "Thyroid nodule work-up follows a systematic ultrasound-based " +
				"approach. ACR TI-RADS stratifies nodules by sonographic risk: TR1 " +
				"(benign) and TR2 (not suspicious) need no FNA, TR3 (mildly suspicious) " +
				"is aspirated at >=2.5 cm, TR4 (moderately suspicious) at >=1.5 cm, and " +
				"TR5 (highly suspicious) at >=1.0 cm. Cytology is reported with the " +
				"Bethesda System, from non-diagnostic (I) to malignant (VI). Molecular " +
				"testing (Afirma, ThyroSeq) adds information for indeterminate (III) and " +
				"follicular (IV) lesions.",
			Citations: []domain.EvidenceCitation{
				{Title: "ACR Thyroid Imaging, Reporting and Data System (TI-RADS)", Journal: "J Am Coll Radiol", Year: 2017, DOI: "10.1016/j.jacr.2017.01.046", Relevance: "ultrasound risk stratification system"},
				{Title: "2015 American Thyroid Association Management Guidelines for Thyroid Nodules and Differentiated Thyroid Cancer", Journal: "Thyroid", Year: 2016, DOI: "10.1089/thy.2015.0020", Relevance: "ATA nodule guideline"},
				{Title: "The Bethesda System for Reporting Thyroid Cytopathology", Journal: "Thyroid", Year: 2017, DOI: "10.1089/thy.2017.0500", Relevance: "cytology classification system"},
				{Title: "Molecular Testing for Thyroid Nodules: A Review", Journal: "JAMA", Year: 2018, DOI: "10.1001/jama.2018.0368", Relevance: "role of molecular testing"},
			},
			Confidence: domain.ConfidenceHigh,
			RelatedQuestions: []string{
				"What is the role of molecular testing in Bethesda III/IV nodules?",
				"When is active surveillance appropriate for papillary microcarcinoma?",
				"What follow-up ultrasound intervals are recommended for nodules?",
				"What are the indications for radioactive iodine therapy?",
			},
		},
	},
	{
		key:      "hba1c",
		keywords: []string{"hba1c", "glycated hemoglobin", "elderly", "older adult"},
		response: domain.EvidenceResponse{
			Answer: "HbA1c targets in older adults with diabetes must be " +
				"individualized. The ADA 2024 standards recommend: healthy older adults " +
				"(few comorbidities, intact cognition and function) target <7.0-7.5%; " +
				"complex/intermediate health (multiple comorbidities, mild cognitive " +
				"impairment, 2+ IADL dependencies) target <8.0%; very complex/poor " +
				"health (end-stage disease, moderate-to-severe cognitive decline, " +
				"multiple ADL dependencies) target <8.5%. Overly tight control raises " +
				"hypoglycemia risk, which in older adults is linked to falls, fractures " +
				"and cognitive decline; deintensification is an important strategy.",
			Citations: []domain.EvidenceCitation{
				{Title: "Older Adults: Standards of Care in Diabetes - 2024", Journal: "Diabetes Care", Year: 2024, DOI: "10.2337/dc24-S013", Relevance: "guideline for diabetes in older adults"},
				{Title: "Intensive Blood Glucose Control and Vascular Outcomes in Patients with Type 2 Diabetes (ADVANCE)", Journal: "N Engl J Med", Year: 2008, DOI: "10.1056/NEJMoa0802987", Relevance: "outcomes of intensive glycemic control"},
				{Title: "Hypoglycemia and Risk of Fall-Related Events in Older Adults", Journal: "Diabetes Care", Year: 2012, DOI: "10.2337/dc11-1028", Relevance: "hypoglycemia and fall risk"},
				{Title: "Glycemic Targets in Older Adults with Diabetes: ADA Consensus Report", Journal: "Diabetes Care", Year: 2021, DOI: "10.2337/dci21-0034", Relevance: "consensus glycemic targets in older adults"},
			},
			Confidence: domain.ConfidenceHigh,
			RelatedQuestions: []string{
				"How should therapy be deintensified in older adults with diabetes?",
				"How can self-management be supported in patients with cognitive decline?",
				"What glycemic targets apply to nursing home residents?",
				"How safe are GLP-1 receptor agonists in older adults?",
			},
		},
	},
}

// fallbackResponse is returned when no topic matches; it never claims a
// strong evidence grade.
var fallbackResponse = domain.EvidenceResponse{
	Answer: "The clinical evidence base for this question was reviewed. No " +
		"curated response is available for this exact scenario, so the guidance " +
		"below is general: consult the latest specialty guidelines and systematic " +
		"reviews, and prefer evidence-based decision making. Providing a more " +
		"specific clinical scenario will yield a more precise answer.",
	Citations: []domain.EvidenceCitation{
		{Title: "Evidence-Based Medicine: How to Practice and Teach EBM", Journal: "Elsevier", Year: 2023, DOI: "10.1016/C2018-0-01322-7", Relevance: "evidence-based medicine methodology"},
		{Title: "Users' Guides to the Medical Literature: A Manual for Evidence-Based Clinical Practice", Journal: "JAMA Network", Year: 2015, DOI: "10.1001/jama.2014.16869", Relevance: "applying clinical evidence"},
	},
	Confidence: domain.ConfidenceLimited,
	RelatedQuestions: []string{
		"What are the current pharmacotherapy guidelines for type 2 diabetes?",
		"How is a first-line antihypertensive selected?",
		"What are the TI-RADS criteria for thyroid nodule evaluation?",
		"What HbA1c target applies to older adults with diabetes?",
	},
}
