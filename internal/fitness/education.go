// ABOUTME: Static anabolic-steroid education and harm-reduction content.
// ABOUTME: Reference data only, no dosing computation of any kind.
package fitness

// LabTest is one entry in the mandatory monitoring panel.
type LabTest struct {
	Name      string
	Frequency string
	Reason    string
}

// ProtectiveCompound is a liver-support recommendation.
type ProtectiveCompound struct {
	Name   string
	Dosage string
	Role   string
}

// PCTMedication is one drug in a post-cycle therapy outline.
type PCTMedication struct {
	Name     string
	Protocol string
	Role     string
}

// PCTGuide is the general post-cycle therapy reference.
type PCTGuide struct {
	Title       string
	Importance  string
	Medications []PCTMedication
}

// CycleProtocol is one reference cycle description. These are
// educational summaries of what users encounter, not prescriptions.
type CycleProtocol struct {
	Name      string
	Compounds string
	Dosage    string
	Frequency string
	Duration  string
	Objective string
	Level     string
	Notes     []string
}

// PCTProtocol is a tiered post-cycle therapy outline.
type PCTProtocol struct {
	Name       string
	Steps      []string
	Indication string
}

// SafetyChecklist is a titled list of safety items.
type SafetyChecklist struct {
	Title string
	Items []string
}

// AnabolicGuide is the full education bundle shown to VIP users.
type AnabolicGuide struct {
	Warning             string
	Risks               []string
	RequiredLabs        []LabTest
	LiverProtection     []ProtectiveCompound
	PCT                 PCTGuide
	CycleProtocols      []CycleProtocol
	PCTProtocols        []PCTProtocol
	SafetyChecklists    []SafetyChecklist
	NaturalAlternatives []string
	FinalAdvice         string
}

// AnabolicEducation returns the static reference content. Callers are
// responsible for gating it behind the VIP tier.
func AnabolicEducation() AnabolicGuide {
	return AnabolicGuide{
		Warning: "⚠️ WARNING: Using anabolic steroids without a medical prescription is illegal and dangerous. This section is educational only.",

		Risks: []string{
			"❌ Liver and kidney damage",
			"❌ Cardiovascular problems (hypertension, heart attack)",
			"❌ Hormonal disruption (gynecomastia, testicular atrophy)",
			"❌ Psychological effects (aggression, depression)",
			"❌ Severe acne and hair loss",
			"❌ Chemical dependency",
		},

		RequiredLabs: []LabTest{
			{"Complete blood count", "Every 3 months", "Check blood cells and possible polycythemia"},
			{"Lipid panel", "Every 3 months", "Monitor cholesterol and triglycerides"},
			{"Liver function (AST, ALT, GGT)", "Every 3 months", "Detect liver damage"},
			{"Kidney function (urea, creatinine)", "Every 3 months", "Check kidney health"},
			{"Hormone panel (testosterone, estradiol, LH, FSH)", "Every 3-6 months", "Monitor the hormonal axis"},
			{"PSA (prostate antigen)", "Every 6 months (men over 40)", "Detect prostate problems"},
		},

		LiverProtection: []ProtectiveCompound{
			{"Silymarin (milk thistle)", "200-400mg per day", "Liver protection"},
			{"NAC (N-acetylcysteine)", "600-1200mg per day", "Antioxidant and liver protection"},
			{"TUDCA", "500-1000mg per day", "Advanced liver protection"},
		},

		PCT: PCTGuide{
			Title:      "PCT - Post-Cycle Therapy (ESSENTIAL)",
			Importance: "Fundamental for recovering natural testosterone production",
			Medications: []PCTMedication{
				{"Tamoxifen (Nolvadex)", "40mg/day (weeks 1-2), 20mg/day (weeks 3-4)", "Estrogen blocker"},
				{"Clomiphene (Clomid)", "50mg/day for 4 weeks", "Stimulates testosterone production"},
				{"HCG (gonadotropin)", "500-1000 IU, 2x per week (last 2 weeks of cycle)", "Prevents testicular atrophy"},
			},
		},

		CycleProtocols: []CycleProtocol{
			{
				Name:      "Beginner cycle - Testosterone",
				Compounds: "Testosterone Enanthate",
				Dosage:    "250-500mg",
				Frequency: "2x per week",
				Duration:  "10-12 weeks",
				Objective: "Muscle mass gain",
				Level:     "Beginner",
				Notes: []string{
					"Standard choice for a first cycle",
					"Solid, lasting gains",
					"Lower side-effect risk",
					"PCT mandatory afterward",
				},
			},
			{
				Name:      "Intermediate cycle - Test + Deca",
				Compounds: "Testosterone + Nandrolone (Deca)",
				Dosage:    "500mg Test + 400mg Deca",
				Frequency: "2x per week each",
				Duration:  "12-14 weeks",
				Objective: "Mass and strength gain",
				Level:     "Intermediate",
				Notes: []string{
					"Strong choice for muscle volume",
					"Improves joint recovery",
					"Requires prolactin control",
					"Needs a longer PCT",
				},
			},
			{
				Name:      "Cutting cycle - Test + Trenbolone",
				Compounds: "Testosterone + Trenbolone",
				Dosage:    "300mg Test + 200-300mg Tren",
				Frequency: "EOD (every other day)",
				Duration:  "8-10 weeks",
				Objective: "Muscle definition",
				Level:     "Advanced",
				Notes: []string{
					"Maximum definition and hardness",
					"Accelerated fat loss",
					"More intense side effects",
					"Experienced users only",
				},
			},
			{
				Name:      "Oral cycle - Oxandrolone",
				Compounds: "Oxandrolone (Anavar)",
				Dosage:    "40-80mg",
				Frequency: "Daily (split into 2 doses)",
				Duration:  "6-8 weeks",
				Objective: "Definition and strength",
				Level:     "Beginner/Intermediate",
				Notes: []string{
					"Suited to cutting and definition",
					"Less suppressive than injectables",
					"Liver protection mandatory",
					"Used by women at lower doses",
				},
			},
			{
				Name:      "Advanced cycle - Test + Tren + Masteron",
				Compounds: "Testosterone + Trenbolone + Masteron",
				Dosage:    "400mg Test + 300mg Tren + 400mg Mast",
				Frequency: "EOD for all",
				Duration:  "10-12 weeks",
				Objective: "Competition / extreme definition",
				Level:     "Advanced",
				Notes: []string{
					"Maximum definition and vascularity",
					"Competitors only",
					"Medical monitoring essential",
					"Significant side effects",
				},
			},
		},

		PCTProtocols: []PCTProtocol{
			{
				Name: "Basic PCT (light cycles)",
				Steps: []string{
					"Weeks 1-2: Tamoxifen 40mg/day",
					"Weeks 3-4: Tamoxifen 20mg/day",
					"Optional HCG: 500 IU 2x/week during the last 2 weeks of the cycle",
				},
				Indication: "Testosterone cycles up to 500mg/week",
			},
			{
				Name: "Intermediate PCT",
				Steps: []string{
					"Weeks 1-2: Clomiphene 100mg/day + Tamoxifen 40mg/day",
					"Weeks 3-4: Clomiphene 50mg/day + Tamoxifen 20mg/day",
					"HCG: 1000 IU 2x/week during the last 3 weeks of the cycle",
				},
				Indication: "Cycles with Deca, Tren, or high testosterone doses",
			},
			{
				Name: "Advanced PCT (heavy cycles)",
				Steps: []string{
					"Week 1: Clomiphene 150mg/day + Tamoxifen 60mg/day",
					"Weeks 2-3: Clomiphene 100mg/day + Tamoxifen 40mg/day",
					"Weeks 4-5: Clomiphene 50mg/day + Tamoxifen 20mg/day",
					"HCG: 1500 IU 2x/week during the last 4 weeks of the cycle",
				},
				Indication: "Long cycles (>12 weeks) or multiple compounds",
			},
		},

		SafetyChecklists: []SafetyChecklist{
			{
				Title: "Mandatory pre-cycle labs",
				Items: []string{
					"Complete blood count",
					"Lipid panel (total cholesterol, HDL, LDL, triglycerides)",
					"Liver function (AST, ALT, GGT)",
					"Kidney function (urea, creatinine)",
					"Hormones (total and free testosterone, estradiol, prolactin)",
					"PSA (men over 40)",
				},
			},
			{
				Title: "Protection during the cycle",
				Items: []string{
					"Liver support: Silymarin 300mg/day or TUDCA 500mg/day",
					"Estrogen control: Anastrozole 0.5mg 2x/week (if needed)",
					"Prolactin control: Cabergoline 0.25mg 2x/week (if using Deca/Tren)",
					"Cardiovascular support: Omega-3, CoQ10, Citrus Bergamot",
					"Blood pressure: monitor daily",
				},
			},
			{
				Title: "Warning signs - stop immediately",
				Items: []string{
					"Chest pain or shortness of breath",
					"Blood pressure persistently above 140/90",
					"Jaundice (yellow skin or eyes)",
					"Very dark urine",
					"Gynecomastia (male breast growth)",
					"Severe psychological changes (extreme aggression, depression)",
				},
			},
			{
				Title: "Getting the most out of it",
				Items: []string{
					"Hypercaloric diet: +500 kcal over maintenance",
					"Protein: 2.5-3g per kg of body weight",
					"Training: high volume, 5-6x per week",
					"Sleep: minimum 8 hours per night",
					"Hydration: minimum 4L of water per day",
					"Cardio: 20-30min 3x/week for heart health",
				},
			},
		},

		NaturalAlternatives: []string{
			"🌿 Tribulus Terrestris - natural testosterone support",
			"🌿 Ashwagandha - lowers cortisol, raises testosterone",
			"🌿 Fenugreek - natural hormonal support",
			"🌿 Zinc and magnesium (ZMA) - essential for hormone production",
			"🌿 Vitamin D - fundamental for testosterone",
			"💪 Hard training and proper sleep - the natural baseline",
		},

		FinalAdvice: "👨‍⚕️ SEE A SPECIALIZED ENDOCRINOLOGIST. Never self-medicate. The risks are real and can be irreversible.",
	}
}
