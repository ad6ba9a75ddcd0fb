package catalog

// Option is a value/label pair for the reference pick lists below.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var USStates = []Option{
	{Value: "AL", Label: "Alabama"}, {Value: "AK", Label: "Alaska"},
	{Value: "AZ", Label: "Arizona"}, {Value: "AR", Label: "Arkansas"},
	{Value: "CA", Label: "California"}, {Value: "CO", Label: "Colorado"},
	{Value: "CT", Label: "Connecticut"}, {Value: "DE", Label: "Delaware"},
	{Value: "FL", Label: "Florida"}, {Value: "GA", Label: "Georgia"},
	{Value: "HI", Label: "Hawaii"}, {Value: "ID", Label: "Idaho"},
	{Value: "IL", Label: "Illinois"}, {Value: "IN", Label: "Indiana"},
	{Value: "IA", Label: "Iowa"}, {Value: "KS", Label: "Kansas"},
	{Value: "KY", Label: "Kentucky"}, {Value: "LA", Label: "Louisiana"},
	{Value: "ME", Label: "Maine"}, {Value: "MD", Label: "Maryland"},
	{Value: "MA", Label: "Massachusetts"}, {Value: "MI", Label: "Michigan"},
	{Value: "MN", Label: "Minnesota"}, {Value: "MS", Label: "Mississippi"},
	{Value: "MO", Label: "Missouri"}, {Value: "MT", Label: "Montana"},
	{Value: "NE", Label: "Nebraska"}, {Value: "NV", Label: "Nevada"},
	{Value: "NH", Label: "New Hampshire"}, {Value: "NJ", Label: "New Jersey"},
	{Value: "NM", Label: "New Mexico"}, {Value: "NY", Label: "New York"},
	{Value: "NC", Label: "North Carolina"}, {Value: "ND", Label: "North Dakota"},
	{Value: "OH", Label: "Ohio"}, {Value: "OK", Label: "Oklahoma"},
	{Value: "OR", Label: "Oregon"}, {Value: "PA", Label: "Pennsylvania"},
	{Value: "RI", Label: "Rhode Island"}, {Value: "SC", Label: "South Carolina"},
	{Value: "SD", Label: "South Dakota"}, {Value: "TN", Label: "Tennessee"},
	{Value: "TX", Label: "Texas"}, {Value: "UT", Label: "Utah"},
	{Value: "VT", Label: "Vermont"}, {Value: "VA", Label: "Virginia"},
	{Value: "WA", Label: "Washington"}, {Value: "WV", Label: "West Virginia"},
	{Value: "WI", Label: "Wisconsin"}, {Value: "WY", Label: "Wyoming"},
}

var Certifications = []Option{
	{Value: "board-certified-family-medicine", Label: "Board Certified - Family Medicine"},
	{Value: "board-certified-internal-medicine", Label: "Board Certified - Internal Medicine"},
	{Value: "acls", Label: "ACLS (Advanced Cardiovascular Life Support)"},
	{Value: "bls", Label: "BLS (Basic Life Support)"},
	{Value: "cpr", Label: "CPR Certified"},
	{Value: "licensed-massage-therapist", Label: "Licensed Massage Therapist (LMT)"},
	{Value: "licensed-clinical-social-worker", Label: "Licensed Clinical Social Worker (LCSW)"},
	{Value: "licensed-professional-counselor", Label: "Licensed Professional Counselor (LPC)"},
	{Value: "certified-personal-trainer", Label: "Certified Personal Trainer"},
	{Value: "registered-dietitian", Label: "Registered Dietitian (RD)"},
	{Value: "certified-esthetician", Label: "Certified Esthetician"},
}

var InsurancePlans = []Option{
	{Value: "aetna", Label: "Aetna"},
	{Value: "bcbs", Label: "Blue Cross Blue Shield"},
	{Value: "cigna", Label: "Cigna"},
	{Value: "humana", Label: "Humana"},
	{Value: "medicare", Label: "Medicare"},
	{Value: "medicaid", Label: "Medicaid"},
	{Value: "united", Label: "UnitedHealthcare"},
	{Value: "kaiser", Label: "Kaiser Permanente"},
	{Value: "anthem", Label: "Anthem"},
}

var Languages = []Option{
	{Value: "english", Label: "English"},
	{Value: "spanish", Label: "Spanish"},
	{Value: "mandarin", Label: "Mandarin"},
	{Value: "french", Label: "French"},
	{Value: "german", Label: "German"},
	{Value: "italian", Label: "Italian"},
	{Value: "portuguese", Label: "Portuguese"},
	{Value: "russian", Label: "Russian"},
	{Value: "arabic", Label: "Arabic"},
	{Value: "hindi", Label: "Hindi"},
}
