package catalog

import "FindrHealth/internal/model"

// Standardized service lists per provider type. Defaults reviewed with the
// marketplace team; providers customize price and duration per selection.
var servicesByType = map[model.ProviderType][]Service{
	model.ProviderTypeMedical: {
		{ID: "annual-physical", Name: "Annual Physical Exam", Duration: 45, Price: 150, Category: "Preventive"},
		{ID: "wellness-checkup", Name: "Wellness Checkup", Duration: 30, Price: 125, Category: "Preventive"},
		{ID: "sports-physical", Name: "Sports Physical", Duration: 30, Price: 100, Category: "Preventive"},
		{ID: "sick-visit", Name: "Sick Visit (Acute Illness)", Duration: 20, Price: 100, Category: "Acute Care"},
		{ID: "urgent-care", Name: "Urgent Care Consultation", Duration: 30, Price: 150, Category: "Acute Care"},
		{ID: "diabetes-management", Name: "Diabetes Management", Duration: 30, Price: 125, Category: "Chronic Care"},
		{ID: "hypertension-followup", Name: "Hypertension Follow-up", Duration: 20, Price: 100, Category: "Chronic Care"},
		{ID: "flu-shot", Name: "Flu Vaccination", Duration: 15, Price: 40, Category: "Vaccinations"},
		{ID: "covid-vaccine", Name: "COVID-19 Vaccination", Duration: 15, Price: 50, Category: "Vaccinations"},
		{ID: "lab-work", Name: "Lab Work (Blood Draw)", Duration: 15, Price: 50, Category: "Diagnostic"},
		{ID: "strep-test", Name: "Strep Test", Duration: 15, Price: 60, Category: "Diagnostic"},
		{ID: "ekg", Name: "EKG/ECG", Duration: 20, Price: 100, Category: "Diagnostic"},
		{ID: "telehealth-consult", Name: "Telehealth Consultation", Duration: 20, Price: 75, Category: "Virtual"},
	},
	model.ProviderTypeDental: {
		{ID: "cleaning", Name: "Dental Cleaning (Regular)", Duration: 60, Price: 120, Category: "Preventive"},
		{ID: "deep-cleaning", Name: "Deep Cleaning", Duration: 90, Price: 250, Category: "Preventive"},
		{ID: "exam-xrays", Name: "Exam & X-rays", Duration: 45, Price: 150, Category: "Preventive"},
		{ID: "fluoride-treatment", Name: "Fluoride Treatment", Duration: 15, Price: 40, Category: "Preventive"},
		{ID: "filling", Name: "Filling (Composite)", Duration: 60, Price: 200, Category: "Restorative"},
		{ID: "crown", Name: "Crown", Duration: 120, Price: 1200, Category: "Restorative"},
		{ID: "root-canal", Name: "Root Canal", Duration: 90, Price: 1000, Category: "Restorative"},
		{ID: "whitening", Name: "Teeth Whitening", Duration: 60, Price: 400, Category: "Cosmetic"},
		{ID: "veneers", Name: "Veneers (per tooth)", Duration: 120, Price: 1500, Category: "Cosmetic"},
		{ID: "emergency-exam", Name: "Emergency Dental Exam", Duration: 30, Price: 150, Category: "Emergency"},
	},
	model.ProviderTypeCosmetic: {
		{ID: "botox", Name: "Botox (per unit)", Duration: 30, Price: 12, Category: "Injectables"},
		{ID: "dermal-fillers", Name: "Dermal Fillers", Duration: 45, Price: 600, Category: "Injectables"},
		{ID: "lip-fillers", Name: "Lip Fillers", Duration: 30, Price: 500, Category: "Injectables"},
		{ID: "chemical-peel", Name: "Chemical Peel", Duration: 45, Price: 200, Category: "Skin Treatments"},
		{ID: "microneedling", Name: "Microneedling", Duration: 60, Price: 300, Category: "Skin Treatments"},
		{ID: "laser-hair-removal", Name: "Laser Hair Removal", Duration: 30, Price: 250, Category: "Laser"},
		{ID: "coolsculpting", Name: "CoolSculpting", Duration: 60, Price: 800, Category: "Body Contouring"},
		{ID: "cosmetic-consult", Name: "Cosmetic Consultation", Duration: 30, Price: 100, Category: "Consultations"},
	},
	model.ProviderTypeFitness: {
		{ID: "personal-training-60", Name: "Personal Training (60 min)", Duration: 60, Price: 100, Category: "Personal Training"},
		{ID: "personal-training-30", Name: "Personal Training (30 min)", Duration: 30, Price: 60, Category: "Personal Training"},
		{ID: "fitness-assessment", Name: "Fitness Assessment", Duration: 60, Price: 80, Category: "Assessment"},
		{ID: "group-fitness", Name: "Group Fitness Class", Duration: 60, Price: 25, Category: "Group Classes"},
		{ID: "yoga-class", Name: "Yoga Class", Duration: 60, Price: 20, Category: "Group Classes"},
		{ID: "spin-class", Name: "Spin Class", Duration: 45, Price: 25, Category: "Group Classes"},
		{ID: "nutrition-coaching", Name: "Nutrition Coaching", Duration: 60, Price: 80, Category: "Nutrition"},
	},
	model.ProviderTypeMassage: {
		{ID: "deep-tissue-60", Name: "Deep Tissue Massage (60 min)", Duration: 60, Price: 100, Category: "Therapeutic"},
		{ID: "deep-tissue-90", Name: "Deep Tissue Massage (90 min)", Duration: 90, Price: 140, Category: "Therapeutic"},
		{ID: "sports-massage", Name: "Sports Massage", Duration: 60, Price: 110, Category: "Sports"},
		{ID: "swedish-60", Name: "Swedish Massage (60 min)", Duration: 60, Price: 90, Category: "Relaxation"},
		{ID: "swedish-90", Name: "Swedish Massage (90 min)", Duration: 90, Price: 130, Category: "Relaxation"},
		{ID: "hot-stone", Name: "Hot Stone Massage", Duration: 90, Price: 150, Category: "Relaxation"},
	},
	model.ProviderTypeMentalHealth: {
		{ID: "therapy-50", Name: "Individual Therapy (50 min)", Duration: 50, Price: 150, Category: "Therapy"},
		{ID: "initial-consultation", Name: "Initial Consultation", Duration: 60, Price: 175, Category: "Therapy"},
		{ID: "couples-therapy", Name: "Couples Therapy", Duration: 60, Price: 200, Category: "Couples"},
		{ID: "family-therapy", Name: "Family Therapy", Duration: 60, Price: 200, Category: "Family"},
		{ID: "group-therapy", Name: "Group Therapy", Duration: 90, Price: 60, Category: "Group"},
		{ID: "psychiatry-eval", Name: "Psychiatric Evaluation", Duration: 60, Price: 300, Category: "Psychiatry"},
	},
	model.ProviderTypeSkincare: {
		{ID: "basic-facial", Name: "Basic Facial", Duration: 60, Price: 80, Category: "Facials"},
		{ID: "deep-cleansing", Name: "Deep Cleansing Facial", Duration: 75, Price: 120, Category: "Facials"},
		{ID: "anti-aging-facial", Name: "Anti-Aging Facial", Duration: 90, Price: 150, Category: "Facials"},
		{ID: "hydrafacial", Name: "HydraFacial", Duration: 60, Price: 200, Category: "Facials"},
		{ID: "acne-treatment", Name: "Acne Treatment", Duration: 45, Price: 100, Category: "Treatments"},
		{ID: "microdermabrasion", Name: "Microdermabrasion", Duration: 60, Price: 150, Category: "Treatments"},
	},
}
