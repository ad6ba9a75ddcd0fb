package catalog

// AgreementVersion identifies the participation agreement text providers sign.
const AgreementVersion = "2025"

// AgreementSection is one section of the provider participation agreement.
// Every section must be initialed before the signature is accepted.
type AgreementSection struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

var AgreementSections = []AgreementSection{
	{ID: 1, Title: "Purpose & Relationship", Content: "I acknowledge independent-contractor status and no medical advice/referrals by Findr Health."},
	{ID: 2, Title: "Provider Obligations", Content: "I confirm required credentials, insurance ($1M/$3M), and compliance with HIPAA/FTC/state law."},
	{ID: 3, Title: "Listings, Pricing & Subscriptions", Content: "I agree to accurate listings, clear fees, and ROSCA/FTC compliance for recurring offers."},
	{ID: 4, Title: "Payments & Settlement", Content: "I appoint Findr Health as limited payment collection agent (agent-of-payee)."},
	{ID: 5, Title: "Payments & Settlement (Reserves/Refunds)", Content: "I authorize delayed release, reserves, and set-offs for refunds/chargebacks."},
	{ID: 6, Title: "Cancellations & Refunds", Content: "I acknowledge refund transparency and Findr Health refund authority; state-law overrides apply."},
	{ID: 7, Title: "Data Protection & HIPAA", Content: "I will protect PHI; BAA applies if PHI is exchanged; breach notice within 10 business days."},
	{ID: 8, Title: "Marketing & Conduct", Content: "I agree to TCPA/CAN-SPAM consent and professional conduct and confidentiality."},
	{ID: 9, Title: "Reviews & Ratings", Content: "I will not block/buy/manipulate reviews; CRFA + FTC Fake Reviews Rule apply."},
	{ID: 10, Title: "Insurance & Indemnification", Content: "I accept required insurance limits and indemnification duties."},
	{ID: 11, Title: "Intellectual Property", Content: "I grant display license for my content; acknowledge Findr Health IP; unlawful content may be removed."},
	{ID: 12, Title: "Term & Termination", Content: "30-day termination; immediate suspension for fraud/violation; refunds for unserved bookings."},
	{ID: 13, Title: "Limitation of Liability", Content: "I accept liability cap equal to fees retained by Findr Health in prior 12 months (exceptions apply)."},
	{ID: 14, Title: "Dispute Resolution", Content: "AAA arbitration with small-claims carve-out and 30-day opt-out; mass-claims staged."},
	{ID: 15, Title: "Confidentiality & Accessibility", Content: "I agree to confidentiality and ADA/WCAG cooperation."},
	{ID: 16, Title: "Amendments & Notices", Content: "30-day prospective updates via email/dashboard; right to terminate before effective date."},
}
