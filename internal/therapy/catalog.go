package therapy

// Info describes one therapy for the public catalog endpoint.
type Info struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
}

var catalog = []Info{
	{
		Type:        "Ayurveda",
		Description: "Millennia-old Indian medical system focused on balancing the doshas",
		Benefits:    []string{"Bodily balance", "Self-knowledge", "Prevention"},
	},
	{
		Type:        "Acupuncture",
		Description: "Traditional Chinese medicine technique using needles at specific points",
		Benefits:    []string{"Pain relief", "Stress reduction", "Energetic balance"},
	},
	{
		Type:        "Aromatherapy",
		Description: "Therapeutic use of essential oils extracted from plants",
		Benefits:    []string{"Relaxation", "Emotional wellbeing", "Symptom relief"},
	},
	{
		Type:        "Reiki",
		Description: "Japanese energy therapy channelling vital energy",
		Benefits:    []string{"Energetic balance", "Anxiety reduction", "Deep relaxation"},
	},
	{
		Type:        "Meditation",
		Description: "Contemplative practices that train the mind and awareness",
		Benefits:    []string{"Mental clarity", "Stress reduction", "Focus and concentration"},
	},
	{
		Type:        "Yoga",
		Description: "Integrative practice uniting body, mind and spirit",
		Benefits:    []string{"Flexibility", "Strength", "Mental balance"},
	},
	{
		Type:        "Herbalism",
		Description: "Treatment through the use of medicinal plants",
		Benefits:    []string{"Natural", "Preventive", "Complementary"},
	},
}

// Catalog lists the therapies the assistant can talk about.
func Catalog() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}
