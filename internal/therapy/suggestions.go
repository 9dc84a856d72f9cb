package therapy

// fallbackSuggestions is the static per-topic follow-up list used when the
// model cannot produce suggestions. Every topic has a non-empty entry.
var fallbackSuggestions = map[Topic][]string{
	Ayurveda: {
		"How do I find out my dosha?",
		"Ayurvedic diet for beginners",
		"Recommended daily routines",
	},
	Acupuncture: {
		"Which conditions does acupuncture treat?",
		"What happens during a session?",
		"Does acupuncture help with anxiety?",
	},
	Aromatherapy: {
		"Best essential oils for relaxing",
		"How do I use essential oils safely?",
		"Aromatherapy for insomnia",
	},
	Reiki: {
		"What happens in a reiki session?",
		"Can reiki help with anxiety?",
		"How often should I receive reiki?",
	},
	Meditation: {
		"How do I start meditating?",
		"How long should I meditate daily?",
		"What is mindfulness exactly?",
	},
	Yoga: {
		"Which yoga style suits beginners?",
		"Can yoga relieve back pain?",
		"What is pranayama breathing?",
	},
	Herbalism: {
		"Which teas help with sleep?",
		"Are herbal remedies safe with medication?",
		"How are medicinal plants prepared?",
	},
	General: {
		"Which therapies do you recommend?",
		"How do I start with integrative medicine?",
		"Which benefits are scientifically proven?",
	},
}

// FallbackSuggestions returns the static follow-up list for a topic. Unknown
// topics get the general list.
func FallbackSuggestions(topic Topic) []string {
	entries, ok := fallbackSuggestions[topic]
	if !ok {
		entries = fallbackSuggestions[General]
	}
	out := make([]string, len(entries))
	copy(out, entries)
	return out
}
