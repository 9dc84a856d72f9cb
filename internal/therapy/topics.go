// Package therapy holds the static domain knowledge of the assistant: the
// closed set of therapy topics, their detection keywords, the system prompts
// that steer the model, and the canned follow-up suggestions. Every table is
// initialized at process start and never mutated, so concurrent reads need
// no synchronization.
package therapy

import "strings"

// Topic is one of the closed set of therapy categories.
type Topic string

const (
	Ayurveda     Topic = "ayurveda"
	Acupuncture  Topic = "acupuncture"
	Aromatherapy Topic = "aromatherapy"
	Reiki        Topic = "reiki"
	Meditation   Topic = "meditation"
	Yoga         Topic = "yoga"
	Herbalism    Topic = "herbalism"
	General      Topic = "general"
)

// topicOrder fixes the classification iteration order. Earlier topics win
// when a message matches keywords of more than one.
var topicOrder = []Topic{
	Ayurveda,
	Acupuncture,
	Aromatherapy,
	Reiki,
	Meditation,
	Yoga,
	Herbalism,
}

var topicKeywords = map[Topic][]string{
	Ayurveda:     {"ayurveda", "ayurvedic", "dosha", "vata", "pitta", "kapha"},
	Acupuncture:  {"acupuncture", "needle", "meridian", "qi", "energy", "point"},
	Aromatherapy: {"aromatherapy", "essential oil", "aroma", "lavender", "eucalyptus", "essence"},
	Reiki:        {"reiki", "chakra", "laying on of hands", "energy healing"},
	Meditation:   {"meditation", "meditate", "mindfulness", "breathing", "concentration"},
	Yoga:         {"yoga", "asana", "posture", "pranayama"},
	Herbalism:    {"herbalism", "herbal", "herb", "medicinal plant", "infusion"},
}

// Parse maps a caller-supplied topic string onto the closed set. Unknown or
// empty values report ok=false so the caller can fall back to detection.
func Parse(s string) (Topic, bool) {
	t := Topic(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case Ayurveda, Acupuncture, Aromatherapy, Reiki, Meditation, Yoga, Herbalism, General:
		return t, true
	default:
		return General, false
	}
}

// Classify maps free text to a topic by keyword matching. It is total and
// deterministic: the first topic in the fixed order with a matching keyword
// wins, and text matching nothing is General.
func Classify(message string) Topic {
	lower := strings.ToLower(message)
	for _, topic := range topicOrder {
		for _, keyword := range topicKeywords[topic] {
			if strings.Contains(lower, keyword) {
				return topic
			}
		}
	}
	return General
}
