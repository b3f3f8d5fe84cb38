package assistant

import (
	"fmt"
	"strings"
)

type Topic string

const (
	TopicDisease    Topic = "disease"
	TopicWater      Topic = "water"
	TopicFertilizer Topic = "fertilizer"
	TopicPest       Topic = "pest"
	TopicHarvest    Topic = "harvest"
	TopicGrowing    Topic = "growing"
	TopicGrowth     Topic = "growth"
	TopicGeneral    Topic = "general"
)

const defaultCropEmoji = "🌱"

type cropRule struct {
	name  string
	emoji string
}

// Checked in order; the first crop contained in the message wins.
var cropRules = []cropRule{
	{"tomato", "🍅"},
	{"potato", "🥔"},
	{"rice", "🌾"},
	{"wheat", "🌾"},
	{"corn", "🌽"},
	{"maize", "🌽"},
	{"sugarcane", "🎋"},
	{"banana", "🍌"},
	{"mango", "🥭"},
	{"coffee", "☕"},
	{"apple", "🍎"},
	{"grape", "🍇"},
	{"pepper", "🌶️"},
	{"soybean", "🫘"},
	{"onion", "🧅"},
	{"garlic", "🧄"},
	{"cucumber", "🥒"},
	{"watermelon", "🍉"},
	{"strawberry", "🍓"},
}

type topicRule struct {
	topic    Topic
	keywords []string
}

// Keywords are plain substrings, so stems like "irrigat" cover every form.
var topicRules = []topicRule{
	{TopicDisease, []string{"disease", "blight", "rot", "rust", "mold", "spot", "lesion", "infected", "sick", "dying", "fungus", "bacteria", "virus"}},
	{TopicWater, []string{"water", "irrigat", "drought", "dry", "wet", "flood", "rain"}},
	{TopicFertilizer, []string{"fertiliz", "npk", "nitrogen", "phosphorus", "potassium", "nutrient", "manure", "compost"}},
	{TopicPest, []string{"pest", "insect", "bug", "aphid", "mite", "worm", "borer", "fly", "beetle"}},
	{TopicHarvest, []string{"harvest", "pick", "ripe", "mature", "yield", "production"}},
	{TopicGrowing, []string{"grow", "plant", "cultivat", "sow", "seed", "germinate"}},
	{TopicGrowth, []string{"small", "bigger", "size", "develop", "fruit", "flower", "bloom"}},
}

// TopicGuess is what the fallback detected in a message. Crop is empty when
// no known crop was mentioned.
type TopicGuess struct {
	Topic Topic
	Crop  string
	Emoji string
}

// Guess detects the crop and topic of a message by substring search.
func Guess(message string) TopicGuess {
	msg := strings.ToLower(message)
	g := TopicGuess{Topic: TopicGeneral, Emoji: defaultCropEmoji}

	for _, c := range cropRules {
		if strings.Contains(msg, c.name) {
			g.Crop = strings.ToUpper(c.name[:1]) + c.name[1:]
			g.Emoji = c.emoji
			break
		}
	}

	for _, r := range topicRules {
		if containsAny(msg, r.keywords) {
			g.Topic = r.topic
			break
		}
	}
	return g
}

// Fallback always produces a topical reply, even for empty input.
func Fallback(message string) (string, Topic) {
	g := Guess(message)
	return g.Render(), g.Topic
}

// Render fills the template of the guessed topic.
func (g TopicGuess) Render() string {
	cropStr := ""
	if g.Crop != "" {
		cropStr = " for " + g.Crop
	}

	switch g.Topic {
	case TopicDisease:
		return fmt.Sprintf("%s I understand you're dealing with a disease issue%s. For accurate diagnosis, please **upload a photo** to the Diagnosis page — our AI will identify the exact disease.\n\nIn the meantime:\n1. **Isolate** affected plants from healthy ones\n2. **Remove** severely infected leaves/branches\n3. Apply a **broad-spectrum fungicide** (Mancozeb or Chlorothalonil) as a precaution\n4. Avoid overhead watering\n\nCan you describe the symptoms in more detail? (color of spots, which leaves are affected, any mold/powder visible?)", g.Emoji, cropStr)
	case TopicWater:
		return fmt.Sprintf("💧 For watering%s, the key is **consistency**.\n\n**The Finger Test:** Push your finger 2 inches into soil:\n- Moist = don't water yet ✓\n- Dry = water now\n- Soggy = overwatered!\n\n**Best practice:** Water deeply every 2-3 days in the morning. Mulch around plants to retain moisture. Can you tell me more about your specific situation?", cropStr)
	case TopicFertilizer:
		return fmt.Sprintf("🌱 For fertilization%s, the key nutrients are:\n- **Nitrogen (N):** Leafy growth — use Urea (46-0-0)\n- **Phosphorus (P):** Roots & flowers — use DAP (18-46-0)\n- **Potassium (K):** Fruit quality & disease resistance — use MOP (0-0-60)\n\nWhat specific issue are you seeing? (yellowing leaves, poor fruit, slow growth?) I can give more targeted advice!", cropStr)
	case TopicPest:
		return fmt.Sprintf("🐛 For pest control%s:\n1. **Identify** the pest first (describe what you see)\n2. **Neem oil** (2%%) — safe, broad-spectrum organic option\n3. **Insecticidal soap** — for soft-bodied insects\n4. **Imidacloprid** — systemic for severe infestations\n\nWhat does the pest look like? Where on the plant is it?", cropStr)
	case TopicHarvest:
		return fmt.Sprintf("🌾 For harvest timing%s, look for:\n- Full color development\n- Slight softness (for fruits)\n- Seeds/grains are hard\n- Plant leaves starting to yellow/dry\n\nWhat crop are you harvesting? I can give you specific maturity indicators!", cropStr)
	case TopicGrowing:
		return fmt.Sprintf("%s For growing%s successfully:\n1. **Soil:** Test pH (ideal 6.0-7.0 for most crops)\n2. **Sunlight:** Most crops need 6-8 hours of direct sun\n3. **Water:** Consistent moisture, not waterlogged\n4. **Nutrients:** Balanced NPK fertilizer\n5. **Spacing:** Proper spacing for air circulation\n\nWhat specific aspect of growing are you asking about?", g.Emoji, cropStr)
	case TopicGrowth:
		subject := g.Crop
		if subject == "" {
			subject = "plant"
		}
		return fmt.Sprintf("%s If your %s isn't growing well, check these:\n1. **Temperature** — too hot or cold stops growth\n2. **Water** — both too much and too little cause stunting\n3. **Nutrients** — nitrogen deficiency causes slow growth\n4. **Soil pH** — wrong pH locks out nutrients\n5. **Light** — insufficient sunlight causes weak growth\n\nCan you describe what you're seeing? (yellowing, wilting, small fruits, etc.)", g.Emoji, subject)
	default:
		return fmt.Sprintf("%s I'm here to help with your farming questions%s! 🌿\n\nCould you provide more details about:\n- What crop you're growing\n- What problem or question you have\n- What symptoms you're observing\n\nThe more specific you are, the better advice I can give! You can also **upload a photo** to the Diagnosis page for AI-powered disease identification.", g.Emoji, cropStr)
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
