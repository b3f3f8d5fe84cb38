package service

import (
	"context"

	"leafscan/internal/models"
)

// LLMDelegate is an external model tried before the offline engine. An empty
// reply with a nil error means the provider had nothing to say.
type LLMDelegate interface {
	Name() string
	Model() string
	Generate(ctx context.Context, message string, history []models.ChatTurn) (string, error)
}

// lianSystemPrompt is the persona shared by every provider.
const lianSystemPrompt = "You are LiAn, an expert AI agricultural assistant for the LeafScan app. " +
	"You have deep expertise in: plant diseases and treatments, crop cultivation for 20+ crops, " +
	"irrigation and water management, fertilization (NPK, organic, micronutrients), " +
	"pest and insect control, soil health and pH management, weather impacts on crops, " +
	"harvest timing, post-harvest handling, organic farming, and modern agronomy. " +
	"Personality: warm, helpful, specific, and actionable. " +
	"Use emojis naturally. Format with markdown: **bold** for key terms, bullet points for lists, numbered steps for procedures. " +
	"Always give concrete, specific advice with product names and quantities when relevant. " +
	"For disease questions: state the pathogen name, symptoms, step-by-step treatment with specific product names, then prevention. " +
	"Keep responses focused and under 500 words. " +
	"You can answer ANY agriculture-related question intelligently. " +
	"Never say you cannot answer a farming question — always provide your best expert advice."

// lastTurns keeps the newest n turns. n <= 0 keeps none.
func lastTurns(history []models.ChatTurn, n int) []models.ChatTurn {
	if n <= 0 {
		return nil
	}
	if len(history) > n {
		return history[len(history)-n:]
	}
	return history
}
