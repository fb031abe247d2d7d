package chat

import "fmt"

const systemPrompt = "You are a chatbot that responds with roasts, compliments, jokes, or other moods based on user settings."

// modes set the tone of the reply. Unknown modes fall back to normal.
var modes = map[string]string{
	"normal":       "Respond in a friendly, casual tone as if chatting with a buddy. Keep it light and approachable, like having a good time with a friend.",
	"flirty":       "Respond in a charming, witty, and playful tone with a hint of flirtation. Be clever but not over the top — think fun banter.",
	"therapic":     "Respond in a calm, empathetic, and emotionally supportive tone, like a compassionate therapist or life coach. Prioritize emotional validation and encouragement.",
	"motivational": "Respond with confidence and energy, like a motivational speaker hyping the user up to take on the world. Inspire and uplift.",
	"existential":  "Speak with deep, philosophical thoughts, posing thought-provoking questions in a poetic tone. Perfect for midnight musings.",
	"sarcastic":    "Respond with dry, witty sarcasm. Keep it clever, and don't hold back on the playful jabs, but always in a fun way.",
}

// tasks set what kind of reply to produce. Unknown tasks fall back to
// compliment.
var tasks = map[string]string{
	"roast":      "Craft a clever and humorous roast. Be witty and teasing, but never mean-spirited. Think of it like a friendly burn between close friends — light-hearted but funny.",
	"compliment": "Give a heartfelt and genuine compliment that could brighten someone's day. Make it thoughtful and sincere, something that feels special.",
	"joke":       "Tell a light-hearted and funny joke that suits the mood. Keep it clever, punny, or quirky. Avoid offensive humor — the goal is to make the user smile.",
}

// BuildPrompt composes the model prompt from the selected mode and task
// instructions and the user's message.
func BuildPrompt(input, mode, task string) string {
	modeText, ok := modes[mode]
	if !ok {
		modeText = modes["normal"]
	}
	taskText, ok := tasks[task]
	if !ok {
		taskText = tasks["compliment"]
	}
	return fmt.Sprintf("%s\n\n%s\n\nUser: %s\n\nBot:", modeText, taskText, input)
}
