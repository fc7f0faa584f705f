package messages

import "math/rand"

// LoadingMessages is a small pool of light-hearted lines a frontend can
// show while an identification is in flight. Constructed at startup and
// passed around explicitly rather than living as ambient global state.
type LoadingMessages struct {
	messages []string
}

func NewLoadingMessages() *LoadingMessages {
	return &LoadingMessages{
		messages: []string{
			"Your plants don't need therapy, just proper drainage. But they'll still appreciate you talking to them! 🌿 💭",
			"Science says talking to plants helps them grow. But maybe skip the gossip – these walls have leaves. 🤫 🌱",
			"Did you know plants can get sunburned? Even they need SPF (Shade Protection Factor) sometimes! ☀️ 🌿",
			"Relationship status with my monstera: It's complicated. They asked for indirect light, then called me toxic for moving them away from the window. 💔 🪴",
			"Overwatering is like overthinking – it drowns the potential. Let your plants and thoughts breathe a little. 💧 ✨",
			"Missing your plant's watering schedule is like missing a text from your mom – they'll forgive you, but you'll never hear the end of it. 📱 🌵",
		},
	}
}

// All returns the full message list.
func (l *LoadingMessages) All() []string {
	return l.messages
}

// Pick returns one message at random.
func (l *LoadingMessages) Pick() string {
	return l.messages[rand.Intn(len(l.messages))]
}
