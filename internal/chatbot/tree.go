// Package chatbot holds the scripted FAQ dialogue tree. Conversations are a
// pure traversal of a static graph; there is no per-user state and no side
// effects.
package chatbot

import "errors"

var (
	ErrUnknownNode   = errors.New("unknown node")
	ErrInvalidOption = errors.New("invalid option")
)

type Option struct {
	Label string `json:"label"`
	Next  string `json:"-"`
}

type Node struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`
}

const startNodeID = "start"

var nodes = map[string]Node{
	"start": {
		ID:     "start",
		Prompt: "Hi! I'm the FitLife+ assistant. What can I help you with?",
		Options: []Option{
			{Label: "Membership plans", Next: "membership"},
			{Label: "Workouts and diet", Next: "training"},
			{Label: "Video coaching", Next: "coaching"},
			{Label: "Something else", Next: "support"},
		},
	},
	"membership": {
		ID:     "membership",
		Prompt: "We have three tiers: Free, Pro and Elite. Pro unlocks exercise and diet plans plus a store discount; Elite adds one-on-one video coaching. What would you like to know?",
		Options: []Option{
			{Label: "How do I upgrade?", Next: "membership-upgrade"},
			{Label: "What do plans cost?", Next: "membership-pricing"},
			{Label: "Back", Next: "start"},
		},
	},
	"membership-upgrade": {
		ID:     "membership-upgrade",
		Prompt: "Open Membership in the app, pick a tier and complete checkout. Your plan activates the moment the payment is verified.",
		Options: []Option{
			{Label: "Back to plans", Next: "membership"},
			{Label: "Start over", Next: "start"},
		},
	},
	"membership-pricing": {
		ID:     "membership-pricing",
		Prompt: "Pro is ₹699 and Elite ₹999 for 30 days. Elite members also get a 10% discount in the supplement store.",
		Options: []Option{
			{Label: "Back to plans", Next: "membership"},
			{Label: "Start over", Next: "start"},
		},
	},
	"training": {
		ID:     "training",
		Prompt: "Pro and Elite members get goal-based exercise and diet plans: weight loss, muscle gain or general fitness. Which are you after?",
		Options: []Option{
			{Label: "Exercise plans", Next: "training-exercise"},
			{Label: "Diet plans", Next: "training-diet"},
			{Label: "Back", Next: "start"},
		},
	},
	"training-exercise": {
		ID:     "training-exercise",
		Prompt: "Head to Plans > Exercise and pick your goal. Each plan covers a full week with daily focus areas.",
		Options: []Option{
			{Label: "Back to workouts and diet", Next: "training"},
			{Label: "Start over", Next: "start"},
		},
	},
	"training-diet": {
		ID:     "training-diet",
		Prompt: "Plans > Diet lists meals with calories for your goal. Pair it with the hydration tracker if you're on Elite.",
		Options: []Option{
			{Label: "Back to workouts and diet", Next: "training"},
			{Label: "Start over", Next: "start"},
		},
	},
	"coaching": {
		ID:     "coaching",
		Prompt: "Elite members can book one-on-one video sessions with a trainer. Pick a trainer, a date and a time; an admin confirms the slot and the call opens in the app.",
		Options: []Option{
			{Label: "Why was my request rejected?", Next: "coaching-rejected"},
			{Label: "Start over", Next: "start"},
		},
	},
	"coaching-rejected": {
		ID:     "coaching-rejected",
		Prompt: "Requests are usually rejected when the trainer isn't available at that slot. Try a different time, or message the trainer first.",
		Options: []Option{
			{Label: "Back to coaching", Next: "coaching"},
			{Label: "Start over", Next: "start"},
		},
	},
	"support": {
		ID:     "support",
		Prompt: "For anything I can't answer, write to support@fitlifeplus.in and the team will get back within a day.",
		Options: []Option{
			{Label: "Start over", Next: "start"},
		},
	},
}

// Start returns the root of the dialogue tree.
func Start() Node {
	return nodes[startNodeID]
}

// Step follows option index from the given node and returns the next node.
func Step(nodeID string, option int) (Node, error) {
	node, ok := nodes[nodeID]
	if !ok {
		return Node{}, ErrUnknownNode
	}
	if option < 0 || option >= len(node.Options) {
		return Node{}, ErrInvalidOption
	}

	next, ok := nodes[node.Options[option].Next]
	if !ok {
		return Node{}, ErrUnknownNode
	}
	return next, nil
}
