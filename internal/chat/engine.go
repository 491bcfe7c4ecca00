// Package chat answers free-text messages with canned replies chosen by
// keyword matching. No NLU, no conversation state: the engine is a pure
// function of the message text.
package chat

import "strings"

// category is one keyword-triggered reply group. Table order is the single
// source of priority.
type category struct {
	name     string
	keywords []string
	reply    string
}

// categories are evaluated top to bottom against the whole message. Every
// category is checked independently and each match overwrites the running
// reply, so the last matching category wins. A message with both "hello" and
// "contact" gets the contact reply. Deliberately kept bug-compatible with the
// deployed behavior; switch to break-on-first-match only with a version bump.
var categories = []category{
	{
		name:     "greeting",
		keywords: []string{"hello", "hi", "hey"},
		reply:    "Hello! How can I assist with your project today?",
	},
	{
		name:     "services",
		keywords: []string{"service", "construction"},
		reply:    "We offer turnkey construction, renovation, civil works, and project management. Would you like a quick quote?",
	},
	{
		name:     "marble",
		keywords: []string{"marble"},
		reply:    "Our marble range includes Carrara, Calacatta, Emperador, and Nero Marquina. Tell me the variety and quantity you need.",
	},
	{
		name:     "granite",
		keywords: []string{"granite"},
		reply:    "We stock Absolute Black, Baltic Brown, Blue Pearl, and Kashmir White granite. What thickness and finish do you prefer?",
	},
	{
		name:     "pricing",
		keywords: []string{"price", "quote"},
		reply:    "Please share the product/service, dimensions or scope, and location. I can prepare a quote and email it to you.",
	},
	{
		name:     "ordering",
		keywords: []string{"order"},
		reply:    "To place an order, tell me product type (marble/granite/service), product name, and quantity. I'll create the order.",
	},
	{
		name:     "meeting",
		keywords: []string{"meeting", "book"},
		reply:    "I can schedule a site visit or consultation. Share your name, email, preferred date/time, and location.",
	},
	{
		name:     "contact",
		keywords: []string{"email", "contact"},
		reply:    "You can reach us at info@buildstone.co or call +1 (555) 010-2020.",
	},
}

const defaultReply = "I'm here to help with construction services, marble, and granite. Ask me about services, products, pricing, or book a meeting."

// Engine maps a message to a canned reply. Stateless; safe for concurrent use.
type Engine struct{}

func NewEngine() *Engine { return &Engine{} }

// Respond returns the reply for message. history is accepted for wire
// compatibility but does not influence the reply; callers must not assume it
// does. Deterministic: identical input always yields identical output.
func (e *Engine) Respond(message string, history []string) string {
	_ = history

	msg := strings.ToLower(message)
	reply := defaultReply
	for _, c := range categories {
		if containsAny(msg, c.keywords) {
			reply = c.reply
		}
	}
	return reply
}

func containsAny(msg string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(msg, k) {
			return true
		}
	}
	return false
}
