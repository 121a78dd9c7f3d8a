// Package casual intercepts conversational small talk before it reaches
// retrieval, answering greetings and pleasantries from a fixed table.
package casual

import "strings"

var responses = map[string]string{
	"hi":          "Hello! 👋 Welcome to Emerging Software. How can I assist you today?",
	"hello":       "Hi there! 😊 How can I help you with our services?",
	"hey":         "Hey! 👋 What would you like to know?",
	"how are you": "I'm doing great! 😊 Ready to help you succeed. What can I assist with?",
	"i'm fine":    "Great to hear! 😊 Now, how can I help your business?",
	"thanks":      "You're welcome! 🙌 Feel free to ask anything else.",
	"thank you":   "Happy to help! 😊",
	"bye":         "Goodbye! 👋 Have a great day!",
	"ok":          "Okay! Let me know if you need more info.",
	"yes":         "Great! What else would you like to know?",
	"no":          "No problem! Feel free to ask anything else.",
}

// Greeting keys also match as a prefix, but only for very short queries so a
// substantive question that happens to open with a greeting still reaches
// retrieval. Checked in this fixed order.
var prefixKeys = []string{"hello", "hey", "hi"}

const maxPrefixWords = 3

// Match reports whether the query is casual small talk and, if so, the
// canned reply for it. Exact matches always count; prefix matches count only
// for greeting keys on queries of at most maxPrefixWords words.
func Match(query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if reply, ok := responses[q]; ok {
		return reply, true
	}
	if len(strings.Fields(q)) <= maxPrefixWords {
		for _, key := range prefixKeys {
			if !strings.HasPrefix(q, key) {
				continue
			}
			// the key must be a whole word: "hi there" and "hi," count,
			// "history" does not
			rest := q[len(key):]
			if rest == "" || !isWordChar(rest[0]) {
				return responses[key], true
			}
		}
	}
	return "", false
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}
