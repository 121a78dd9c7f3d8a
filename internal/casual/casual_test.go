package casual

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"exact greeting", "hi", true},
		{"exact with case and spaces", "  Hello  ", true},
		{"exact thanks", "thank you", true},
		{"exact farewell", "bye", true},
		{"multi word exact", "how are you", true},
		{"short greeting prefix", "hello there", true},
		{"short hey prefix", "hey you", true},
		{"long query starting with greeting", "hi, what are your seo packages and pricing details", false},
		{"short greeting with punctuation", "hi, anyone there?", true},
		{"greeting key inside a longer word", "history of seo", false},
		{"greeting key starting a longer word", "hits per month", false},
		{"substantive question", "what seo services do you offer", false},
		{"non-greeting prefix not matched", "thanks for the detailed seo report you sent over yesterday", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, ok := Match(tt.query)
			assert.Equal(t, tt.want, ok)
			if ok {
				assert.NotEmpty(t, reply)
			} else {
				assert.Empty(t, reply)
			}
		})
	}
}

func TestMatchReturnsCannedReply(t *testing.T) {
	reply, ok := Match("hi")
	assert.True(t, ok)
	assert.Equal(t, responses["hi"], reply)

	reply, ok = Match("hello there")
	assert.True(t, ok)
	assert.Equal(t, responses["hello"], reply)
}
