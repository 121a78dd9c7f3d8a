package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenFullEntry(t *testing.T) {
	entries := []Entry{
		{
			Service:     "SEO",
			Description: "Search engine optimization for sustainable organic growth.",
			Campaigns: map[string]Campaign{
				"Local SEO": {Description: "Rank in local map results.", IdealFor: "Brick-and-mortar businesses"},
			},
			Benefits: map[string]string{
				"Visibility": "Higher rankings on search engines.",
			},
			WhyChooseUs: map[string]string{
				"Experience": "A decade of SEO campaigns.",
			},
			FAQs: []FAQ{
				{Question: "How long until results?", Answer: "Typically 3-6 months."},
			},
			Contact: &Contact{
				Phone:       "+1 830 631 0316",
				Email:       "director@emergingssoftware.com",
				Title:       "Emerging Software",
				Description: "A digital marketing agency.",
				Offices:     map[string]string{"pakistan": "Lahore, Punjab"},
			},
			SEOServices: map[string]SubService{
				"On-Page SEO": {Description: "Content and metadata optimization."},
			},
			SEOProcess: []ProcessStep{
				{Step: "Audit", Description: "Full site audit."},
				{Step: "Strategy", Description: "Keyword and content plan."},
			},
		},
	}

	chunks := Flatten(entries)

	assert.Equal(t, []string{
		"SEO: Search engine optimization for sustainable organic growth.",
		"Local SEO: Rank in local map results. - Ideal For: Brick-and-mortar businesses",
		"Benefit - Visibility: Higher rankings on search engines.",
		"Why Choose Us - Experience: A decade of SEO campaigns.",
		"FAQ - Q: How long until results? A: Typically 3-6 months.",
		"Contact Phone: +1 830 631 0316",
		"Contact Email: director@emergingssoftware.com",
		"Contact Title: Emerging Software",
		"About Us: A digital marketing agency.",
		"Office in Pakistan: Lahore, Punjab",
		"SEO Service - On-Page SEO: Content and metadata optimization.",
		"Process Step - Audit: Full site audit.",
		"Process Step - Strategy: Keyword and content plan.",
	}, chunks)
}

func TestFlattenPlaceholders(t *testing.T) {
	chunks := Flatten([]Entry{{Service: "PPC"}})
	require.Len(t, chunks, 1)
	assert.Equal(t, "PPC: No description available.", chunks[0])

	chunks = Flatten([]Entry{{Description: "Pay-per-click campaigns."}})
	require.Len(t, chunks, 1)
	assert.Equal(t, "Unnamed Service: Pay-per-click campaigns.", chunks[0])

	chunks = Flatten([]Entry{{}})
	require.Len(t, chunks, 1)
	assert.Equal(t, "Unnamed Service: No description available.", chunks[0])
}

func TestFlattenDropsPartialFAQs(t *testing.T) {
	full := []Entry{{
		Service:     "Email Marketing",
		Description: "Campaigns that convert.",
		FAQs: []FAQ{
			{Question: "Q1", Answer: "A1"},
			{Question: "Q2", Answer: "A2"},
			{Question: "Q3", Answer: "A3"},
		},
	}}
	partial := []Entry{{
		Service:     "Email Marketing",
		Description: "Campaigns that convert.",
		FAQs: []FAQ{
			{Question: "Q1", Answer: "A1"},
			{Question: "Q2"},
			{Answer: "A3"},
		},
	}}

	fullChunks := Flatten(full)
	partialChunks := Flatten(partial)

	// exactly one chunk lost per dropped item
	assert.Len(t, partialChunks, len(fullChunks)-2)
	for _, chunk := range partialChunks {
		assert.NotContains(t, chunk, "Q2")
		assert.NotContains(t, chunk, "A3")
	}
}

func TestFlattenCampaignWithoutIdealFor(t *testing.T) {
	chunks := Flatten([]Entry{{
		Service:     "Social Media",
		Description: "Community growth.",
		Campaigns: map[string]Campaign{
			"Awareness": {Description: "Broad reach campaigns."},
		},
	}})

	require.Len(t, chunks, 2)
	assert.Equal(t, "Awareness: Broad reach campaigns.", chunks[1])
}

func TestFlattenStableOrder(t *testing.T) {
	entries := []Entry{{
		Service:     "Content Writing",
		Description: "Copy that ranks.",
		Benefits: map[string]string{
			"Tone":      "Consistent brand voice.",
			"Research":  "Well-sourced articles.",
			"Deadlines": "On-time delivery.",
		},
		Contact: &Contact{Offices: map[string]string{
			"usa":   "New Braunfels, TX",
			"qatar": "Doha",
		}},
	}}

	first := Flatten(entries)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Flatten(entries))
	}

	// map fields come out in sorted key order
	assert.Equal(t, "Benefit - Deadlines: On-time delivery.", first[1])
	assert.Equal(t, "Benefit - Research: Well-sourced articles.", first[2])
	assert.Equal(t, "Benefit - Tone: Consistent brand voice.", first[3])
	assert.Equal(t, "Office in Qatar: Doha", first[4])
	assert.Equal(t, "Office in Usa: New Braunfels, TX", first[5])
}

func TestFlattenEntryOrderPreserved(t *testing.T) {
	chunks := Flatten([]Entry{
		{Service: "A", Description: "first"},
		{Service: "B", Description: "second"},
	})
	assert.Equal(t, []string{"A: first", "B: second"}, chunks)
}
