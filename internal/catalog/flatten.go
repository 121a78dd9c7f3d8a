package catalog

import (
	"fmt"
	"sort"
	"strings"
)

const (
	placeholderName        = "Unnamed Service"
	placeholderDescription = "No description available."
)

// Flatten converts catalog entries into an ordered sequence of "<label>:
// <content>" chunks for indexing. Chunk order follows entry order, then field
// order within an entry; map-valued fields are emitted in sorted key order so
// the sequence is reproducible for an unchanged catalog.
func Flatten(entries []Entry) []string {
	var chunks []string
	for _, e := range entries {
		chunks = append(chunks, flattenEntry(e)...)
	}
	return chunks
}

func flattenEntry(e Entry) []string {
	var chunks []string

	name := e.Service
	if name == "" {
		name = placeholderName
	}
	description := e.Description
	if description == "" {
		description = placeholderDescription
	}
	chunks = append(chunks, fmt.Sprintf("%s: %s", name, description))

	for _, key := range sortedKeys(e.Campaigns) {
		c := e.Campaigns[key]
		chunk := fmt.Sprintf("%s: %s", key, c.Description)
		if c.IdealFor != "" {
			chunk += fmt.Sprintf(" - Ideal For: %s", c.IdealFor)
		}
		chunks = append(chunks, chunk)
	}

	for _, key := range sortedKeys(e.Benefits) {
		chunks = append(chunks, fmt.Sprintf("Benefit - %s: %s", key, e.Benefits[key]))
	}

	for _, key := range sortedKeys(e.WhyChooseUs) {
		chunks = append(chunks, fmt.Sprintf("Why Choose Us - %s: %s", key, e.WhyChooseUs[key]))
	}

	for _, faq := range e.FAQs {
		// skip partial items, a question without an answer is not retrievable
		if faq.Question == "" || faq.Answer == "" {
			continue
		}
		chunks = append(chunks, fmt.Sprintf("FAQ - Q: %s A: %s", faq.Question, faq.Answer))
	}

	if e.Contact != nil {
		chunks = append(chunks, flattenContact(*e.Contact)...)
	}

	for _, key := range sortedKeys(e.SEOServices) {
		chunks = append(chunks, fmt.Sprintf("SEO Service - %s: %s", key, e.SEOServices[key].Description))
	}

	for _, step := range e.SEOProcess {
		chunks = append(chunks, fmt.Sprintf("Process Step - %s: %s", step.Step, step.Description))
	}

	return chunks
}

func flattenContact(c Contact) []string {
	var chunks []string
	if c.Phone != "" {
		chunks = append(chunks, fmt.Sprintf("Contact Phone: %s", c.Phone))
	}
	if c.Email != "" {
		chunks = append(chunks, fmt.Sprintf("Contact Email: %s", c.Email))
	}
	if c.Title != "" {
		chunks = append(chunks, fmt.Sprintf("Contact Title: %s", c.Title))
	}
	if c.Description != "" {
		chunks = append(chunks, fmt.Sprintf("About Us: %s", c.Description))
	}
	for _, country := range sortedKeys(c.Offices) {
		chunks = append(chunks, fmt.Sprintf("Office in %s: %s", capitalize(country), c.Offices[country]))
	}
	return chunks
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
