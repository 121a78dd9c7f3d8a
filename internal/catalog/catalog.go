// Package catalog loads the service catalog and flattens it into retrievable
// text chunks. The catalog is read once at startup and never reloaded.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Campaign describes one campaign type offered under a service.
type Campaign struct {
	Description string `json:"description"`
	IdealFor    string `json:"idealFor"`
}

// FAQ is one question/answer pair. Items missing either side are skipped
// during flattening.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Contact holds the contact block of an entry. Offices maps country to
// office address.
type Contact struct {
	Phone       string            `json:"phone"`
	Email       string            `json:"email"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Offices     map[string]string `json:"offices"`
}

// SubService is a named sub-offering of a service.
type SubService struct {
	Description string `json:"description"`
}

// ProcessStep is one step of an ordered delivery process.
type ProcessStep struct {
	Step        string `json:"step"`
	Description string `json:"description"`
}

// Entry is one service offering. Every field except Service and Description
// is optional; absent fields simply produce no chunks. Unknown catalog fields
// are ignored so new fields never break loading.
type Entry struct {
	Service     string                `json:"service"`
	Description string                `json:"description"`
	Campaigns   map[string]Campaign   `json:"typesOfCampaigns"`
	Benefits    map[string]string     `json:"benefits"`
	WhyChooseUs map[string]string     `json:"whyChooseUs"`
	FAQs        []FAQ                 `json:"faqs"`
	Contact     *Contact              `json:"contact"`
	SEOServices map[string]SubService `json:"seoServices"`
	SEOProcess  []ProcessStep         `json:"seoProcess"`
}

// Load reads and decodes the catalog file. The file must contain a non-empty
// JSON list of entries; anything else is an error and the caller is expected
// to treat it as fatal.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog: catalog must be a JSON list of services: %w", err)
	}
	if len(entries) == 0 {
		return nil, errors.New("catalog contains no services")
	}
	return entries, nil
}
