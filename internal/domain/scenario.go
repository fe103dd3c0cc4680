package domain

import "strings"

const (
	// DefaultShots is the number of shot ideas requested per scenario when
	// the caller leaves it unset.
	DefaultShots = 6
	MinShots     = 1
	MaxShots     = 12

	DefaultFocus = 3
	MinFocus     = 1
	MaxFocus     = 5

	// MinProductImageData guards against obviously truncated inline payloads.
	MinProductImageData = 10

	DefaultImageMIME = "image/png"
)

// Scenario is a single AI-authored creative concept for one marketing photo.
type Scenario struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Setting  string   `json:"setting,omitempty"`
	ShotList []string `json:"shotList,omitempty"`
	Hook     string   `json:"hook,omitempty"`
}

// GenerationSettings are the user-chosen rendering preferences applied
// uniformly across all scenarios of one image-generation request. They pass
// through the server unmodified apart from clamping the numeric ranges.
type GenerationSettings struct {
	FocusOnProduct  int    `json:"focusOnProduct"`
	Shots           int    `json:"shots"`
	VisualStyle     string `json:"visualStyle,omitempty"`
	Tone            string `json:"tone,omitempty"`
	Orientation     string `json:"orientation,omitempty"`
	Quality         string `json:"quality,omitempty"`
	AddMotion       bool   `json:"addMotion,omitempty"`
	RetouchProduct  bool   `json:"retouchProduct,omitempty"`
	IncludeCaptions bool   `json:"includeCaptions,omitempty"`
}

// Normalize applies defaults and clamps numeric fields into range.
func (s *GenerationSettings) Normalize() {
	if s.FocusOnProduct == 0 {
		s.FocusOnProduct = DefaultFocus
	}
	s.FocusOnProduct = clamp(s.FocusOnProduct, MinFocus, MaxFocus)
	if s.Shots == 0 {
		s.Shots = DefaultShots
	}
	s.Shots = clamp(s.Shots, MinShots, MaxShots)
}

// ProductImage carries the uploaded product photo as inline-encoded bytes.
type ProductImage struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType,omitempty"`
}

// Normalize applies the default MIME type.
func (p *ProductImage) Normalize() {
	if strings.TrimSpace(p.MimeType) == "" {
		p.MimeType = DefaultImageMIME
	}
}

// GeneratedImage pairs rendered inline image bytes with the scenario that
// produced them.
type GeneratedImage struct {
	MimeType string   `json:"mimeType"`
	Data     string   `json:"data"`
	Scenario Scenario `json:"scenario"`
}

// ScenarioBrief is the structured creative brief sent to the assistant.
type ScenarioBrief struct {
	ThreadID        string   `json:"threadId"`
	Audience        string   `json:"audience"`
	ProductDetails  string   `json:"productDetails"`
	ProductName     string   `json:"productName,omitempty"`
	Niche           string   `json:"niche,omitempty"`
	Tone            string   `json:"tone,omitempty"`
	VisualStyle     string   `json:"visualStyle,omitempty"`
	Shots           int      `json:"shots,omitempty"`
	FocusOnProduct  int      `json:"focusOnProduct,omitempty"`
	AdditionalNotes []string `json:"additionalNotes,omitempty"`
}

// Normalize applies defaults and clamps numeric fields into range.
func (b *ScenarioBrief) Normalize() {
	if b.Shots == 0 {
		b.Shots = DefaultShots
	}
	b.Shots = clamp(b.Shots, MinShots, MaxShots)
	if b.FocusOnProduct == 0 {
		b.FocusOnProduct = DefaultFocus
	}
	b.FocusOnProduct = clamp(b.FocusOnProduct, MinFocus, MaxFocus)
}

// Validate reports every violated field at once.
func (b *ScenarioBrief) Validate() error {
	var v ValidationError
	if strings.TrimSpace(b.ThreadID) == "" {
		v.Add("threadId is required")
	}
	if strings.TrimSpace(b.Audience) == "" {
		v.Add("audience is required")
	}
	if strings.TrimSpace(b.ProductDetails) == "" {
		v.Add("productDetails is required")
	}
	return v.OrNil()
}

// ValidateScenario checks the fields every consumer of a scenario relies on.
func ValidateScenario(s Scenario, v *ValidationError, prefix string) {
	if strings.TrimSpace(s.ID) == "" {
		v.Add(prefix + ".id is required")
	}
	if strings.TrimSpace(s.Title) == "" {
		v.Add(prefix + ".title is required")
	}
	if strings.TrimSpace(s.Summary) == "" {
		v.Add(prefix + ".summary is required")
	}
}

// ValidateBatch enforces the scenario-batch contract: at least one scenario,
// each carrying the required fields.
func ValidateBatch(scenarios []Scenario) error {
	var v ValidationError
	if len(scenarios) == 0 {
		v.Add("scenarios must contain at least one entry")
	}
	for i, s := range scenarios {
		ValidateScenario(s, &v, indexed("scenarios", i))
	}
	return v.OrNil()
}

// ValidateProductImage enforces the inline image contract.
func ValidateProductImage(p ProductImage) error {
	var v ValidationError
	if len(strings.TrimSpace(p.Data)) < MinProductImageData {
		v.Add("productImage.data must contain inline image bytes")
	}
	return v.OrNil()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
