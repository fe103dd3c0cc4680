package assistant

import (
	"fmt"
	"strings"

	"studio/internal/domain"
)

// BuildBrief composes the single natural-language message posted on the
// thread. The closing instruction pins the response contract: exactly six
// scenarios, raw JSON, no markdown fences. Assistants ignore the fence rule
// often enough that the response is still de-fenced before parsing.
func BuildBrief(brief domain.ScenarioBrief) string {
	sb := &strings.Builder{}
	sb.WriteString("You are a creative director planning marketing photo shoots for a physical product.\n")
	fmt.Fprintf(sb, "Target audience: %s\n", strings.TrimSpace(brief.Audience))
	fmt.Fprintf(sb, "Product details: %s\n", strings.TrimSpace(brief.ProductDetails))
	if name := strings.TrimSpace(brief.ProductName); name != "" {
		fmt.Fprintf(sb, "Product name: %s\n", name)
	}
	if niche := strings.TrimSpace(brief.Niche); niche != "" {
		fmt.Fprintf(sb, "Niche: %s\n", niche)
	}
	if tone := strings.TrimSpace(brief.Tone); tone != "" {
		fmt.Fprintf(sb, "Tone: %s\n", tone)
	}
	if style := strings.TrimSpace(brief.VisualStyle); style != "" {
		fmt.Fprintf(sb, "Visual style: %s\n", style)
	}
	fmt.Fprintf(sb, "Shots per scenario: %d\n", brief.Shots)
	fmt.Fprintf(sb, "Focus on product (1-5): %d\n", brief.FocusOnProduct)
	for _, note := range brief.AdditionalNotes {
		if note = strings.TrimSpace(note); note != "" {
			fmt.Fprintf(sb, "Note: %s\n", note)
		}
	}
	sb.WriteString("Respond with exactly six scenarios as raw JSON matching this schema exactly: ")
	sb.WriteString(`{"scenarios":[{"id":string,"title":string,"summary":string,"setting":string,"shotList":[string],"hook":string}]}`)
	sb.WriteString(". Every id must be unique. Do not wrap the JSON in markdown code fences and do not add commentary.")
	return sb.String()
}
