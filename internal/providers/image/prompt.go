package image

import (
	"fmt"
	"strings"

	"studio/internal/domain"
)

// BuildScenarioPrompt composes the natural-language prompt for one scenario.
// Every settings field becomes a human-readable instruction line so the
// request is fully self-describing to the model.
func BuildScenarioPrompt(scenario domain.Scenario, productName string, settings domain.GenerationSettings) string {
	sb := &strings.Builder{}
	sb.WriteString("Create a photorealistic marketing photo of the product shown in the attached reference image.\n")
	if name := strings.TrimSpace(productName); name != "" {
		fmt.Fprintf(sb, "Product: %s\n", name)
	}
	fmt.Fprintf(sb, "Scenario: %s. %s\n", strings.TrimSpace(scenario.Title), strings.TrimSpace(scenario.Summary))
	if setting := strings.TrimSpace(scenario.Setting); setting != "" {
		fmt.Fprintf(sb, "Setting: %s\n", setting)
	}
	if len(scenario.ShotList) > 0 {
		sb.WriteString("Shot ideas:\n")
		for _, shot := range scenario.ShotList {
			if shot = strings.TrimSpace(shot); shot != "" {
				fmt.Fprintf(sb, "- %s\n", shot)
			}
		}
	}
	if hook := strings.TrimSpace(scenario.Hook); hook != "" {
		fmt.Fprintf(sb, "Hook: %s\n", hook)
	}

	if tone := strings.TrimSpace(settings.Tone); tone != "" {
		fmt.Fprintf(sb, "Tone: %s\n", tone)
	}
	if style := strings.TrimSpace(settings.VisualStyle); style != "" {
		fmt.Fprintf(sb, "Visual style: %s\n", style)
	}
	if orientation := strings.TrimSpace(settings.Orientation); orientation != "" {
		fmt.Fprintf(sb, "Orientation: %s\n", orientation)
	}
	if quality := strings.TrimSpace(settings.Quality); quality != "" {
		fmt.Fprintf(sb, "Quality: %s\n", quality)
	}
	fmt.Fprintf(sb, "Focus level (1-5): %d\n", settings.FocusOnProduct)
	if settings.AddMotion {
		sb.WriteString("Add subtle motion-friendly composition cues.\n")
	}
	if settings.RetouchProduct {
		sb.WriteString("Retouch the product surface: remove dust, glare and fingerprints while keeping it true to the reference.\n")
	}
	if settings.IncludeCaptions {
		sb.WriteString("Leave clean negative space suitable for caption overlays.\n")
	}
	sb.WriteString("Keep the product shape, colors and branding faithful to the reference image.")
	return sb.String()
}
