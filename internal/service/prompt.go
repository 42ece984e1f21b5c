package service

import "fmt"

// DefaultLocationName is the synthesized fallback used when reverse
// geocoding produces nothing usable.
func DefaultLocationName(latitude, longitude float64) string {
	return fmt.Sprintf("Coordinates %.6f, %.6f", latitude, longitude)
}

// BuildPrompt renders the instruction sent to the generative model. The
// template fixes the output contract: a single JSON object with exactly a
// "summary" key and a "details" key.
func BuildPrompt(displayName string, latitude, longitude float64) string {
	return fmt.Sprintf(
		"You are a historical geography expert. The user is observing a location identified as "+
			"'%s' (precise coordinates: latitude=%v, longitude=%v). "+
			"Provide historical information and a concise summary about this specific location "+
			"or the nearest significant historical point of interest relevant to it. "+
			"Focus on information suitable for an Augmented Reality overlay. "+
			"Respond ONLY with a single, valid JSON object containing exactly two keys: "+
			`"summary" (string: a brief 1-2 sentence summary) and `+
			`"details" (string or list of strings: slightly more detailed historical points or facts). `+
			`Strictly adhere to this JSON format: {"summary": "Example summary.", "details": ["Detail 1.", "Detail 2."]}`,
		displayName, latitude, longitude,
	)
}
