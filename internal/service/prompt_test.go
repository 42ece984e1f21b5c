package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arlens/place-history-service/internal/service"
)

func TestBuildPromptEmbedsLocationAndCoordinates(t *testing.T) {
	prompt := service.BuildPrompt("1600 Pennsylvania Ave NW, Washington, DC 20500, USA", 38.8904, -77.0023)

	assert.Contains(t, prompt, "'1600 Pennsylvania Ave NW, Washington, DC 20500, USA'")
	assert.Contains(t, prompt, "latitude=38.8904")
	assert.Contains(t, prompt, "longitude=-77.0023")
	assert.Contains(t, prompt, `"summary"`)
	assert.Contains(t, prompt, `"details"`)
	assert.Contains(t, prompt, "Augmented Reality")
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	a := service.BuildPrompt("Place", 1.5, 2.5)
	b := service.BuildPrompt("Place", 1.5, 2.5)

	assert.Equal(t, a, b)
}

func TestDefaultLocationNameFixedPrecision(t *testing.T) {
	assert.Equal(t, "Coordinates 38.890400, -77.002300", service.DefaultLocationName(38.8904, -77.0023))
	assert.Equal(t, "Coordinates 0.000000, 0.000000", service.DefaultLocationName(0, 0))
}
