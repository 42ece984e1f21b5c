package handlers

// DescriptionRequest is the inbound payload. Pointer fields distinguish an
// absent coordinate from a legitimate zero value. Altitude and Quaternion
// are accepted for forward compatibility with AR clients but unused.
type DescriptionRequest struct {
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	Altitude   *float64  `json:"altitude,omitempty"`
	Quaternion []float64 `json:"quaternion,omitempty"`
}

// DegradedResponse is the diagnostic body returned with HTTP 200 when the
// model's output could not be normalized into the answer shape.
type DegradedResponse struct {
	RawResponse        string `json:"raw_response"`
	Warning            string `json:"warning"`
	ErrorDetails       string `json:"error_details"`
	DeterminedLocation string `json:"determined_location"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
