package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultGenerativeBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Outcome tags the result of a generateContent call so callers can handle
// every upstream shape exhaustively instead of guessing from error strings.
type Outcome int

const (
	// OutcomeText means the model produced usable output text.
	OutcomeText Outcome = iota
	// OutcomeBlocked means the upstream refused to answer (safety filtering).
	OutcomeBlocked
	// OutcomeMalformed means the upstream answered 200 but the response
	// carried no output text at all.
	OutcomeMalformed
)

// Generation is the tagged result of a model call. Text is set only for
// OutcomeText; Detail carries the block reason or shape description
// otherwise.
type Generation struct {
	Outcome Outcome
	Text    string
	Detail  string
}

// GenerativeProvider sends a prompt to a hosted language model and returns
// its raw, unparsed output. A non-nil error covers transport and API-level
// failures only; content blocking and shape surprises come back as tagged
// Generation values.
type GenerativeProvider interface {
	GenerateContent(ctx context.Context, prompt string) (Generation, error)
}

type generativeService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGenerativeService(apiKey, model string) GenerativeProvider {
	return &generativeService{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGenerativeBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// NewGenerativeServiceWithBaseURL is used by tests to point the client at a
// fake upstream.
func NewGenerativeServiceWithBaseURL(apiKey, model, baseURL string) GenerativeProvider {
	return &generativeService{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// finish reasons that mean the output was withheld rather than produced
func isBlockedFinishReason(reason string) bool {
	switch strings.ToUpper(reason) {
	case "SAFETY", "BLOCKLIST", "PROHIBITED_CONTENT", "RECITATION":
		return true
	}
	return false
}

func (s *generativeService) GenerateContent(ctx context.Context, prompt string) (Generation, error) {
	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return Generation{}, fmt.Errorf("marshaling generate request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Generation{}, fmt.Errorf("creating generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Generation{}, fmt.Errorf("generate request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Generation{}, fmt.Errorf("reading generate response: %w", err)
	}

	var apiResp generateResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return Generation{}, fmt.Errorf("generate API returned malformed JSON: %w", err)
	}

	if apiResp.Error != nil {
		return Generation{}, fmt.Errorf("generate API error: %s (code %d, status %s)",
			apiResp.Error.Message, apiResp.Error.Code, apiResp.Error.Status)
	}

	if resp.StatusCode != http.StatusOK {
		return Generation{}, fmt.Errorf("generate API returned status code: %d", resp.StatusCode)
	}

	if apiResp.PromptFeedback.BlockReason != "" {
		return Generation{
			Outcome: OutcomeBlocked,
			Detail:  fmt.Sprintf("prompt blocked: %s", apiResp.PromptFeedback.BlockReason),
		}, nil
	}

	if len(apiResp.Candidates) == 0 {
		return Generation{
			Outcome: OutcomeMalformed,
			Detail:  "response contains no candidates",
		}, nil
	}

	candidate := apiResp.Candidates[0]
	if isBlockedFinishReason(candidate.FinishReason) {
		return Generation{
			Outcome: OutcomeBlocked,
			Detail:  fmt.Sprintf("candidate withheld: %s", candidate.FinishReason),
		}, nil
	}

	if len(candidate.Content.Parts) == 0 || candidate.Content.Parts[0].Text == "" {
		return Generation{
			Outcome: OutcomeMalformed,
			Detail:  "candidate contains no output text",
		}, nil
	}

	var sb strings.Builder
	for _, p := range candidate.Content.Parts {
		sb.WriteString(p.Text)
	}

	return Generation{Outcome: OutcomeText, Text: sb.String()}, nil
}
