package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"postcraft/internal/core/port"
)

// CandidateCount is the number of posts requested from the model. A reply
// with any other number of entries is discarded.
const CandidateCount = 5

const (
	noInstructions = "No special instructions provided."
	noDescription  = "No product description provided."
)

// BuildPrompt renders the instruction sent to the model.
func BuildPrompt(req port.GenerationRequest) string {
	instructions := strings.TrimSpace(req.Instructions)
	if instructions == "" {
		instructions = noInstructions
	}
	description := strings.TrimSpace(req.ProductDescription)
	if description == "" {
		description = noDescription
	}

	var b strings.Builder
	b.WriteString("You are an expert social media content creator.\n\n")
	fmt.Fprintf(&b, "Generate %d short, catchy marketing posts using the layout style: %q.\n", CandidateCount, req.Layout)
	b.WriteString("Each post should follow the given layout and be suitable for platforms like Instagram or LinkedIn.\n\n")
	fmt.Fprintf(&b, "Instructions from user:\n%s\n\n", instructions)
	fmt.Fprintf(&b, "Product description:\n%s\n\n", description)
	fmt.Fprintf(&b, "Respond with a JSON array of %d strings (text only). No formatting or explanations.", CandidateCount)
	return b.String()
}

// ParseCandidates decodes the model's reply into exactly CandidateCount
// strings. A surrounding markdown code fence is tolerated.
func ParseCandidates(text string) ([]string, error) {
	text = stripCodeFence(strings.TrimSpace(text))
	if text == "" {
		return nil, fmt.Errorf("empty payload")
	}
	var out []string
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}
	if len(out) != CandidateCount {
		return nil, fmt.Errorf("expected %d candidates, got %d", CandidateCount, len(out))
	}
	return out, nil
}

func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	// drop the opening fence line, which may carry a language tag
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[i+1:]
	} else {
		return ""
	}
	text = strings.TrimSpace(text)
	return strings.TrimSpace(strings.TrimSuffix(text, "```"))
}
