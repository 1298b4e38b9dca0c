package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"declFmt/internal/logger"
	"declFmt/internal/transform"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Advisor asks Gemini to explain a header mismatch in plain language. It is
// strictly advisory: the transform itself never consults it.
type Advisor struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewAdvisor creates an advisor for the given API key and model name.
func NewAdvisor(apiKey, modelName string) (*Advisor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	logger.Info("Initializing diagnosis advisor", "model", modelName)

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		logger.Error("Failed to create Gemini client", "error", err)
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.1) // Low temperature for consistent results

	return &Advisor{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the advisor resources.
func (a *Advisor) Close() error {
	if a.client != nil {
		return a.client.Close()
	}
	return nil
}

// Diagnose sends the expected headers and the observed leading rows to the
// model and returns its short explanation of the likely mismatch.
func (a *Advisor) Diagnose(rep *Report, sch transform.Schema) (string, error) {
	prompt := buildDiagnosisPrompt(rep, sch)

	logger.Info("Requesting AI diagnosis", "file", rep.Path, "prompt_length", len(prompt))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	resp, err := a.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		logger.Error("Gemini API request failed", "error", err)
		return "", fmt.Errorf("failed to generate AI response: %v", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response generated from AI")
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			text.WriteString(string(textPart))
		}
	}

	answer := strings.TrimSpace(text.String())
	if answer == "" {
		return "", fmt.Errorf("no response generated from AI")
	}

	logger.Info("AI diagnosis received", "length", len(answer))
	return answer, nil
}

func buildDiagnosisPrompt(rep *Report, sch transform.Schema) string {
	var b strings.Builder

	b.WriteString(`You are helping debug a customs waybill spreadsheet that failed automated header detection.

The tool looks inside the sheet named "`)
	b.WriteString(sch.SheetName)
	b.WriteString(`" for a row whose non-blank cells exactly equal this sequence:

`)
	for _, h := range sch.InputHeaders {
		b.WriteString(fmt.Sprintf("- %s\n", h))
	}

	if !rep.HasSheet {
		b.WriteString("\nThe sheet was not found. The workbook contains these sheets instead:\n")
		for _, name := range rep.SheetNames {
			b.WriteString(fmt.Sprintf("- %s\n", name))
		}
	} else {
		b.WriteString("\nThe leading rows of the sheet look like this (normalized, blanks dropped):\n")
		for _, c := range rep.Candidates {
			if len(c.Values) == 0 {
				b.WriteString(fmt.Sprintf("row %d: (blank)\n", c.Index))
			} else {
				b.WriteString(fmt.Sprintf("row %d: %s\n", c.Index, strings.Join(c.Values, " | ")))
			}
		}
	}

	b.WriteString(`
INSTRUCTIONS:
1. Explain in one short paragraph the most likely reason no row matched
   (renamed or reordered column, merged header cells, wrong sheet, extra
   title rows are common causes).
2. If a specific column looks renamed, name the observed value and the
   expected header it probably corresponds to.
3. Answer in Chinese.`)

	return b.String()
}

// GeminiAPIKey gets the API key from environment variable
func GeminiAPIKey() string {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		logger.Warn("GEMINI_API_KEY environment variable not set")
	}
	return apiKey
}
