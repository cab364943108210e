package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini generates with the Google Gemini API
type Gemini struct {
	opts Options
}

func NewGemini(opts Options) *Gemini {
	opts.APIKey = strings.TrimSpace(opts.APIKey)
	opts.Model = strings.TrimSpace(opts.Model)
	return &Gemini{opts: opts}
}

func (g *Gemini) Name() string { return "gemini" }

func (g *Gemini) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	cl, err := genai.NewClient(ctx, option.WithAPIKey(g.opts.APIKey))
	if err != nil {
		return "", fmt.Errorf("gemini: new client: %w", err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(g.opts.Model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(float32(g.opts.Temperature)),
		ResponseMIMEType: "application/json",
	}
	if g.opts.MaxTokens > 0 {
		m.GenerationConfig.MaxOutputTokens = ptrInt32(int32(g.opts.MaxTokens))
	}
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}
	return firstText(resp), nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		var b strings.Builder
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		if b.Len() > 0 {
			return b.String()
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }

func ptrInt32(v int32) *int32 { return &v }
