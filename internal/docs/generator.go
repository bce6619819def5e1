// Package docs generates tailored CVs and cover letters for liked
// listings and serves them back to the user.
package docs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"scope/swipe-service/internal/model"
)

// Generator wraps the Gemini client for document generation.
type Generator struct {
	client    *genai.Client
	modelName string
}

// NewGenerator creates a Generator configured for the Gemini API
// backend. Returns nil without error when apiKey is empty — document
// generation is then disabled and likes simply skip it.
func NewGenerator(ctx context.Context, apiKey, modelName string) (*Generator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Generator{client: client, modelName: modelName}, nil
}

// Model returns the configured model name.
func (g *Generator) Model() string { return g.modelName }

// Generate produces one document of the given kind for a listing,
// grounded on the user's profile.
func (g *Generator) Generate(ctx context.Context, kind string, profile model.Profile, l model.Listing) (string, error) {
	prompt, err := buildPrompt(kind, profile, l)
	if err != nil {
		return "", err
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := CleanResponse(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}
	return output, nil
}

func buildPrompt(kind string, profile model.Profile, l model.Listing) (string, error) {
	switch kind {
	case model.DocKindCV:
		return fmt.Sprintf(cvPrompt, profile.Headline, profile.ResumeText,
			l.Title, l.Company, l.Description), nil
	case model.DocKindCoverLetter:
		return fmt.Sprintf(coverLetterPrompt, profile.Headline, profile.ResumeText,
			l.Title, l.Company, l.Description), nil
	}
	return "", fmt.Errorf("unknown document kind %q", kind)
}

// CleanResponse strips the markdown code fences models like to wrap
// their output in, plus surrounding whitespace.
func CleanResponse(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if i := strings.Index(s, "\n"); i >= 0 {
			s = s[i+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

const cvPrompt = `You are a career assistant. Rewrite the candidate's CV so it is
tailored to the job below. Keep every fact truthful to the source CV —
reorder and rephrase, never invent experience. Output plain text only,
no markdown fences.

CANDIDATE HEADLINE: %s

SOURCE CV:
%s

TARGET ROLE: %s at %s

JOB DESCRIPTION:
%s`

const coverLetterPrompt = `You are a career assistant. Write a short, specific cover letter
(under 250 words) from the candidate below for the job below. Ground
every claim in the source CV. Output plain text only, no markdown
fences and no placeholder brackets.

CANDIDATE HEADLINE: %s

SOURCE CV:
%s

TARGET ROLE: %s at %s

JOB DESCRIPTION:
%s`
