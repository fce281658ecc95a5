package openai

import (
	"fmt"
	"strings"
)

// VideoContext is the per video framing handed to the model
type VideoContext struct {
	Title       string
	Channel     string
	Description string
}

// CommentLine is one numbered comment in the prompt
// Index must match the caller's comment metadata table so quotes can be
// traced back after parsing
type CommentLine struct {
	Index int
	Text  string
	Likes int
}

// PromptInput carries everything BuildPrompt needs
type PromptInput struct {
	Query        string
	Videos       []VideoContext
	Comments     []CommentLine
	Instructions string
	MaxQuoteLen  int
}

// BuildPrompt renders the analysis prompt
// The model is asked for a bare JSON array so parsing stays mechanical
func BuildPrompt(in PromptInput) string {
	var b strings.Builder

	b.WriteString("You are a consumer insights analyst. Analyze YouTube content about: ")
	b.WriteString(in.Query)
	b.WriteString("\n\nVIDEOS:\n")
	for _, v := range in.Videos {
		fmt.Fprintf(&b, "- %q by %s", v.Title, v.Channel)
		if v.Description != "" {
			fmt.Fprintf(&b, ": %s", v.Description)
		}
		b.WriteByte('\n')
	}

	b.WriteString("\nCOMMENTS:\n")
	for _, c := range in.Comments {
		fmt.Fprintf(&b, "[%d] (%d likes) %s\n", c.Index, c.Likes, c.Text)
	}

	if in.Instructions != "" {
		b.WriteString("\nADDITIONAL INSTRUCTIONS:\n")
		b.WriteString(in.Instructions)
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, `
Extract the most decision-relevant quotes. Respond with ONLY a JSON array, no prose, no code fences. Each element:
{
  "quote": "verbatim quote, at most %d characters",
  "sentiment": "positive" | "negative" | "neutral",
  "theme": "short theme label",
  "purchase_intent": "high" | "medium" | "low" | "none",
  "confidence_score": 0.0 to 1.0,
  "source_type": "video_title" | "video_description" | "comment",
  "comment_index": number from the [N] markers when source_type is "comment", otherwise null
}
`, in.MaxQuoteLen)

	return b.String()
}
