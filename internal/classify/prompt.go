package classify

import "strings"

// Package classify holds the SOP-grounded classification building blocks:
// prompt construction for the model call and recovery of the structured
// result from the model's free-text reply.

const (
	promptInstructions = `Based on the following SOP, determine if the feature description qualifies for Slow Release.
Provide a clear yes/no answer, justification, and cite relevant SOP sections.

Additionally, extract and return any available metadata from the SOP, such as:
- SOP Title
- SOP Version
- Effective Date
- Author or Owner
- Any other relevant metadata

`

	promptSchema = `Respond ONLY with a valid JSON object, no explanation, no markdown, no code block.
Format your response as JSON:
{
  "isSlowRelease": boolean,
  "justification": string,
  "referencedSections": string[],
  "metadata": {
    "title": string,
    "version": string,
    "effectiveDate": string,
    "author": string,
    "other": string
  }
}`
)

// BuildPrompt produces the single prompt string sent to the model. It is
// deterministic and pure: both texts pass through verbatim, with no
// truncation or sanitization. Prompt size is therefore unbounded; cost
// control is the caller's concern.
func BuildPrompt(sopText, featureText string) string {
	var b strings.Builder
	b.Grow(len(promptInstructions) + len(promptSchema) + len(sopText) + len(featureText) + 64)
	b.WriteString(promptInstructions)
	b.WriteString("SOP:\n")
	b.WriteString(sopText)
	b.WriteString("\n\nFeature Description:\n")
	b.WriteString(featureText)
	b.WriteString("\n\n")
	b.WriteString(promptSchema)
	return b.String()
}
