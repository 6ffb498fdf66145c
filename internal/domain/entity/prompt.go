package entity

import "fmt"

type Prompt struct {
	ID     string
	System string
	Text   string
}

const mockAPISystem = "You are a mock API generator. Return only raw JSON with no commentary, no explanations and no markdown formatting."

const mockAPIText = "Generate a mock API specification for the following description: %s\n" +
	"Return a single JSON object with a top-level \"results\" array containing at least 5 items. " +
	"Every item must include at least these fields: id, name, description, category, price. " +
	"Values should be realistic for the described domain. Output the JSON object only."

var MockAPIPrompt = Prompt{
	ID:     "mock-api",
	System: mockAPISystem,
	Text:   mockAPIText,
}

// UserMessage renders the user-facing part of the prompt for a description.
func (p Prompt) UserMessage(description string) string {
	return fmt.Sprintf(p.Text, description)
}
