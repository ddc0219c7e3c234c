package tutor

import "github.com/jeffreywbertke/DC/internal/llm"

func step(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

// ExplanationSchema defines the JSON shape of a four-step explanation.
var ExplanationSchema = &llm.Schema{
	Name:        "circuit-explanation",
	Description: "A four step walkthrough of a DC circuit problem",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"given":       step("The known values relevant to the problem"),
			"formula":     step("The physics formula used, such as Ohm's Law or a resistance combination rule"),
			"calculation": step("The numbers plugged into the formula"),
			"result":      step("The final answer with units"),
		},
		"required":             []any{"given", "formula", "calculation", "result"},
		"additionalProperties": false,
	},
}
