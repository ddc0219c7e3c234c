package tutor

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/jeffreywbertke/DC/internal/circuit"
)

const systemPrompt = `You are a helpful, encouraging high school physics tutor. Your goal is to explain DC circuits simply. You always use clear, numbered steps and never provide over-complicated technical jargon.`

var userTemplate = template.Must(template.New("explain").Parse(`The student needs help finding the TOTAL {{.Quantity}} for this {{.Topology}} circuit.

CIRCUIT PARAMETERS:
- Battery: {{.Voltage}}V
- Resistors: {{.Resistors}}
- Calculated Total Resistance (Req): {{.Req}}Ω
- Calculated Total Current (Itot): {{.Itot}}A

Please provide the solution in exactly 4 numbered steps:
1. GIVEN: List the known values relevant to the problem.
2. FORMULA: State the specific physics formula used (e.g., Ohm's Law or Resistance combination).
3. CALCULATION: Show the simple math of plugging the numbers in.
4. RESULT: The final answer with units.

Keep the language very simple, like a high school tutor. Avoid complex markdown, just use basic text and numbers.`))

type promptData struct {
	Quantity  string
	Topology  string
	Voltage   string
	Resistors string
	Req       string
	Itot      string
}

func buildUserMessage(p circuit.Problem) (string, error) {
	labels := make([]string, len(p.Circuit.Components))
	for i, c := range p.Circuit.Components {
		labels[i] = fmt.Sprintf("%s=%gΩ", c.Label, c.Resistance)
	}

	data := promptData{
		Quantity:  p.Target.Quantity(),
		Topology:  p.Circuit.Topology.String(),
		Voltage:   fmt.Sprintf("%g", p.Circuit.Voltage),
		Resistors: strings.Join(labels, ", "),
		Req:       fmt.Sprintf("%.2f", p.Result.TotalResistance),
		Itot:      fmt.Sprintf("%.2f", p.Result.TotalCurrent),
	}

	var buf bytes.Buffer
	if err := userTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
