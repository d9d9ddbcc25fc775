package roadmap

import (
	"fmt"
	"strings"

	"skillmatch/internal/domain/job"
)

const flowchartHeader = "flowchart TD"

// Roadmap is an ordered, linear sequence of learning steps towards a job.
type Roadmap struct {
	Title    string
	Steps    []string
	Fallback bool
}

// Generate looks up the roadmap for jobTitle in the catalog. Unknown titles get
// a generic five-step roadmap that mentions the title as given.
func Generate(c *job.Catalog, jobTitle string) Roadmap {
	if steps, ok := c.Roadmap(jobTitle); ok {
		return Roadmap{Title: jobTitle, Steps: steps}
	}
	return Roadmap{Title: jobTitle, Steps: fallbackSteps(jobTitle), Fallback: true}
}

func fallbackSteps(jobTitle string) []string {
	return []string{
		fmt.Sprintf("Research the role of %s", jobTitle),
		"Identify required skills and knowledge",
		"Take relevant courses and certifications",
		"Build projects to gain experience",
		"Apply for jobs and prepare for interviews",
	}
}

// Mermaid renders the roadmap as a top-down flowchart where each step links to
// the next one. Step text goes into the node label as is.
func (r Roadmap) Mermaid() string {
	lines := make([]string, 0, 1+2*len(r.Steps))
	lines = append(lines, flowchartHeader)
	for i, step := range r.Steps {
		id := NodeID(i + 1)
		lines = append(lines, fmt.Sprintf(`    %s["%s"]`, id, step))
		if i > 0 {
			lines = append(lines, fmt.Sprintf("    %s --> %s", NodeID(i), id))
		}
	}
	return strings.Join(lines, "\n")
}

func NodeID(n int) string {
	return fmt.Sprintf("step%d", n)
}
