// Package llmauthor authors a state-space configuration from a natural
// language system description: it templates a prompt asking a model to
// emit a YAML configuration, then parses whatever the model returns. No
// network client is implemented here — a host wires its own model call
// between BuildPrompt and ParseResponse, the same way the teacher's
// Replace function only templates text and leaves execution to its
// caller.
package llmauthor

import (
	"github.com/projectdiscovery/fasttemplate"

	"github.com/coffee-fueled-dev/statespace/config"
)

const promptTemplate = `You are authoring a state-space configuration for a discrete simulation.

Produce a single YAML document with exactly these top-level keys:
  elementBank: an ordered list of distinct string tags, one per element.
  containers: an ordered list of {id, capacity, handler, initialFill (optional),
    transitions}, where handler is one of: start, top, end, bottom, any, middle,
    stack. Each transition is {target, from (optional), to (optional), moveType
    (optional), cost (optional)}; from/to default to the source/target
    container's own handler when omitted.

System description:
{{description}}

Respond with only the YAML document, no commentary, no code fences.`

// BuildPrompt renders the authoring prompt for a free-text system
// description.
func BuildPrompt(description string) string {
	return fasttemplate.ExecuteStringStd(promptTemplate, "{{", "}}", map[string]interface{}{
		"description": description,
	})
}

// ParseResponse parses a model's YAML response into a validated Config.
// Any schema or semantic violation — unregistered handler, dangling
// transition target, oversized initial fill — surfaces as the same
// config-invalid error Load would return for a hand-written document.
func ParseResponse(yamlDoc string) (*config.Config, error) {
	return config.ParseBytes([]byte(yamlDoc))
}
