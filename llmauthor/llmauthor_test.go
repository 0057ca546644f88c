package llmauthor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coffee-fueled-dev/statespace/llmauthor"
)

func TestBuildPromptInterpolatesDescription(t *testing.T) {
	prompt := llmauthor.BuildPrompt("a card game with a deck, a hand, and a discard pile")
	require.Contains(t, prompt, "a card game with a deck, a hand, and a discard pile")
	require.Contains(t, prompt, "elementBank")
}

func TestParseResponseAcceptsWellFormedYAML(t *testing.T) {
	doc := `
elementBank: ["1"]
containers:
  - id: A
    capacity: 1
    handler: top
    transitions:
      - target: B
  - id: B
    capacity: 1
    handler: top
`
	cfg, err := llmauthor.ParseResponse(doc)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.N())
}

func TestParseResponseRejectsUnregisteredHandler(t *testing.T) {
	doc := `
elementBank: ["1"]
containers:
  - id: A
    capacity: 1
    handler: teleport
`
	_, err := llmauthor.ParseResponse(doc)
	require.Error(t, err)
}
