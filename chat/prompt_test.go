package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_ComposesModeAndTask(t *testing.T) {
	prompt := BuildPrompt("how's my day going?", "sarcastic", "joke")

	assert.Contains(t, prompt, modes["sarcastic"])
	assert.Contains(t, prompt, tasks["joke"])
	assert.Contains(t, prompt, "User: how's my day going?")
	assert.True(t, strings.HasSuffix(prompt, "Bot:"))
}

func TestBuildPrompt_UnknownKeysFallBack(t *testing.T) {
	prompt := BuildPrompt("hello", "grumpy", "sonnet")

	assert.Contains(t, prompt, modes["normal"])
	assert.Contains(t, prompt, tasks["compliment"])
}
