package summarize

import (
	"strings"
	"testing"

	"yt-brief/models"
)

func TestDefaultPromptDeterministic(t *testing.T) {
	first := DefaultPrompt(models.ToneFunny)
	second := DefaultPrompt(models.ToneFunny)
	if first != second {
		t.Error("expected DefaultPrompt to be deterministic for the same tone")
	}
}

func TestDefaultPromptContainsToneClause(t *testing.T) {
	for _, tone := range models.Tones() {
		t.Run(string(tone), func(t *testing.T) {
			prompt := DefaultPrompt(tone)
			if !strings.Contains(prompt, tone.Instruction()) {
				t.Errorf("prompt for %s missing its instruction clause", tone)
			}
			if !strings.Contains(prompt, "summarizing assistant") {
				t.Error("prompt missing the fixed template text")
			}
		})
	}
}

func TestDefaultPromptsDifferAcrossTones(t *testing.T) {
	if DefaultPrompt(models.ToneFunny) == DefaultPrompt(models.ToneSerious) {
		t.Error("expected different tones to produce different prompts")
	}
}

func TestBuildPromptOverride(t *testing.T) {
	override := "Summarize in exactly three haikus."

	for _, tone := range models.Tones() {
		if got := BuildPrompt(tone, override); got != override {
			t.Errorf("BuildPrompt(%s, override) = %q, want the override verbatim", tone, got)
		}
	}
}

func TestBuildPromptDefault(t *testing.T) {
	if got := BuildPrompt(models.ToneBrisk, ""); got != DefaultPrompt(models.ToneBrisk) {
		t.Error("expected empty override to produce the default prompt")
	}
}
