package summarize

import (
	"fmt"

	"yt-brief/models"
)

const defaultPromptTemplate = "You are a summarizing assistant responsible for analyzing the content of YouTube videos. " +
	"%s " +
	"The user will feed you transcriptions but you should always refer to the content in your response as \"the video\". " +
	"Focus on accurately summarizing the main points and key details of the videos. " +
	"Do not comment on the style of the video (e.g., whether it is a voiceover or conversational). " +
	"Do never mention or imply the existence of text, transcription, or any written format. " +
	"Use phrases like \"The video discusses...\" or \"According to the video...\". " +
	"Strive to be the best summarizer possible, providing clear, and informative summaries that exclusively reference the video content."

// DefaultPrompt returns the canned system prompt for a tone. The tone
// clause is the only variable part.
func DefaultPrompt(tone models.Tone) string {
	return fmt.Sprintf(defaultPromptTemplate, tone.Instruction())
}

// BuildPrompt returns the system prompt for a request. A non-empty
// override is used verbatim, with no validation of its content.
func BuildPrompt(tone models.Tone, override string) string {
	if override != "" {
		return override
	}
	return DefaultPrompt(tone)
}
