package models

// Tone is a named style preset controlling the phrasing instructions
// given to the summarization model.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFunny        Tone = "funny"
	ToneBrisk        Tone = "brisk"
	ToneSerious      Tone = "serious"
	ToneGenZ         Tone = "genz"
)

var toneInstructions = map[Tone]string{
	ToneProfessional: "Use a professional and formal tone.",
	ToneFunny:        "Be humorous and entertaining in your summary.",
	ToneBrisk:        "Be concise and to-the-point.",
	ToneSerious:      "Maintain a serious and analytical tone.",
	ToneGenZ:         "Use Gen Z slang and casual language, including modern internet expressions.",
}

var toneLabels = map[Tone]string{
	ToneProfessional: "Professional",
	ToneFunny:        "Funny",
	ToneBrisk:        "Brisk",
	ToneSerious:      "Serious",
	ToneGenZ:         "Gen Z",
}

// Tones lists all tones in display order.
func Tones() []Tone {
	return []Tone{ToneProfessional, ToneFunny, ToneBrisk, ToneSerious, ToneGenZ}
}

// Valid reports whether t is one of the known tones.
func (t Tone) Valid() bool {
	_, ok := toneInstructions[t]
	return ok
}

// Instruction returns the tone's instruction clause. Unknown tones fall
// back to the professional clause.
func (t Tone) Instruction() string {
	if instruction, ok := toneInstructions[t]; ok {
		return instruction
	}
	return toneInstructions[ToneProfessional]
}

// Label returns the tone's human-readable name.
func (t Tone) Label() string {
	if label, ok := toneLabels[t]; ok {
		return label
	}
	return string(t)
}
