package stage

import (
	"errors"
	"strings"
)

// ErrUnknownKind indicates a stage kind outside the fixed sequence.
var ErrUnknownKind = errors.New("unknown stage kind")

// RawInput carries captured input for one stage before normalization. Exactly
// the fields for the submitted kind are consulted.
type RawInput struct {
	// Voice
	PromptsRecorded int     `json:"prompts_recorded,omitempty"`
	SpeechSeconds   float64 `json:"speech_seconds,omitempty"`

	// Memory
	Recalled []string `json:"recalled,omitempty"`

	// Survey: question index -> selected option index
	Answers map[int]int `json:"answers,omitempty"`
}

// Normalize converts raw captured input into the canonical payload for kind.
// It is pure: it fills in the canonical prompt, word and question sets and
// trims user input, but never judges completeness.
func Normalize(kind Kind, raw RawInput) (Payload, error) {
	switch kind {
	case KindVoice:
		return normalizeVoice(raw), nil
	case KindMemory:
		return normalizeMemory(raw), nil
	case KindSurvey:
		return normalizeSurvey(raw), nil
	}
	return nil, ErrUnknownKind
}

func normalizeVoice(raw RawInput) VoicePayload {
	recorded := raw.PromptsRecorded
	if recorded < 0 {
		recorded = 0
	}
	speech := raw.SpeechSeconds
	if speech < 0 {
		speech = 0
	}
	return VoicePayload{
		PromptsRequired: len(voicePrompts),
		PromptsRecorded: recorded,
		SpeechSeconds:   speech,
		AllottedSeconds: float64(recorded * RecordingCapSeconds),
	}
}

func normalizeMemory(raw RawInput) MemoryPayload {
	recalled := make([]string, 0, len(raw.Recalled))
	for _, word := range raw.Recalled {
		word = strings.TrimSpace(word)
		if word != "" {
			recalled = append(recalled, word)
		}
	}
	return MemoryPayload{
		Targets:  TargetWords(),
		Recalled: recalled,
	}
}

func normalizeSurvey(raw RawInput) SurveyPayload {
	answers := make(map[int]int, len(raw.Answers))
	for idx, sev := range raw.Answers {
		answers[idx] = sev
	}
	return SurveyPayload{
		Answers:       answers,
		QuestionCount: len(surveyQuestions),
	}
}
