package stage

// Kind identifies one of the ordered assessment stages.
type Kind string

const (
	KindVoice  Kind = "voice"
	KindMemory Kind = "memory"
	KindSurvey Kind = "survey"
)

// Order returns the fixed stage sequence. The set is closed: adding a stage
// requires changing both the session pointer bound and the scoring contract.
func Order() []Kind {
	return []Kind{KindVoice, KindMemory, KindSurvey}
}

// Next returns the stage following k, or false if k is the last stage.
func Next(k Kind) (Kind, bool) {
	order := Order()
	for i, kind := range order {
		if kind == k && i+1 < len(order) {
			return order[i+1], true
		}
	}
	return "", false
}

// Valid reports whether k names a known stage.
func Valid(k Kind) bool {
	switch k {
	case KindVoice, KindMemory, KindSurvey:
		return true
	}
	return false
}

// Payload is the canonical data produced by one completed stage.
type Payload interface {
	Kind() Kind
	// Complete reports whether the payload satisfies the stage's
	// completeness predicate.
	Complete() bool
}

// VoicePayload captures how much of the recording task was performed.
type VoicePayload struct {
	PromptsRequired int     `json:"prompts_required"`
	PromptsRecorded int     `json:"prompts_recorded"`
	SpeechSeconds   float64 `json:"speech_seconds"`
	AllottedSeconds float64 `json:"allotted_seconds"`
}

func (VoicePayload) Kind() Kind { return KindVoice }

// Complete requires every prompt to have a recording.
func (p VoicePayload) Complete() bool {
	return p.PromptsRequired > 0 && p.PromptsRecorded >= p.PromptsRequired
}

// MemoryPayload holds the recalled words alongside the canonical target list.
type MemoryPayload struct {
	Targets  []string `json:"targets"`
	Recalled []string `json:"recalled"`
}

func (MemoryPayload) Kind() Kind { return KindMemory }

// Complete requires at least one recalled word.
func (p MemoryPayload) Complete() bool {
	return len(p.Targets) > 0 && len(p.Recalled) > 0
}

// SurveyPayload maps question index to the selected option's severity.
type SurveyPayload struct {
	Answers       map[int]int `json:"answers"`
	QuestionCount int         `json:"question_count"`
}

func (SurveyPayload) Kind() Kind { return KindSurvey }

// Complete requires an in-range answer for every question.
func (p SurveyPayload) Complete() bool {
	if p.QuestionCount <= 0 {
		return false
	}
	for i := 0; i < p.QuestionCount; i++ {
		sev, ok := p.Answers[i]
		if !ok || sev < 0 || sev > MaxSeverity {
			return false
		}
	}
	return true
}
