package scoring

import (
	"log/slog"
	"strings"

	"github.com/cogwell/cogniscreen/internal/domain/stage"
)

// Level is the categorical risk classification derived from sub-scores.
type Level string

const (
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
)

// Weights sets the relative contribution of each sub-score to the combined
// score. They need not sum to one; only the ratios matter.
type Weights struct {
	Voice  float64 `yaml:"voice" json:"voice"`
	Memory float64 `yaml:"memory" json:"memory"`
	Survey float64 `yaml:"survey" json:"survey"`
}

// Thresholds maps the combined [0,100] score to a level: >= Low is low risk,
// >= Moderate is moderate, anything below is high.
type Thresholds struct {
	Low      float64 `yaml:"low" json:"low"`
	Moderate float64 `yaml:"moderate" json:"moderate"`
}

// Config is the tuning surface for the engine. Weights and thresholds are
// configuration, not constants, so they can change without touching the
// engine's control flow.
type Config struct {
	Weights    Weights    `yaml:"weights" json:"weights"`
	Thresholds Thresholds `yaml:"thresholds" json:"thresholds"`
}

// DefaultConfig returns equal weights with the standard 70/40 thresholds.
func DefaultConfig() Config {
	return Config{
		Weights:    Weights{Voice: 1, Memory: 1, Survey: 1},
		Thresholds: Thresholds{Low: 70, Moderate: 40},
	}
}

// Validate checks that the config can classify every sub-score triple.
func (c Config) Validate() error {
	if c.Weights.Voice < 0 || c.Weights.Memory < 0 || c.Weights.Survey < 0 {
		return ErrInvalidConfig
	}
	if c.Weights.Voice+c.Weights.Memory+c.Weights.Survey <= 0 {
		return ErrInvalidConfig
	}
	if c.Thresholds.Low < c.Thresholds.Moderate {
		return ErrInvalidConfig
	}
	return nil
}

// Candidate is a scored assessment before persistence. Identifier, owner and
// timestamp are assigned by the result store.
type Candidate struct {
	VoiceScore  float64 `json:"voice_score"`
	MemoryScore float64 `json:"memory_score"`
	SurveyScore float64 `json:"survey_score"`
	Level       Level   `json:"level"`
}

// Engine reduces three stage payloads into a risk classification. Scoring is
// deterministic and pure: identical payload triples yield identical candidates.
type Engine struct {
	cfg    Config
	logger *slog.Logger
}

// NewEngine creates a scoring engine with the given tuning config.
func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg, logger: logger}
}

// Score maps three well-formed stage payloads to a candidate result. It fails
// with ErrIncompleteSession if any payload is missing or fails its stage's
// completeness predicate.
func (e *Engine) Score(voice *stage.VoicePayload, memory *stage.MemoryPayload, survey *stage.SurveyPayload) (Candidate, error) {
	if voice == nil || !voice.Complete() ||
		memory == nil || !memory.Complete() ||
		survey == nil || !survey.Complete() {
		e.logger.Error("scoring requested for incomplete session")
		return Candidate{}, ErrIncompleteSession
	}

	candidate := Candidate{
		VoiceScore:  VoiceScore(*voice),
		MemoryScore: MemoryScore(*memory),
		SurveyScore: SurveyScore(*survey),
	}
	candidate.Level = e.level(candidate)
	return candidate, nil
}

// Classify maps a sub-score triple to a level using the configured weights and
// thresholds. The mapping is monotonic: raising any sub-score never produces a
// more severe level.
func (e *Engine) Classify(voiceScore, memoryScore, surveyScore float64) Level {
	return e.level(Candidate{
		VoiceScore:  voiceScore,
		MemoryScore: memoryScore,
		SurveyScore: surveyScore,
	})
}

func (e *Engine) level(c Candidate) Level {
	w := e.cfg.Weights
	combined := (w.Voice*c.VoiceScore + w.Memory*c.MemoryScore + w.Survey*c.SurveyScore) /
		(w.Voice + w.Memory + w.Survey)

	switch {
	case combined >= e.cfg.Thresholds.Low:
		return LevelLow
	case combined >= e.cfg.Thresholds.Moderate:
		return LevelModerate
	default:
		return LevelHigh
	}
}

// VoiceScore measures prompt completion, blended with a fluency proxy (ratio
// of speech time to allotted time) when speech timing was captured. The voice
// signal has no real analytic basis yet; this is the interface point for a
// future analysis collaborator.
func VoiceScore(p stage.VoicePayload) float64 {
	if p.PromptsRequired <= 0 {
		return 0
	}
	completion := float64(p.PromptsRecorded) / float64(p.PromptsRequired) * 100
	score := completion
	if p.SpeechSeconds > 0 && p.AllottedSeconds > 0 {
		fluency := p.SpeechSeconds / p.AllottedSeconds
		if fluency > 1 {
			fluency = 1
		}
		score = 0.6*completion + 0.4*fluency*100
	}
	return clamp(score)
}

// MemoryScore is the recall overlap: case-insensitive, order-independent,
// deduplicated exact matches over total targets, scaled to [0,100].
func MemoryScore(p stage.MemoryPayload) float64 {
	if len(p.Targets) == 0 {
		return 0
	}
	targets := make(map[string]bool, len(p.Targets))
	for _, word := range p.Targets {
		targets[strings.ToLower(strings.TrimSpace(word))] = false
	}

	matched := 0
	for _, word := range p.Recalled {
		key := strings.ToLower(strings.TrimSpace(word))
		if seen, ok := targets[key]; ok && !seen {
			targets[key] = true
			matched++
		}
	}
	return clamp(float64(matched) / float64(len(p.Targets)) * 100)
}

// SurveyScore inverts the reported symptom severity: all "Never" answers score
// 100, all maximal-severity answers score 0.
func SurveyScore(p stage.SurveyPayload) float64 {
	if p.QuestionCount <= 0 {
		return 0
	}
	total := 0
	for i := 0; i < p.QuestionCount; i++ {
		total += p.Answers[i]
	}
	return clamp(100 - float64(total)/float64(p.QuestionCount*stage.MaxSeverity)*100)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
