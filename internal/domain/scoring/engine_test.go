package scoring_test

import (
	"math/rand"
	"testing"

	"github.com/cogwell/cogniscreen/internal/domain/scoring"
	"github.com/cogwell/cogniscreen/internal/domain/stage"
	"github.com/stretchr/testify/require"
)

func completePayloads() (stage.VoicePayload, stage.MemoryPayload, stage.SurveyPayload) {
	voice := stage.VoicePayload{
		PromptsRequired: 3,
		PromptsRecorded: 3,
		SpeechSeconds:   90,
		AllottedSeconds: 90,
	}
	memory := stage.MemoryPayload{
		Targets:  stage.TargetWords(),
		Recalled: []string{"apple", "tiger", "ocean"},
	}
	answers := map[int]int{}
	for i := range stage.Questions() {
		answers[i] = 0
	}
	survey := stage.SurveyPayload{Answers: answers, QuestionCount: len(answers)}
	return voice, memory, survey
}

func TestMemoryScoreRecallOverlap(t *testing.T) {
	// Targets Apple..River, recalled three of eight regardless of case.
	p := stage.MemoryPayload{
		Targets:  []string{"Apple", "Chair", "Ocean", "Tiger", "Piano", "Garden", "Mountain", "River"},
		Recalled: []string{"apple", "tiger", "ocean"},
	}
	require.InDelta(t, 37.5, scoring.MemoryScore(p), 1e-9)
}

func TestMemoryScoreRoundTrip(t *testing.T) {
	targets := stage.TargetWords()

	// Full recall in reversed order and scrambled case scores 100.
	recalled := make([]string, 0, len(targets))
	for i := len(targets) - 1; i >= 0; i-- {
		recalled = append(recalled, targets[i])
	}
	recalled[0] = "RIVER"
	recalled[1] = "mountain"
	require.Equal(t, 100.0, scoring.MemoryScore(stage.MemoryPayload{Targets: targets, Recalled: recalled}))

	// Duplicates of a match count once.
	require.InDelta(t, 12.5, scoring.MemoryScore(stage.MemoryPayload{
		Targets:  targets,
		Recalled: []string{"apple", "Apple", "APPLE"},
	}), 1e-9)

	require.Equal(t, 0.0, scoring.MemoryScore(stage.MemoryPayload{Targets: targets}))
}

func TestSurveyScoreAllNever(t *testing.T) {
	answers := map[int]int{0: 0, 1: 0, 2: 0, 3: 0, 4: 0}
	require.Equal(t, 100.0, scoring.SurveyScore(stage.SurveyPayload{Answers: answers, QuestionCount: 5}))
}

func TestSurveyScoreAllVeryOften(t *testing.T) {
	answers := map[int]int{0: 4, 1: 4, 2: 4, 3: 4, 4: 4}
	require.Equal(t, 0.0, scoring.SurveyScore(stage.SurveyPayload{Answers: answers, QuestionCount: 5}))
}

func TestVoiceScoreCompletionAndFluency(t *testing.T) {
	// No speech timing captured: pure completion ratio.
	require.Equal(t, 100.0, scoring.VoiceScore(stage.VoicePayload{
		PromptsRequired: 3,
		PromptsRecorded: 3,
	}))

	// Half the allotted time spoken pulls the score down through the blend.
	score := scoring.VoiceScore(stage.VoicePayload{
		PromptsRequired: 3,
		PromptsRecorded: 3,
		SpeechSeconds:   45,
		AllottedSeconds: 90,
	})
	require.InDelta(t, 80.0, score, 1e-9)

	// Fluency is capped at 1 so over-long speech cannot exceed 100.
	require.Equal(t, 100.0, scoring.VoiceScore(stage.VoicePayload{
		PromptsRequired: 3,
		PromptsRecorded: 3,
		SpeechSeconds:   500,
		AllottedSeconds: 90,
	}))
}

func TestClassifyAgainstThresholds(t *testing.T) {
	engine := scoring.NewEngine(scoring.DefaultConfig(), nil)

	// 80 + 37.5 + 100 with equal weights combines to ~72.5.
	require.Equal(t, scoring.LevelLow, engine.Classify(80, 37.5, 100))
	require.Equal(t, scoring.LevelModerate, engine.Classify(50, 40, 45))
	require.Equal(t, scoring.LevelHigh, engine.Classify(10, 20, 30))
}

func TestScoreIsDeterministic(t *testing.T) {
	engine := scoring.NewEngine(scoring.DefaultConfig(), nil)
	voice, memory, survey := completePayloads()

	first, err := engine.Score(&voice, &memory, &survey)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := engine.Score(&voice, &memory, &survey)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestScoreRejectsIncompleteSession(t *testing.T) {
	engine := scoring.NewEngine(scoring.DefaultConfig(), nil)
	voice, memory, survey := completePayloads()

	_, err := engine.Score(nil, &memory, &survey)
	require.ErrorIs(t, err, scoring.ErrIncompleteSession)

	partialVoice := voice
	partialVoice.PromptsRecorded = 1
	_, err = engine.Score(&partialVoice, &memory, &survey)
	require.ErrorIs(t, err, scoring.ErrIncompleteSession)

	emptyMemory := stage.MemoryPayload{Targets: stage.TargetWords()}
	_, err = engine.Score(&voice, &emptyMemory, &survey)
	require.ErrorIs(t, err, scoring.ErrIncompleteSession)

	gapped := survey
	gapped.Answers = map[int]int{0: 1}
	_, err = engine.Score(&voice, &memory, &gapped)
	require.ErrorIs(t, err, scoring.ErrIncompleteSession)
}

func severityRank(level scoring.Level) int {
	switch level {
	case scoring.LevelLow:
		return 0
	case scoring.LevelModerate:
		return 1
	default:
		return 2
	}
}

// Raising any single sub-score must never produce a more severe level.
func TestClassifyMonotonicity(t *testing.T) {
	engine := scoring.NewEngine(scoring.DefaultConfig(), nil)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		v := rng.Float64() * 100
		m := rng.Float64() * 100
		s := rng.Float64() * 100
		base := severityRank(engine.Classify(v, m, s))

		bump := rng.Float64() * (100 - v)
		require.LessOrEqual(t, severityRank(engine.Classify(v+bump, m, s)), base)
		bump = rng.Float64() * (100 - m)
		require.LessOrEqual(t, severityRank(engine.Classify(v, m+bump, s)), base)
		bump = rng.Float64() * (100 - s)
		require.LessOrEqual(t, severityRank(engine.Classify(v, m, s+bump)), base)
	}
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, scoring.DefaultConfig().Validate())

	bad := scoring.DefaultConfig()
	bad.Weights = scoring.Weights{}
	require.ErrorIs(t, bad.Validate(), scoring.ErrInvalidConfig)

	bad = scoring.DefaultConfig()
	bad.Weights.Memory = -1
	require.ErrorIs(t, bad.Validate(), scoring.ErrInvalidConfig)

	bad = scoring.DefaultConfig()
	bad.Thresholds = scoring.Thresholds{Low: 30, Moderate: 60}
	require.ErrorIs(t, bad.Validate(), scoring.ErrInvalidConfig)
}
