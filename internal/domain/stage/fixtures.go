package stage

// Timing and scale constants for the canonical assessment content.
const (
	// RecordingCapSeconds is the maximum length of one voice recording.
	RecordingCapSeconds = 30
	// MemorizeSeconds is how long the word list is shown before recall.
	MemorizeSeconds = 15
	// MaxSeverity is the highest ordinal severity a survey option carries.
	MaxSeverity = 4
)

// Question is one survey question; option index equals ordinal severity.
type Question struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

var voicePrompts = []string{
	"Please describe what you had for breakfast today.",
	"Tell us about your favorite childhood memory.",
	"Describe the last book you read or movie you watched.",
}

var targetWords = []string{
	"Apple", "Chair", "Ocean", "Tiger", "Piano", "Garden", "Mountain", "River",
}

var frequencyOptions = []string{"Never", "Rarely", "Sometimes", "Often", "Very Often"}

var surveyQuestions = []Question{
	{Text: "How often do you forget recent conversations or events?", Options: frequencyOptions},
	{Text: "Do you have difficulty finding the right words during conversations?", Options: frequencyOptions},
	{Text: "How often do you misplace items or forget where you put things?", Options: frequencyOptions},
	{Text: "Do you experience challenges with planning or organizing tasks?", Options: frequencyOptions},
	{Text: "How often do you have trouble following or maintaining a conversation?", Options: frequencyOptions},
}

// Prompts returns the voice recording prompts in presentation order.
func Prompts() []string {
	out := make([]string, len(voicePrompts))
	copy(out, voicePrompts)
	return out
}

// TargetWords returns the canonical memory word list.
func TargetWords() []string {
	out := make([]string, len(targetWords))
	copy(out, targetWords)
	return out
}

// Questions returns the behavioral survey questions.
func Questions() []Question {
	out := make([]Question, len(surveyQuestions))
	copy(out, surveyQuestions)
	return out
}
