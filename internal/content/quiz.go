package content

// QuizQuestion is one persona-quiz question. Options are a closed vocabulary:
// the persona cascade matches against these literal strings.
type QuizQuestion struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// QuizQuestions returns the persona quiz in presentation order.
func QuizQuestions() []QuizQuestion {
	result := make([]QuizQuestion, len(quizQuestions))
	copy(result, quizQuestions)
	return result
}

var quizQuestions = []QuizQuestion{
	{
		ID:      "feeling",
		Text:    "When your skin flares, what do you feel first?",
		Options: []string{"Ashamed", "Angry", "Anxious", "Disconnected"},
	},
	{
		ID:      "hiding",
		Text:    "How often do you hide your skin?",
		Options: []string{"Daily", "Weekly", "Rarely", "Never"},
	},
	{
		ID:      "thought",
		Text:    "Which thought feels most familiar?",
		Options: []string{"I'll never fix this", "Why me?", "I hate how I look", "I can't control this"},
	},
	{
		ID:      "inner_voice",
		Text:    "Describe your inner voice:",
		Options: []string{"Harsh / Judgmental", "Overwhelmed", "Lost", "Trying to be hopeful"},
	},
	{
		ID:      "belief",
		Text:    "Do you believe you can heal?",
		Options: []string{"No", "Maybe", "I hope so", "Absolutely"},
	},
	{
		ID:      "social",
		Text:    "How does your skin affect your social life?",
		Options: []string{"I cancel plans often", "I go but I hide", "I feel awkward", "It doesn't stop me"},
	},
	{
		ID:      "mirror",
		Text:    "How often do you check your skin in the mirror?",
		Options: []string{"Constantly / Obsessively", "Morning and Night", "I avoid mirrors entirely", "Only when treating it"},
	},
	{
		ID:      "sleep_anxiety",
		Text:    "What keeps you awake at night?",
		Options: []string{"The Itch", "Worrying about tomorrow's skin", "General life stress", "Nothing, I sleep well"},
	},
	{
		ID:      "control",
		Text:    "Do you feel in control of your body?",
		Options: []string{"Completely", "Sometimes", "My skin controls me", "I am fighting it"},
	},
	{
		ID:      "intimacy",
		Text:    "Does your skin affect intimacy or dating?",
		Options: []string{"I pull away / Avoid touch", "I feel unlovable", "It makes me self-conscious", "No impact"},
	},
	{
		ID:      "focus",
		Text:    "How does the itch affect your work/school?",
		Options: []string{"I can't focus at all", "It's distracting", "I push through it", "No issue"},
	},
	{
		ID:      "soothing",
		Text:    "What is your go-to soothing method when stressed?",
		Options: []string{"Scratching until it hurts", "Scalding hot water", "Applying cream", "Distracting myself"},
	},
	{
		ID:      "comparison",
		Text:    "Do you compare your skin to others?",
		Options: []string{"Always / Triggers envy", "Only on bad days", "Sometimes", "Never"},
	},
	{
		ID:      "trigger_awareness",
		Text:    "What seems to trigger a flare most?",
		Options: []string{"Emotional Stress", "Food / Diet", "Weather / Heat", "I have no idea"},
	},
	{
		ID:      "motivation",
		Text:    "Why do you want to heal *now*?",
		Options: []string{"I have a big event coming", "I'm exhausted by the pain", "For my family/partner", "To feel free again"},
	},
}
