package content

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MarinVandelet/qr-game-backend/internal/model"
)

// Set is the game content a server runs with: the quiz question bank and
// the scavenger hunt item list
type Set struct {
	Questions []model.QuizQuestion `json:"questions"`
	Items     []model.HuntItem     `json:"items"`
}

// Default returns the built-in content set
func Default() Set {
	return Set{
		Questions: defaultQuestions(),
		Items:     defaultItems(),
	}
}

// Load reads a content set from a JSON file. Missing sections fall back to
// the built-in defaults.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("reading content file: %w", err)
	}

	var set Set
	if err := json.Unmarshal(data, &set); err != nil {
		return Set{}, fmt.Errorf("parsing content file %s: %w", path, err)
	}

	if len(set.Questions) == 0 {
		set.Questions = defaultQuestions()
	}
	if len(set.Items) == 0 {
		set.Items = defaultItems()
	}

	if err := set.Validate(); err != nil {
		return Set{}, err
	}
	return set, nil
}

// Validate checks every question and item for structural problems
func (s Set) Validate() error {
	for i, q := range s.Questions {
		if !q.Valid() {
			return fmt.Errorf("question %d: correct index %d out of bounds", i, q.CorrectIndex)
		}
	}
	seen := make(map[string]bool, len(s.Items))
	for i, item := range s.Items {
		if item.Token == "" {
			return fmt.Errorf("item %d: empty token", i)
		}
		if seen[item.Token] {
			return fmt.Errorf("item %d: duplicate token %q", i, item.Token)
		}
		seen[item.Token] = true
	}
	return nil
}

func defaultQuestions() []model.QuizQuestion {
	return []model.QuizQuestion{
		{
			QuestionText: "What is this software (VS Code) used for?",
			ImageURL:     "/questions/vscode.png",
			Answers:      []string{"HTML only", "Hosting", "Maintenance", "Development"},
			CorrectIndex: 3,
		},
		{
			QuestionText: "Which technology does this logo belong to?",
			ImageURL:     "/questions/logohtml.png",
			Answers:      []string{"Yell5", "HTML", "JetBrains", "SQL"},
			CorrectIndex: 1,
		},
		{
			QuestionText: "Which technology does this logo belong to?",
			ImageURL:     "/questions/logocss.png",
			Answers:      []string{"CSS", "Node.js", "TScript", "BlueStack"},
			CorrectIndex: 0,
		},
		{
			QuestionText: "Which technology does this logo belong to?",
			ImageURL:     "/questions/logojs.png",
			Answers:      []string{"JSite", "Ruby", "JavaScript", "PHP"},
			CorrectIndex: 2,
		},
		{
			QuestionText: "Which technology does this logo belong to?",
			ImageURL:     "/questions/logopy.png",
			Answers:      []string{"Reverze", "Vercel", "Snake", "Python"},
			CorrectIndex: 3,
		},
		{
			QuestionText: "Where should I write my page content?",
			ImageURL:     "/questions/code.png",
			Answers:      []string{"Title", "html", "Body", "Head"},
			CorrectIndex: 2,
		},
	}
}

func defaultItems() []model.HuntItem {
	return []model.HuntItem{
		{Token: "hunt-keyboard", Hint: "You press me all day but I never complain."},
		{Token: "hunt-router", Hint: "Blinking lights, and the whole room goes quiet when I stop."},
		{Token: "hunt-coffee", Hint: "The real dependency every build needs."},
		{Token: "hunt-whiteboard", Hint: "Ideas live and die on my surface."},
	}
}
