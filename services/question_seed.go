package services

import (
	"encoding/json"
	"fmt"
	"os"

	"osrstrivia/models"

	log "github.com/sirupsen/logrus"
)

// questionImport is the on-disk shape accepted by Seed. It matches the JSON
// export format of the question bank.
type questionImport struct {
	Text          string   `json:"text"`
	Answers       []string `json:"answers"`
	CorrectAnswer string   `json:"correctAnswer"`
	Difficulty    string   `json:"difficulty"`
	Category      string   `json:"category"`
	XPReward      int      `json:"xpReward"`
	Explanation   string   `json:"explanation"`
	ImageURL      string   `json:"imageUrl"`
}

// difficultyXP assigns the default reward when an import omits xpReward.
var difficultyXP = map[string]int{
	models.DifficultyBeginner: 10,
	models.DifficultyEasy:     25,
	models.DifficultyMedium:   50,
	models.DifficultyHard:     100,
	models.DifficultyElite:    200,
	models.DifficultyMaster:   500,
}

// Seed populates the question bank on first boot. An already-populated table
// is left untouched. When path is empty the embedded starter set is used.
func (s *QuestionService) Seed(path string) error {
	count, err := s.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		log.WithField("count", count).Info("question bank already populated, skipping seed")
		return nil
	}

	var questions []models.Question
	if path != "" {
		questions, err = loadQuestionsFile(path)
		if err != nil {
			return err
		}
	} else {
		questions = starterQuestions()
	}

	if err := s.db.Create(&questions).Error; err != nil {
		return fmt.Errorf("failed to seed questions: %w", err)
	}
	log.WithField("count", len(questions)).Info("seeded question bank")
	return nil
}

func loadQuestionsFile(path string) ([]models.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read questions file: %w", err)
	}
	var imports []questionImport
	if err := json.Unmarshal(data, &imports); err != nil {
		return nil, fmt.Errorf("failed to parse questions file: %w", err)
	}

	questions := make([]models.Question, 0, len(imports))
	for _, imp := range imports {
		reward := imp.XPReward
		if reward == 0 {
			if v, ok := difficultyXP[imp.Difficulty]; ok {
				reward = v
			} else {
				reward = 50
			}
		}
		questions = append(questions, models.Question{
			Text:          imp.Text,
			Answers:       models.MakeAnswers(imp.Answers),
			CorrectAnswer: imp.CorrectAnswer,
			Difficulty:    imp.Difficulty,
			Category:      imp.Category,
			XPReward:      reward,
			Explanation:   imp.Explanation,
			ImageURL:      imp.ImageURL,
		})
	}
	return questions, nil
}

// starterQuestions is the built-in bank used when no import file is provided.
func starterQuestions() []models.Question {
	seed := []questionImport{
		{Text: "What is the maximum combat level in Old School RuneScape?", Answers: []string{"126", "138", "99", "120"}, CorrectAnswer: "126", Difficulty: models.DifficultyBeginner, Category: "Skills"},
		{Text: "Which city is home to the Grand Exchange?", Answers: []string{"Falador", "Varrock", "Lumbridge", "Ardougne"}, CorrectAnswer: "Varrock", Difficulty: models.DifficultyBeginner, Category: "Locations"},
		{Text: "What level is required to wear rune platebodies?", Answers: []string{"40 Defence", "45 Defence", "50 Defence", "35 Defence"}, CorrectAnswer: "40 Defence", Difficulty: models.DifficultyBeginner, Category: "Items"},
		{Text: "Which NPC starts the Cook's Assistant quest?", Answers: []string{"The Cook", "Duke Horacio", "Hans", "Father Aereck"}, CorrectAnswer: "The Cook", Difficulty: models.DifficultyBeginner, Category: "Quests"},
		{Text: "What fish can be caught at level 1 Fishing?", Answers: []string{"Shrimps", "Trout", "Lobster", "Sardine"}, CorrectAnswer: "Shrimps", Difficulty: models.DifficultyBeginner, Category: "Skills"},
		{Text: "Which quest rewards the Excalibur sword?", Answers: []string{"Merlin's Crystal", "Dragon Slayer", "Holy Grail", "King's Ransom"}, CorrectAnswer: "Merlin's Crystal", Difficulty: models.DifficultyEasy, Category: "Quests"},
		{Text: "What Agility level is required for the Falador rooftop course?", Answers: []string{"50", "40", "60", "30"}, CorrectAnswer: "50", Difficulty: models.DifficultyEasy, Category: "Skills"},
		{Text: "Which god is worshipped in the Zamorakian Chaos Temple?", Answers: []string{"Zamorak", "Saradomin", "Guthix", "Bandos"}, CorrectAnswer: "Zamorak", Difficulty: models.DifficultyEasy, Category: "General"},
		{Text: "What is the name of the gnome glider pilot atop the Grand Tree?", Answers: []string{"Captain Errdo", "Captain Dalbur", "Captain Klemfoodle", "Captain Bleemadge"}, CorrectAnswer: "Captain Errdo", Difficulty: models.DifficultyMedium, Category: "NPCs"},
		{Text: "Which Slayer master is found in Zanaris?", Answers: []string{"Chaeldar", "Vannaka", "Nieve", "Duradel"}, CorrectAnswer: "Chaeldar", Difficulty: models.DifficultyMedium, Category: "NPCs"},
		{Text: "What level of Smithing is needed to smelt runite bars?", Answers: []string{"85", "80", "90", "75"}, CorrectAnswer: "85", Difficulty: models.DifficultyMedium, Category: "Skills"},
		{Text: "Which boss drops the draconic visage most frequently?", Answers: []string{"Vorkath", "King Black Dragon", "Mithril dragons", "Black dragons"}, CorrectAnswer: "Vorkath", Difficulty: models.DifficultyHard, Category: "General"},
		{Text: "What Prayer level is required for Piety?", Answers: []string{"70", "60", "74", "77"}, CorrectAnswer: "70", Difficulty: models.DifficultyHard, Category: "Skills"},
		{Text: "Which quest is required to access the Ancient Magicks spellbook?", Answers: []string{"Desert Treasure", "The Dig Site", "Temple of the Eye", "Dream Mentor"}, CorrectAnswer: "Desert Treasure", Difficulty: models.DifficultyHard, Category: "Quests"},
		{Text: "How many Barrows brothers guard their crypts?", Answers: []string{"6", "5", "7", "8"}, CorrectAnswer: "6", Difficulty: models.DifficultyElite, Category: "General"},
		{Text: "What is the rarest standard pet drop rate from Zulrah?", Answers: []string{"1/4000", "1/5000", "1/3000", "1/2000"}, CorrectAnswer: "1/4000", Difficulty: models.DifficultyElite, Category: "General"},
		{Text: "Which item is required to enter the Theatre of Blood lobby?", Answers: []string{"Nothing", "Avernic hilt", "Drakan's medallion", "Sinhaza shroud"}, CorrectAnswer: "Nothing", Difficulty: models.DifficultyMaster, Category: "Locations"},
		{Text: "What is the maximum possible hit with a twisted bow against a 900+ magic level target?", Answers: []string{"89", "83", "86", "92"}, CorrectAnswer: "89", Difficulty: models.DifficultyMaster, Category: "Items"},
	}

	questions := make([]models.Question, 0, len(seed))
	for _, imp := range seed {
		questions = append(questions, models.Question{
			Text:          imp.Text,
			Answers:       models.MakeAnswers(imp.Answers),
			CorrectAnswer: imp.CorrectAnswer,
			Difficulty:    imp.Difficulty,
			Category:      imp.Category,
			XPReward:      difficultyXP[imp.Difficulty],
			Explanation:   imp.Explanation,
		})
	}
	return questions
}
