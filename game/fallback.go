package game

// FallbackQuestions is the bundled question set used when the API is
// unreachable. Unlike server payloads it carries the answer key, since guest
// play evaluates locally.
func FallbackQuestions() []Question {
	return []Question{
		{ID: 1001, Text: "What is the maximum combat level in Old School RuneScape?", Answers: []string{"126", "138", "99", "120"}, CorrectAnswer: "126", Difficulty: "Beginner", Category: "Skills", XPReward: 10},
		{ID: 1002, Text: "Which city is home to the Grand Exchange?", Answers: []string{"Falador", "Varrock", "Lumbridge", "Ardougne"}, CorrectAnswer: "Varrock", Difficulty: "Beginner", Category: "Locations", XPReward: 10},
		{ID: 1003, Text: "What fish can be caught at level 1 Fishing?", Answers: []string{"Shrimps", "Trout", "Lobster", "Sardine"}, CorrectAnswer: "Shrimps", Difficulty: "Beginner", Category: "Skills", XPReward: 10},
		{ID: 1004, Text: "Which NPC starts the Cook's Assistant quest?", Answers: []string{"The Cook", "Duke Horacio", "Hans", "Father Aereck"}, CorrectAnswer: "The Cook", Difficulty: "Beginner", Category: "Quests", XPReward: 10},
		{ID: 1005, Text: "What level is required to wear rune platebodies?", Answers: []string{"40 Defence", "45 Defence", "50 Defence", "35 Defence"}, CorrectAnswer: "40 Defence", Difficulty: "Beginner", Category: "Items", XPReward: 10},
		{ID: 1006, Text: "Which quest rewards the Excalibur sword?", Answers: []string{"Merlin's Crystal", "Dragon Slayer", "Holy Grail", "King's Ransom"}, CorrectAnswer: "Merlin's Crystal", Difficulty: "Easy", Category: "Quests", XPReward: 25},
		{ID: 1007, Text: "What Agility level is required for the Falador rooftop course?", Answers: []string{"50", "40", "60", "30"}, CorrectAnswer: "50", Difficulty: "Easy", Category: "Skills", XPReward: 25},
		{ID: 1008, Text: "Which Slayer master is found in Zanaris?", Answers: []string{"Chaeldar", "Vannaka", "Nieve", "Duradel"}, CorrectAnswer: "Chaeldar", Difficulty: "Medium", Category: "NPCs", XPReward: 50},
		{ID: 1009, Text: "What level of Smithing is needed to smelt runite bars?", Answers: []string{"85", "80", "90", "75"}, CorrectAnswer: "85", Difficulty: "Medium", Category: "Skills", XPReward: 50},
		{ID: 1010, Text: "What Prayer level is required for Piety?", Answers: []string{"70", "60", "74", "77"}, CorrectAnswer: "70", Difficulty: "Hard", Category: "Skills", XPReward: 100},
		{ID: 1011, Text: "Which quest is required to access the Ancient Magicks spellbook?", Answers: []string{"Desert Treasure", "The Dig Site", "Temple of the Eye", "Dream Mentor"}, CorrectAnswer: "Desert Treasure", Difficulty: "Hard", Category: "Quests", XPReward: 100},
		{ID: 1012, Text: "How many Barrows brothers guard their crypts?", Answers: []string{"6", "5", "7", "8"}, CorrectAnswer: "6", Difficulty: "Elite", Category: "General", XPReward: 200},
	}
}
