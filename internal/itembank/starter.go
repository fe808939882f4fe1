package itembank

// StarterItems returns a small built-in item bank covering the same
// skills as the starter content catalog, so the CLI can run adaptive
// assessments without an external item source. Difficulty parameters
// span roughly -1.5 to 1.5 per skill.
func StarterItems() []Item {
	return []Item{
		{
			Code: "alg-001", Skill: "algebra",
			Discrimination: 1.0, Difficulty: -1.5,
			Prompt:       "Solve for x: x + 3 = 7",
			Choices:      []string{"3", "4", "10", "21"},
			CorrectIndex: 1,
		},
		{
			Code: "alg-002", Skill: "algebra",
			Discrimination: 1.2, Difficulty: -0.5,
			Prompt:       "Solve for x: 2x - 4 = 10",
			Choices:      []string{"3", "5", "7", "14"},
			CorrectIndex: 2,
		},
		{
			Code: "alg-003", Skill: "algebra",
			Discrimination: 1.1, Difficulty: 0.5,
			Prompt:       "Solve for x: 3(x - 2) = 2x + 1",
			Choices:      []string{"5", "6", "7", "8"},
			CorrectIndex: 2,
		},
		{
			Code: "alg-004", Skill: "algebra",
			Discrimination: 0.9, Difficulty: 1.5,
			Prompt:       "Which values of x satisfy x² - 5x + 6 = 0?",
			Choices:      []string{"2 and 3", "1 and 6", "-2 and -3", "0 and 5"},
			CorrectIndex: 0,
		},
		{
			Code: "geo-001", Skill: "geometry",
			Discrimination: 1.0, Difficulty: -1.0,
			Prompt:       "What is the sum of the interior angles of a triangle?",
			Choices:      []string{"90°", "180°", "270°", "360°"},
			CorrectIndex: 1,
		},
		{
			Code: "geo-002", Skill: "geometry",
			Discrimination: 1.1, Difficulty: 0.0,
			Prompt:       "A rectangle is 8 units by 5 units. What is its area?",
			Choices:      []string{"13", "26", "40", "80"},
			CorrectIndex: 2,
		},
		{
			Code: "geo-003", Skill: "geometry",
			Discrimination: 0.9, Difficulty: 1.2,
			Prompt:       "A right triangle has legs 6 and 8. How long is the hypotenuse?",
			Choices:      []string{"10", "12", "14", "48"},
			CorrectIndex: 0,
		},
		{
			Code: "prob-001", Skill: "probability",
			Discrimination: 1.0, Difficulty: -1.0,
			Prompt:       "A fair coin is flipped once. What is the probability of heads?",
			Choices:      []string{"1/4", "1/3", "1/2", "1"},
			CorrectIndex: 2,
		},
		{
			Code: "prob-002", Skill: "probability",
			Discrimination: 1.2, Difficulty: 0.3,
			Prompt:       "A die is rolled once. What is the probability of rolling a number greater than 4?",
			Choices:      []string{"1/6", "1/3", "1/2", "2/3"},
			CorrectIndex: 1,
		},
		{
			Code: "prob-003", Skill: "probability",
			Discrimination: 0.9, Difficulty: 1.4,
			Prompt:       "Two fair coins are flipped. What is the probability of exactly one head?",
			Choices:      []string{"1/4", "1/3", "1/2", "3/4"},
			CorrectIndex: 2,
		},
		{
			Code: "frac-001", Skill: "fractions",
			Discrimination: 1.0, Difficulty: -1.2,
			Prompt:       "Which fraction equals 1/2?",
			Choices:      []string{"2/6", "3/6", "2/3", "3/4"},
			CorrectIndex: 1,
		},
		{
			Code: "frac-002", Skill: "fractions",
			Discrimination: 1.1, Difficulty: 0.2,
			Prompt:       "What is 1/3 + 1/6?",
			Choices:      []string{"1/2", "2/9", "1/9", "2/3"},
			CorrectIndex: 0,
		},
	}
}

// StarterBank builds a Bank from the starter items.
func StarterBank() (*Bank, error) {
	return New(StarterItems())
}
