package content

import "time"

// StarterCatalog returns a small built-in corpus so the CLI and tests
// work without an external content source. Real deployments index their
// own catalog instead.
func StarterCatalog() []LearningContent {
	created := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	return []LearningContent{
		{
			ID:              "alg-video-001",
			Title:           "Algebra Foundations: Variables and Expressions",
			ContentType:     "video",
			Source:          "learnora-library",
			URL:             "https://library.learnora.dev/algebra/foundations",
			Description:     "A gentle introduction to variables, expressions, and solving simple linear equations step by step.",
			Difficulty:      DifficultyBeginner,
			DurationMinutes: 25,
			Tags:            []string{"algebra", "mathematics", "equations"},
			CreatedAt:       created,
		},
		{
			ID:              "alg-article-002",
			Title:           "Working with Linear Equations",
			ContentType:     "article",
			Source:          "learnora-library",
			URL:             "https://library.learnora.dev/algebra/linear-equations",
			Description:     "Practice-focused walkthrough of one- and two-step linear equations with worked examples.",
			Difficulty:      DifficultyIntermediate,
			DurationMinutes: 20,
			Tags:            []string{"algebra", "mathematics", "practice"},
			Prerequisites:   []string{"alg-video-001"},
			CreatedAt:       created,
		},
		{
			ID:              "alg-exercise-003",
			Title:           "Quadratic Equations Problem Set",
			ContentType:     "exercise",
			Source:          "learnora-library",
			URL:             "https://library.learnora.dev/algebra/quadratics",
			Description:     "Advanced problem set covering factoring, completing the square, and the quadratic formula.",
			Difficulty:      DifficultyAdvanced,
			DurationMinutes: 45,
			Tags:            []string{"algebra", "mathematics", "quadratics"},
			Prerequisites:   []string{"alg-article-002"},
			CreatedAt:       created,
		},
		{
			ID:              "geo-video-001",
			Title:           "Geometry Basics: Angles and Triangles",
			ContentType:     "video",
			Source:          "learnora-library",
			URL:             "https://library.learnora.dev/geometry/basics",
			Description:     "Visual tutorial on angle relationships, triangle classification, and basic proofs.",
			Difficulty:      DifficultyBeginner,
			DurationMinutes: 30,
			Tags:            []string{"geometry", "mathematics", "triangles"},
			CreatedAt:       created,
		},
		{
			ID:              "geo-article-002",
			Title:           "Area and Perimeter in Practice",
			ContentType:     "article",
			Source:          "learnora-library",
			URL:             "https://library.learnora.dev/geometry/area-perimeter",
			Description:     "Intermediate practice computing area and perimeter of composite shapes.",
			Difficulty:      DifficultyIntermediate,
			DurationMinutes: 15,
			Tags:            []string{"geometry", "mathematics", "practice"},
			Prerequisites:   []string{"geo-video-001"},
			CreatedAt:       created,
		},
		{
			ID:              "prob-video-001",
			Title:           "Probability: Counting and Chance",
			ContentType:     "video",
			Source:          "learnora-library",
			URL:             "https://library.learnora.dev/probability/intro",
			Description:     "Beginner tutorial on sample spaces, simple events, and computing basic probabilities.",
			Difficulty:      DifficultyBeginner,
			DurationMinutes: 22,
			Tags:            []string{"probability", "mathematics", "statistics"},
			CreatedAt:       created,
		},
		{
			ID:              "prob-exercise-002",
			Title:           "Conditional Probability Drills",
			ContentType:     "exercise",
			Source:          "learnora-library",
			URL:             "https://library.learnora.dev/probability/conditional",
			Description:     "Advanced drills on conditional probability, independence, and Bayes reasoning.",
			Difficulty:      DifficultyAdvanced,
			DurationMinutes: 40,
			Tags:            []string{"probability", "mathematics", "bayes"},
			Prerequisites:   []string{"prob-video-001"},
			CreatedAt:       created,
		},
		{
			ID:              "frac-video-001",
			Title:           "Fractions from the Ground Up",
			ContentType:     "video",
			Source:          "learnora-library",
			URL:             "https://library.learnora.dev/fractions/intro",
			Description:     "Beginner tutorial building fraction intuition with number lines and visual models.",
			Difficulty:      DifficultyBeginner,
			DurationMinutes: 18,
			Tags:            []string{"fractions", "mathematics", "number-sense"},
			CreatedAt:       created,
		},
	}
}
