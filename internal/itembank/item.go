package itembank

// Item is a single test item with IRT 2PL parameters.
// Items are immutable once created and owned exclusively by the Bank.
type Item struct {
	// Code uniquely identifies the item within a bank.
	Code string

	// Skill is the skill this item measures.
	Skill string

	// Discrimination is the IRT "a" parameter. Must be > 0.
	Discrimination float64

	// Difficulty is the IRT "b" parameter, on the same scale as theta.
	Difficulty float64

	// Prompt is the question text shown to the learner.
	Prompt string

	// Choices holds answer options for multiple-choice items.
	// Empty for free-form items.
	Choices []string

	// CorrectIndex is the index into Choices of the correct answer.
	// Ignored when Choices is empty.
	CorrectIndex int
}
