package models

// QuestionCount is the fixed number of rating questions
const QuestionCount = 10

// Question is one rated item on the feedback form
type Question struct {
	Key  string
	Text string
}

// Questions is the fixed, ordered question set. Keys double as form field and column names.
var Questions = [QuestionCount]Question{
	{Key: "q1", Text: "Knowledge of the subject."},
	{Key: "q2", Text: "Clarity in explanations."},
	{Key: "q3", Text: "Punctuality in classes."},
	{Key: "q4", Text: "Use of teaching aids (PowerPoint, board, labs, etc.)."},
	{Key: "q5", Text: "Encouragement of student participation."},
	{Key: "q6", Text: "Ability to relate theory to practical examples."},
	{Key: "q7", Text: "Communication skills (clarity, audibility, language)."},
	{Key: "q8", Text: "Fairness and respect towards students."},
	{Key: "q9", Text: "Timeliness of feedback on assignments/tests."},
	{Key: "q10", Text: "Overall teaching effectiveness."},
}

// QuestionKeys returns q1..q10 in order
func QuestionKeys() []string {
	keys := make([]string, QuestionCount)
	for i, q := range Questions {
		keys[i] = q.Key
	}
	return keys
}
