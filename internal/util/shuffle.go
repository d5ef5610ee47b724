package util

import (
	"math/rand"
)

// ShuffleAnswers combines the correct answer with the incorrect answers and
// returns them in uniformly random order (Fisher-Yates). The caller stores
// the result once per question; the order must not be recomputed afterwards.
func ShuffleAnswers(correctAnswer string, incorrectAnswers []string) []string {
	answers := make([]string, 0, len(incorrectAnswers)+1)
	answers = append(answers, incorrectAnswers...)
	answers = append(answers, correctAnswer)
	for i := len(answers) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		answers[i], answers[j] = answers[j], answers[i]
	}
	return answers
}
