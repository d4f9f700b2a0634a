// Package entities contains domain entities used across the application.
package entities

// Lesson represents a single verb-tense lesson.
// It includes the tense name, a short explanation and example sentences.
type Lesson struct {
	Key         string   `json:"key"`         // menu key of the lesson ("1", "2", ...)
	Name        string   `json:"name"`        // tense name, e.g. "Present Simple"
	Explanation string   `json:"explanation"` // when the tense is used
	Examples    []string `json:"examples"`    // example sentences in the tense
}

// MenuItem is a single selectable entry of the main menu.
type MenuItem struct {
	Key   string
	Label string
}
