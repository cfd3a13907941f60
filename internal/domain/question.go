package domain

// Question is a configurable journal prompt shown in a specific phase of an
// activity. Shipped defaults have IsCustom=false; prompts added by the user
// carry IsCustom=true and are the only ones that may be deleted.
type Question struct {
	ID       string          `json:"id"`
	Text     string          `json:"text"`
	Type     string          `json:"type,omitempty"`
	Section  QuestionSection `json:"section,omitempty"`
	Enabled  bool            `json:"enabled"`
	IsCustom bool            `json:"isCustom,omitempty"`
}

// QuestionSet is the persisted envelope around a question configuration.
// Legacy documents were stored as a bare question array without a version
// field; those are treated as version 1.
type QuestionSet struct {
	Version   int        `json:"version"`
	Questions []Question `json:"questions"`
}

// ImageryPrompt is a visualization cue for the imagery journal. Like
// questions, shipped defaults are fixed and user additions carry
// IsCustom=true.
type ImageryPrompt struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Enabled  bool   `json:"enabled"`
	IsCustom bool   `json:"isCustom,omitempty"`
}
