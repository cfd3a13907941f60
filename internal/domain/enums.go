package domain

// ActivityType identifies the category of a journal entry.
type ActivityType string

const (
	ActivityTraining ActivityType = "Training"
	ActivityGame     ActivityType = "Game"
	ActivityRehab    ActivityType = "Rehab"
	ActivityLift     ActivityType = "Lift"
	ActivityImagery  ActivityType = "Imagery"
	ActivityFood     ActivityType = "Food"
)

func (t ActivityType) String() string { return string(t) }

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTraining, ActivityGame, ActivityRehab, ActivityLift, ActivityImagery, ActivityFood:
		return true
	}
	return false
}

// QuestionSection is the phase of an activity a prompt belongs to.
type QuestionSection string

const (
	SectionPregame  QuestionSection = "pregame"
	SectionPostgame QuestionSection = "postgame"
)

func (s QuestionSection) String() string { return string(s) }

func (s QuestionSection) IsValid() bool {
	return s == SectionPregame || s == SectionPostgame
}
