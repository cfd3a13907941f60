package questions

import "github.com/athletemind/journal-backend/internal/domain"

// DefaultGameQuestions returns the shipped game question set, already at
// CurrentVersion wording.
func DefaultGameQuestions() []domain.Question {
	return []domain.Question{
		{ID: "1", Text: "What are three things I can control today that will help me perform my best?", Enabled: true, Section: domain.SectionPregame, Type: "text"},
		{ID: "2", Text: "What external factors could distract me from playing my best?", Enabled: true, Section: domain.SectionPregame, Type: "text"},
		{ID: "3", Text: "How will I respond to mistakes in a way that keeps me focused?", Enabled: true, Section: domain.SectionPregame, Type: "text"},
		{ID: "4", Text: "Was I fully engaged in the game? YES or NO", Enabled: true, Section: domain.SectionPostgame, Type: "text"},
		{ID: "5", Text: "Right now, how do I feel I played?", Enabled: true, Section: domain.SectionPostgame, Type: "text"},
		{ID: "6", Text: "What are three things I did well?", Enabled: true, Section: domain.SectionPostgame, Type: "text"},
		{ID: "7", Text: "What's one thing I want to work on based on today's game?", Enabled: true, Section: domain.SectionPostgame, Type: "text"},
		{ID: "8", Text: "Do I think how I played will affect the rest of my day? What if I played the opposite of how I played?", Enabled: true, Section: domain.SectionPostgame, Type: "text"},
		{ID: "9", Text: "How did I feel playing against the player I was matched up against?", Enabled: true, Section: domain.SectionPostgame, Type: "text"},
		{ID: "10", Text: "How'd I feel in my team's system against the system we were up against?", Enabled: true, Section: domain.SectionPostgame, Type: "text"},
		{ID: "11", Text: "How do I feel about my playing time today? If I don't feel great about it, how can I work with my coaches to change it, without disrespecting their decision?", Enabled: true, Section: domain.SectionPostgame, Type: "text"},
	}
}

// DefaultTrainingQuestions returns the shipped training question set.
func DefaultTrainingQuestions() []domain.Question {
	return []domain.Question{
		{ID: "1", Text: "Did I feel focused during practice today?", Enabled: true},
		{ID: "2", Text: "What were distracting external factors for me during training?", Enabled: true},
		{ID: "3", Text: "What weakness in my game do I want to work on?", Enabled: true},
		{ID: "4", Text: `Write down what I did well today, and my "play of the day":`, Enabled: true},
		{ID: "5", Text: "What'd I do when I first woke up this morning to set a positive tone for my day?", Enabled: true},
		{ID: "6", Text: "Did I do the treatment, activation, and stretching I normally do?", Enabled: true},
	}
}

// DefaultRehabQuestions returns the shipped rehab question set.
func DefaultRehabQuestions() []domain.Question {
	return []domain.Question{
		{ID: "1", Text: "How do I feel about my rehab performance today?", Enabled: true, Type: "text", Section: "rehab"},
		{ID: "2", Text: "What did I do when I first woke up to set a positive tone for my recovery?", Enabled: true, Type: "text", Section: "rehab"},
		{ID: "3", Text: "Did I get 20 minutes of stretching in today? If not, why?", Enabled: true, Type: "text", Section: "rehab"},
		{ID: "4", Text: "How motivated was I before rehab today?", Enabled: true, Type: "text", Section: "rehab"},
		{ID: "5", Text: "After rehab, do I feel better or worse about my recovery process?", Enabled: true, Type: "text", Section: "rehab"},
		{ID: "6", Text: "What did/am I going to do to stay connected with my teammates today?", Enabled: true, Type: "text", Section: "rehab"},
	}
}

// DefaultLiftQuestions returns the shipped lift question set.
func DefaultLiftQuestions() []domain.Question {
	return []domain.Question{
		{ID: "1", Text: "How motivated was I before my lift today?", Enabled: true, Type: "text", Section: "lift"},
		{ID: "2", Text: "Post-lift, how does my body feel?", Enabled: true, Type: "text", Section: "lift"},
		{ID: "3", Text: "Am I happy that I lifted?", Enabled: true, Type: "text", Section: "lift"},
	}
}

// DefaultImageryPrompts returns the shipped imagery visualization prompts.
func DefaultImageryPrompts() []domain.ImageryPrompt {
	return []domain.ImageryPrompt{
		{ID: "pass", Text: "Visualize a successful pass that's common in your position.", Enabled: true},
		{ID: "goal", Text: "Envision Scoring a Goal: Picture yourself receiving the ball, beating a defender, and scoring.", Enabled: true},
		{ID: "defense", Text: "Mentally Practice Defensive Positioning: Visualize positioning yourself to intercept an opponent's pass.", Enabled: true},
		{ID: "pressure", Text: "Simulate Handling Pressure: Visualize maintaining composure when facing a high-pressure situation.", Enabled: true},
		{ID: "communication", Text: "Imagine Effective Communication: Picture yourself directing teammates during a set piece.", Enabled: true},
		{ID: "tackle", Text: "Recreate a Successful Tackle: Mentally rehearse timing and executing a clean tackle.", Enabled: true},
		{ID: "body", Text: "Visualize Positive Body Language: Imagine displaying confident body language.", Enabled: true},
		{ID: "adversity", Text: "Envision Overcoming Adversity: Picture yourself recovering from a mistake.", Enabled: true},
		{ID: "game", Text: "Simulate Game Scenarios: Mentally rehearse various game situations.", Enabled: true},
		{ID: "best", Text: "Relive your best moment: Close your eyes and think about your most fun game.", Enabled: true},
	}
}
