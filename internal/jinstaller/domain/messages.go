package domain

// AnsweredMsg is sent when the terminal confirmation receives an answer
type AnsweredMsg struct {
	Outcome Outcome
}
