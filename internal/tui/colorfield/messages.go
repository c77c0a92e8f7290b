package colorfield

import "github.com/alexisbeaulieu97/colorfield/internal/colorinput"

// ValidatedMsg carries the outcome of a validation run back to the loop.
type ValidatedMsg struct {
	Outcome colorinput.Outcome
}

// PickedMsg carries what the interactive picker yielded.
type PickedMsg struct {
	Result colorinput.PickResult
}

// SubmitMsg asks the model to accept its committed value and quit.
type SubmitMsg struct{}
