package optionmodels

import "fmt"

// ExerciseStyle is recorded on a contract for reporting purposes only. The
// pricing engine applies European closed forms to every contract regardless
// of style.
type ExerciseStyle string

const (
	American ExerciseStyle = "american"
	European ExerciseStyle = "european"
)

func (e ExerciseStyle) Validate() error {
	if e != American && e != European {
		return fmt.Errorf("ExerciseStyle: Validate: %w: %s", InvalidExerciseStyleErr, e)
	}

	return nil
}
