package optionmodels

import "fmt"

type PositionSide string

const (
	Long  PositionSide = "long"
	Short PositionSide = "short"
)

func (s PositionSide) Validate() error {
	if s != Long && s != Short {
		return fmt.Errorf("PositionSide: Validate: %w: %s", InvalidPositionSideErr, s)
	}

	return nil
}
