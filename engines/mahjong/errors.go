package mahjong

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBlockComposition = errors.New("invalid block composition")
	ErrInvalidNotation         = errors.New("invalid tile notation")
	ErrInvalidHand             = errors.New("invalid hand")
	ErrHandNotComplete         = errors.New("hand is not complete")
	ErrMissingWinningTile      = errors.New("winning tile required")
)

// NotImplementedError 役种判定尚未实现，与"不成立"区分开
type NotImplementedError struct {
	Yaku Yaku
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("yaku %s: not implemented", e.Yaku)
}
