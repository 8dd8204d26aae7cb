package board_test

import (
	"errors"
	"fmt"

	"github.com/protoviz/breadboard/pkg/board"
)

func ExampleParsePad() {
	p, _ := board.ParsePad("f12")
	fmt.Println(p)
	// Output: F12
}

func ExampleBoard_Pad() {
	b := board.Board{Columns: 63, RailTop: true, RailBottom: true}

	_, err := b.Pad("A64")
	fmt.Println(errors.Is(err, board.ErrInvalidPad))
	// Output: true
}
