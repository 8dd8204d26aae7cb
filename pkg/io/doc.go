// Package io reads and writes breadboard layout documents.
//
// The wire format is a JSON object with a "board" section and an
// optional "components" array:
//
//	{
//	  "board": {"columns": 63, "rail_top": true, "rail_bottom": true},
//	  "components": [
//	    {"type": "resistor", "pins": ["A5", "E5"], "value": "220"}
//	  ]
//	}
//
// "rail_top" and "rail_bottom" default to true when absent. Pad
// references are validated structurally here (a resistor must name
// exactly two pins); resolution against the board happens at render
// time so that authoring errors surface as
// [github.com/protoviz/breadboard/pkg/board.ErrInvalidPad].
package io
