package events

import "strings"

// Color is the semantic colour of a status badge. Themes map it to a hex.
type Color string

const (
	ColorDefault Color = ""
	ColorGreen   Color = "green"
	ColorRed     Color = "red"
	ColorBlack   Color = "black"
	ColorOrange  Color = "orange"
)

// Badge is the rendered form of a ticket status code.
type Badge struct {
	Code  string
	Label string
	Color Color
}

var statusTable = map[string]Badge{
	"onsale":      {Label: "On Sale", Color: ColorGreen},
	"offsale":     {Label: "Off Sale", Color: ColorRed},
	"canceled":    {Label: "Canceled", Color: ColorBlack},
	"postponed":   {Label: "Postponed", Color: ColorOrange},
	"rescheduled": {Label: "Rescheduled", Color: ColorOrange},
}

// StatusBadge maps a status code to its label and colour. Unknown codes show
// the code itself in the default colour.
func StatusBadge(code string) Badge {
	code = strings.TrimSpace(code)
	if b, ok := statusTable[code]; ok {
		b.Code = code
		return b
	}
	return Badge{Code: code, Label: code, Color: ColorDefault}
}
