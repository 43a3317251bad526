// Package parties holds static display attributes for parliamentary
// parties. Pure configuration data; party names are keyed exactly as the
// member registry records them.
package parties

// DefaultColor is the neutral color for parties without an assigned one,
// matching the independents' color so unrecognized groupings blend in
// rather than stand out.
const DefaultColor = "#7f8c8d"

var colors = map[string]string{
	"自民党":    "#c0392b",
	"立憲民主党":  "#2980b9",
	"中道改革連合": "#3498db",
	"公明党":    "#8e44ad",
	"日本維新の会": "#e67e22",
	"国民民主党":  "#27ae60",
	"共産党":    "#e74c3c",
	"れいわ新選組": "#e91e63",
	"社民党":    "#795548",
	"参政党":    "#ff6d00",
	"チームみらい": "#00bcd4",
	"日本保守党":  "#607d8b",
	"沖縄の風":   "#009688",
	"有志の会":   "#9c27b0",
	"無所属":    "#7f8c8d",
}

// Color returns the display color for a party, falling back to
// DefaultColor for parties without an assigned one.
func Color(party string) string {
	if c, ok := colors[party]; ok {
		return c
	}
	return DefaultColor
}
