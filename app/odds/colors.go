package odds

// DefaultColor is used for any team missing from the color table
const DefaultColor = "#666666"

// teamColors maps each franchise to its primary hex color
var teamColors = map[string]string{
	"Arizona Cardinals":     "#97233F",
	"Atlanta Falcons":       "#A71930",
	"Baltimore Ravens":      "#241773",
	"Buffalo Bills":         "#00338D",
	"Carolina Panthers":     "#0085CA",
	"Chicago Bears":         "#0B162A",
	"Cincinnati Bengals":    "#FB4F14",
	"Cleveland Browns":      "#FF3C00",
	"Dallas Cowboys":        "#003594",
	"Denver Broncos":        "#FB4F14",
	"Detroit Lions":         "#0076B6",
	"Green Bay Packers":     "#203731",
	"Houston Texans":        "#03202F",
	"Indianapolis Colts":    "#002C5F",
	"Jacksonville Jaguars":  "#006778",
	"Kansas City Chiefs":    "#E31837",
	"Las Vegas Raiders":     "#000000",
	"Los Angeles Chargers":  "#002A5E",
	"Los Angeles Rams":      "#003594",
	"Miami Dolphins":        "#008E97",
	"Minnesota Vikings":     "#4F2683",
	"New England Patriots":  "#002244",
	"New Orleans Saints":    "#D3BC8D",
	"New York Giants":       "#0B2265",
	"New York Jets":         "#125740",
	"Philadelphia Eagles":   "#004C54",
	"Pittsburgh Steelers":   "#FFB612",
	"San Francisco 49ers":   "#AA0000",
	"Seattle Seahawks":      "#002244",
	"Tampa Bay Buccaneers":  "#D50A0A",
	"Tennessee Titans":      "#0C2340",
	"Washington Commanders": "#5A1414",
}

// TeamColor returns the team's primary color, or DefaultColor when the
// name is not in the table
func TeamColor(team string) string {
	if color, ok := teamColors[team]; ok {
		return color
	}
	return DefaultColor
}
