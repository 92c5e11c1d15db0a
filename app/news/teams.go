package news

import (
	"strings"
)

// GeneralTeam is the attribution used when a headline matches no team
const GeneralTeam = "NFL General"

type teamKeyword struct {
	Keyword string
	Team    string
}

// teamKeywords maps headline nicknames to full team names. Order is
// fixed: matching walks the slice and the first hit wins
var teamKeywords = []teamKeyword{
	{"CARDINALS", "Arizona Cardinals"},
	{"FALCONS", "Atlanta Falcons"},
	{"RAVENS", "Baltimore Ravens"},
	{"BILLS", "Buffalo Bills"},
	{"PANTHERS", "Carolina Panthers"},
	{"BEARS", "Chicago Bears"},
	{"BENGALS", "Cincinnati Bengals"},
	{"BROWNS", "Cleveland Browns"},
	{"COWBOYS", "Dallas Cowboys"},
	{"BRONCOS", "Denver Broncos"},
	{"LIONS", "Detroit Lions"},
	{"PACKERS", "Green Bay Packers"},
	{"TEXANS", "Houston Texans"},
	{"COLTS", "Indianapolis Colts"},
	{"JAGUARS", "Jacksonville Jaguars"},
	{"CHIEFS", "Kansas City Chiefs"},
	{"RAIDERS", "Las Vegas Raiders"},
	{"CHARGERS", "Los Angeles Chargers"},
	{"RAMS", "Los Angeles Rams"},
	{"DOLPHINS", "Miami Dolphins"},
	{"VIKINGS", "Minnesota Vikings"},
	{"PATRIOTS", "New England Patriots"},
	{"SAINTS", "New Orleans Saints"},
	{"GIANTS", "New York Giants"},
	{"JETS", "New York Jets"},
	{"EAGLES", "Philadelphia Eagles"},
	{"STEELERS", "Pittsburgh Steelers"},
	{"49ERS", "San Francisco 49ers"},
	{"SEAHAWKS", "Seattle Seahawks"},
	{"BUCCANEERS", "Tampa Bay Buccaneers"},
	{"BUCS", "Tampa Bay Buccaneers"},
	{"TITANS", "Tennessee Titans"},
	{"COMMANDERS", "Washington Commanders"},
}

// DetectTeam attributes a headline to a team. Nickname keywords are
// checked first in table order, then full team names as
// case-insensitive substrings, otherwise GeneralTeam
func DetectTeam(headline string, teams []string) string {
	upper := strings.ToUpper(headline)

	for _, kw := range teamKeywords {
		if strings.Contains(upper, kw.Keyword) {
			return kw.Team
		}
	}

	for _, team := range teams {
		if strings.Contains(upper, strings.ToUpper(team)) {
			return team
		}
	}

	return GeneralTeam
}
