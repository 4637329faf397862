package normalize

// positionAliases collapses depth-chart variants onto the codes used by
// projection providers.
var positionAliases = map[string]string{
	"QB":   "QB",
	"HB":   "RB",
	"TB":   "RB",
	"FB":   "RB",
	"RB":   "RB",
	"WR":   "WR",
	"TE":   "TE",
	"PK":   "K",
	"K":    "K",
	"P":    "P",
	"PR":   "ST",
	"KR":   "ST",
	"LS":   "ST",
	"CB":   "CB",
	"DB":   "DB",
	"S":    "S",
	"SS":   "S",
	"FS":   "S",
	"DE":   "DL",
	"DT":   "DL",
	"NT":   "DL",
	"DL":   "DL",
	"OLB":  "LB",
	"ILB":  "LB",
	"MLB":  "LB",
	"LB":   "LB",
	"EDGE": "LB",
	"OG":   "OL",
	"OT":   "OL",
	"OL":   "OL",
	"C":    "OL",
	"G":    "OL",
	"T":    "OL",
	"DST":  "DST",
	"DEF":  "DST",
}

// teamAliases maps full team and city names (already lowercased with collapsed
// whitespace) onto the short codes sportsbooks and projection feeds share.
var teamAliases = map[string]string{
	"arizona cardinals":    "ari",
	"arizona":              "ari",
	"atlanta falcons":      "atl",
	"atlanta":              "atl",
	"baltimore ravens":     "bal",
	"baltimore":            "bal",
	"buffalo bills":        "buf",
	"buffalo":              "buf",
	"carolina panthers":    "car",
	"carolina":             "car",
	"chicago bears":        "chi",
	"chicago":              "chi",
	"cincinnati bengals":   "cin",
	"cincinnati":           "cin",
	"cleveland browns":     "cle",
	"cleveland":            "cle",
	"dallas cowboys":       "dal",
	"dallas":               "dal",
	"denver broncos":       "den",
	"denver":               "den",
	"detroit lions":        "det",
	"detroit":              "det",
	"green bay packers":    "gb",
	"green bay":            "gb",
	"houston texans":       "hou",
	"houston":              "hou",
	"indianapolis colts":   "ind",
	"indianapolis":         "ind",
	"jacksonville jaguars": "jax",
	"jacksonville":         "jax",
	"jac":                  "jax",
	"kansas city chiefs":   "kc",
	"kansas city":          "kc",
	"las vegas raiders":    "lv",
	"las vegas":            "lv",
	"oakland raiders":      "lv",
	"los angeles chargers": "lac",
	"la chargers":          "lac",
	"los angeles rams":     "lar",
	"la rams":              "lar",
	"miami dolphins":       "mia",
	"miami":                "mia",
	"minnesota vikings":    "min",
	"minnesota":            "min",
	"new england patriots": "ne",
	"new england":          "ne",
	"new orleans saints":   "no",
	"new orleans":          "no",
	"new york giants":      "nyg",
	"ny giants":            "nyg",
	"new york jets":        "nyj",
	"ny jets":              "nyj",
	"philadelphia eagles":  "phi",
	"philadelphia":         "phi",
	"pittsburgh steelers":  "pit",
	"pittsburgh":           "pit",
	"san francisco 49ers":  "sf",
	"san francisco":        "sf",
	"seattle seahawks":     "sea",
	"seattle":              "sea",
	"tampa bay buccaneers": "tb",
	"tampa bay":            "tb",
	"tennessee titans":     "ten",
	"tennessee":            "ten",
	"washington commanders": "was",
	"washington":           "was",
	"wsh":                  "was",
}
