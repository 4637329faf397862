package models

import "strings"

// Market identifies a player prop market in canonical form.
type Market string

// Supported prop markets.
const (
	MarketPassYds     Market = "pass_yds"
	MarketPassTds     Market = "pass_tds"
	MarketPassInt     Market = "pass_int"
	MarketRushYds     Market = "rush_yds"
	MarketRushTds     Market = "rush_tds"
	MarketReceptions  Market = "receptions"
	MarketReceptionYds Market = "reception_yds"
	MarketReceptionTds Market = "reception_tds"
)

var supportedMarkets = map[Market]bool{
	MarketPassYds:      true,
	MarketPassTds:      true,
	MarketPassInt:      true,
	MarketRushYds:      true,
	MarketRushTds:      true,
	MarketReceptions:   true,
	MarketReceptionYds: true,
	MarketReceptionTds: true,
}

// yardMarkets get looser z-score tiering thresholds than count markets.
var yardMarkets = map[Market]bool{
	MarketPassYds:      true,
	MarketRushYds:      true,
	MarketReceptionYds: true,
}

// NormalizeMarket canonicalizes a raw market label: lowercased, spaces to
// underscores, a leading "player_" prefix stripped, and known vendor synonyms
// mapped. The second return reports whether the market is supported.
func NormalizeMarket(raw string) (Market, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.TrimPrefix(key, "player_")
	if key == "pass_interceptions" {
		key = "pass_int"
	}
	market := Market(key)
	return market, supportedMarkets[market]
}

// IsYardMarket reports whether the market measures yardage.
func (m Market) IsYardMarket() bool {
	return yardMarkets[m]
}

// String implements fmt.Stringer.
func (m Market) String() string {
	return string(m)
}
