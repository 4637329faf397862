package oddsapi

import "time"

// Event is one upcoming game as listed by the odds API.
type Event struct {
	ID           string    `json:"id"`
	SportKey     string    `json:"sport_key"`
	CommenceTime time.Time `json:"commence_time"`
	HomeTeam     string    `json:"home_team"`
	AwayTeam     string    `json:"away_team"`
}

// eventOdds is the per-event odds payload.
type eventOdds struct {
	ID           string      `json:"id"`
	CommenceTime time.Time   `json:"commence_time"`
	Bookmakers   []bookmaker `json:"bookmakers"`
}

type bookmaker struct {
	Title      string       `json:"title"`
	LastUpdate time.Time    `json:"last_update"`
	Markets    []marketData `json:"markets"`
}

type marketData struct {
	Key        string    `json:"key"`
	LastUpdate time.Time `json:"last_update"`
	Outcomes   []outcome `json:"outcomes"`
}

// outcome carries one side of a prop market. Name is "Over" or "Under",
// Description the player the prop is written on.
type outcome struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Team        string  `json:"team,omitempty"`
	Price       float64 `json:"price"`
	Point       float64 `json:"point"`
}
