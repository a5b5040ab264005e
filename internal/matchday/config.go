package matchday

import "time"

// Config holds configuration for the matchday simulation run.
type Config struct {
	BaseURL         string        // Base URL of the service
	NumObservations int           // Number of observations to generate
	NumScouts       int           // Number of simulated scouts
	NumPlayers      int           // Number of simulated players
	TopN            int           // Number of top entries to fetch from standings
	Workers         int           // Number of concurrent workers
	Timeout         time.Duration // HTTP request timeout
	OutputFile      string        // Output file for observations
	LogFile         string        // Log file for run output
	Verbose         bool          // Enable verbose logging
	Seed            int64         // Seed for the observation generator
}

// Reading represents one attribute reading on the wire.
type Reading struct {
	Value      float64 `json:"value"`
	Confidence float64 `json:"confidence"`
	Count      int     `json:"count"`
}

// Observation represents a scouting observation to be submitted.
type Observation struct {
	ObservationID  string             `json:"observation_id"`
	PlayerID       string             `json:"player_id"`
	ScoutID        string             `json:"scout_id"`
	Week           int                `json:"week"`
	Season         int                `json:"season"`
	Readings       map[string]Reading `json:"readings"`
	HasAbility     bool               `json:"has_ability"`
	AbilityStars   float64            `json:"ability_stars,omitempty"`
	PotentialStars float64            `json:"potential_stars,omitempty"`
}

// Entry represents a standings entry.
type Entry struct {
	Rank     int     `json:"rank"`
	ScoutID  string  `json:"scout_id"`
	Accuracy float64 `json:"accuracy"`
	Resolved int     `json:"resolved"`
	Correct  int     `json:"correct"`
	Streak   int     `json:"streak"`
	Oracle   bool    `json:"oracle"`
}

// AckResponse represents the response from observation submission.
type AckResponse struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

// Stats holds simulation statistics.
type Stats struct {
	ObservationsGenerated  int
	ObservationsSubmitted  int
	ObservationsSuccessful int
	ObservationsDuplicate  int
	ObservationsFailed     int
	DuplicatesVerified     int
	RanksRetrieved         int
	StandingsEntries       int
	StartTime              time.Time
	EndTime                time.Time
	Duration               time.Duration
}
