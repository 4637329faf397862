package edge

// EVPerDollar returns the expected value per dollar staked given the win
// probability and the net payout per unit.
func EVPerDollar(prob, payout float64) float64 {
	return prob*payout - (1.0 - prob)
}

// KellyFraction returns the non-negative Kelly stake fraction.
func KellyFraction(prob, payout float64) float64 {
	if payout <= 0 {
		return 0
	}
	fraction := (payout*prob - (1.0 - prob)) / payout
	if fraction < 0 {
		return 0
	}
	return fraction
}

// UnitSize converts a scaled Kelly fraction to staking units, clamped to the
// configured band when positive.
func UnitSize(kelly float64, cfg Config) float64 {
	if kelly <= 0 {
		return 0
	}
	units := kelly * cfg.BankrollUnits
	if units < cfg.MinUnit {
		units = cfg.MinUnit
	}
	if units > cfg.MaxUnit {
		units = cfg.MaxUnit
	}
	return units
}
