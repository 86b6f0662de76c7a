package experiments

import "math"

// Elo returns the likely elo difference of a player with the given wins,
// draws and losses, along with its p < 0.05 lower and upper bounds.
func Elo(ws, ds, ls int) (muMin float64, mu float64, muMax float64) {
	N := float64(ws + ds + ls) // total number of games

	if N == 0 {
		return 0, 0, 0
	}

	w := float64(ws) / N
	d := float64(ds) / N
	l := float64(ls) / N

	// empirical mean of the score
	mu = w + d/2

	// standard error of the score
	sigma := math.Sqrt(w*math.Pow(1-mu, 2)+d*math.Pow(0.5-mu, 2)+l*math.Pow(0-mu, 2)) / math.Sqrt(N)

	muMax = mu + phiInv(0.975)*sigma
	muMin = mu + phiInv(0.025)*sigma

	return scoreToElo(muMin), scoreToElo(mu), scoreToElo(muMax)
}

// scoreToElo converts an expected score into an elo difference. Scores of 0
// or 1 have no finite elo and map to 0.
func scoreToElo(x float64) float64 {
	switch {
	case x <= 0, x >= 1:
		return 0

	default:
		return -400 * math.Log10(1/x-1)
	}
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
