package reservation

const (
	// PricePerClient is the nightly rate for one guest.
	PricePerClient = 20.0

	breakfastMultiplier = 1.25
)

// CalculatePrice returns the total for clientCount guests staying days nights.
// Breakfast adds 25% to the whole stay.
func CalculatePrice(clientCount, days int, breakfast bool) float64 {
	total := float64(clientCount) * PricePerClient * float64(days)
	if breakfast {
		total *= breakfastMultiplier
	}
	return total
}
