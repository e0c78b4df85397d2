package recommendation

// MinMaxScale rescales raw scores into [0,1]: the minimum maps to 0 and the
// maximum to 1. When every input is equal there is no variation to preserve,
// so every output becomes 0.5. An empty input is returned as is.
func MinMaxScale(values []float64) []float64 {
	if len(values) == 0 {
		return values
	}

	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	scaled := make([]float64, len(values))
	if maxVal == minVal {
		for i := range scaled {
			scaled[i] = 0.5
		}
		return scaled
	}

	span := maxVal - minVal
	for i, v := range values {
		scaled[i] = (v - minVal) / span
	}
	return scaled
}
