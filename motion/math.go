package motion

// Approach moves v toward target by at most maxDelta without overshooting.
func Approach(v, target, maxDelta float64) float64 {
	if v < target {
		v += maxDelta
		if v > target {
			return target
		}
		return v
	}
	v -= maxDelta
	if v < target {
		return target
	}
	return v
}

// Clamp constrains v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
