package peaks

import "sort"

// Peak describes one detected peak.
type Peak struct {
	Index      int
	Height     float64
	Prominence float64
	// LeftBase and RightBase are the channels of the valleys that bound the
	// peak on each side.
	LeftBase  int
	RightBase int
}

// Find returns the channel indices of the detected peaks, tallest first.
func Find(data []float64, opts ...Option) []int {
	found := Detect(data, opts...)
	if len(found) == 0 {
		return nil
	}
	out := make([]int, len(found))
	for i, p := range found {
		out[i] = p.Index
	}
	return out
}

// Detect runs peak detection and returns full peak records, tallest first.
// Equal heights keep scan order.
func Detect(data []float64, opts ...Option) []Peak {
	return DetectWithConfig(data, ApplyOptions(opts...))
}

// DetectWithConfig is Detect with an explicit Config.
func DetectWithConfig(data []float64, cfg Config) []Peak {
	candidates := localMaxima(data)
	if len(candidates) == 0 {
		return nil
	}

	if cfg.MinDistance > 1 {
		candidates = selectByDistance(data, candidates, cfg.MinDistance)
	}

	out := make([]Peak, 0, len(candidates))
	for _, idx := range candidates {
		prom, left, right := prominence(data, idx)
		if prom < cfg.MinProminence {
			continue
		}
		out = append(out, Peak{
			Index:      idx,
			Height:     data[idx],
			Prominence: prom,
			LeftBase:   left,
			RightBase:  right,
		})
	}

	// candidates are in scan order, so a stable sort keeps ties in scan order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Height > out[j].Height
	})

	if cfg.TopK > 0 && len(out) > cfg.TopK {
		out = out[:cfg.TopK]
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// localMaxima returns the indices of all local maxima in scan order. A flat
// top of equal samples counts once, at its first sample. The first and last
// samples are never maxima.
func localMaxima(x []float64) []int {
	var out []int
	n := len(x)
	i := 1
	for i < n-1 {
		if x[i-1] < x[i] {
			ahead := i + 1
			for ahead < n-1 && x[ahead] == x[i] {
				ahead++
			}
			if x[ahead] < x[i] {
				out = append(out, i)
			}
			i = ahead
			continue
		}
		i++
	}
	return out
}

// selectByDistance greedily keeps the tallest candidates and drops every
// other candidate closer than distance channels to a kept one.
func selectByDistance(x []float64, candidates []int, distance int) []int {
	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return x[candidates[order[a]]] > x[candidates[order[b]]]
	})

	keep := make([]bool, len(candidates))
	for i := range keep {
		keep[i] = true
	}

	for _, k := range order {
		if !keep[k] {
			continue
		}
		idx := candidates[k]
		for j := k - 1; j >= 0 && idx-candidates[j] < distance; j-- {
			keep[j] = false
		}
		for j := k + 1; j < len(candidates) && candidates[j]-idx < distance; j++ {
			keep[j] = false
		}
	}

	out := make([]int, 0, len(candidates))
	for i, idx := range candidates {
		if keep[i] {
			out = append(out, idx)
		}
	}
	return out
}

// prominence walks outward from peak until a strictly higher sample or the
// signal edge and returns the height above the higher of the two minima.
func prominence(x []float64, peak int) (prom float64, leftBase, rightBase int) {
	h := x[peak]

	leftMin := h
	leftBase = peak
	for i := peak; i >= 0 && x[i] <= h; i-- {
		if x[i] < leftMin {
			leftMin = x[i]
			leftBase = i
		}
	}

	rightMin := h
	rightBase = peak
	for i := peak; i < len(x) && x[i] <= h; i++ {
		if x[i] < rightMin {
			rightMin = x[i]
			rightBase = i
		}
	}

	return h - max(leftMin, rightMin), leftBase, rightBase
}
