package particles

import "math/rand"

// Repeat builds a color buffer holding colors[i] counts[i] times, in order.
func Repeat(colors []Color, counts []int) []Color {
	total := 0
	for _, n := range counts {
		if n > 0 {
			total += n
		}
	}
	out := make([]Color, 0, total)
	for i, n := range counts {
		for j := 0; j < n; j++ {
			out = append(out, colors[i])
		}
	}
	return out
}

// Shuffle permutes colors in place (Fisher-Yates), so particles of one
// category are scattered through the cloud instead of clustered by
// generation order.
func Shuffle(rng *rand.Rand, colors []Color) {
	for i := len(colors) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		colors[i], colors[j] = colors[j], colors[i]
	}
}
