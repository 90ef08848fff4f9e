package tui

import "math"

// sparklineChars maps values 0..7 to Unicode block elements ▁▂▃▄▅▆▇█.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline converts values (0..100) into a sparkline string using Unicode blocks.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	runes := make([]rune, len(values))
	for i, v := range values {
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		idx := int(v / 100.0 * 7.0)
		if idx > 7 {
			idx = 7
		}
		runes[i] = sparklineChars[idx]
	}
	return string(runes)
}

// GrowthValues maps terms onto 0..100 on a log scale relative to the largest
// term, so exponential growth reads as a straight ramp. When there are more
// terms than width, only the last width terms are kept.
func GrowthValues(terms []int64, width int) []float64 {
	if width > 0 && len(terms) > width {
		terms = terms[len(terms)-width:]
	}
	if len(terms) == 0 {
		return nil
	}

	top := math.Log1p(float64(terms[len(terms)-1]))
	values := make([]float64, len(terms))
	if top == 0 {
		return values
	}
	for i, t := range terms {
		values[i] = math.Log1p(float64(t)) / top * 100
	}
	return values
}
