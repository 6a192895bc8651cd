package model

import (
	"encoding/json"
	"strconv"
)

// ScoreColumns is the denormalized score tuple stored next to the opaque
// JSON blob on a Kaoyan record. A nil field means "absent".
type ScoreColumns struct {
	Total     *float64
	Language  *float64
	Structure *float64
	Logic     *float64
}

// NormalizeScores extracts the four numeric sub-scores from a raw grading
// payload. Two provider shapes exist: a detailed one keyed by
// total/language_score/structure_score/logic_score, and a compact one
// carrying only total_score. If any value present in the detailed shape
// fails numeric conversion, all four come back absent — a partial tuple
// would be silently wrong, so extraction is all-or-nothing.
func NormalizeScores(analysis map[string]any) ScoreColumns {
	score, ok := analysis["score"].(map[string]any)
	if !ok {
		return ScoreColumns{}
	}

	if score["total"] != nil || score["language_score"] != nil {
		var cols ScoreColumns
		fields := []struct {
			key  string
			dest **float64
		}{
			{"total", &cols.Total},
			{"language_score", &cols.Language},
			{"structure_score", &cols.Structure},
			{"logic_score", &cols.Logic},
		}
		for _, f := range fields {
			v, present := score[f.key]
			if !present || v == nil {
				continue
			}
			n, ok := toFloat(v)
			if !ok {
				return ScoreColumns{}
			}
			*f.dest = &n
		}
		return cols
	}

	if v, present := score["total_score"]; present && v != nil {
		if n, ok := toFloat(v); ok {
			return ScoreColumns{Total: &n}
		}
	}
	return ScoreColumns{}
}

// ToFloat converts the numeric encodings a JSON payload may carry.
// Numeric strings count, matching the write-time normalizer.
func ToFloat(v any) (float64, bool) {
	return toFloat(v)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
