package identify

import "strings"

// hindiMarkers are the phrases that introduce a Hindi name line. The model
// is only loosely prompted, so several spellings show up in practice.
var hindiMarkers = []string{"hindi name:", "hindi:", "in hindi:"}

// absentValues are answers that mean "no Hindi name", case-insensitively.
// They leave the NameNotAvailable sentinel in place.
var absentValues = map[string]bool{
	"unknown":       true,
	"not available": true,
	"n/a":           true,
	"":              true,
}

// Parse extracts a best-effort PlantInfo from the inference service's raw
// multi-line answer. It never fails: unrecognized lines are skipped, and
// missing fields keep their sentinel defaults. The pass is line-oriented
// with no lookahead; bullets attach to the most recent season header, and
// a repeated header simply re-points the cursor so its bullets accumulate
// on the season's existing list.
func Parse(text string) PlantInfo {
	info := NewPlantInfo()

	currentSection := ""
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		switch {
		case strings.HasPrefix(lower, "common name:"):
			info.CommonName = valueAfterColon(line)
		case containsAny(lower, hindiMarkers):
			name := valueAfterColon(line)
			if !absentValues[strings.ToLower(name)] {
				info.HindiName = name
			}
		case seasonHeader(line) != "":
			currentSection = seasonHeader(line)
		case currentSection != "" && strings.HasPrefix(line, "•"):
			tip := strings.TrimSpace(strings.TrimLeft(line, "• "))
			info.CareInstructions[currentSection] = append(info.CareInstructions[currentSection], tip)
		}
	}

	return info
}

// seasonHeader returns the season name if the line is a recognized
// "<Season> Care:" header, anchored at line start with exact casing.
func seasonHeader(line string) string {
	for _, season := range Seasons {
		if strings.HasPrefix(line, season+" Care:") {
			return season
		}
	}
	return ""
}

func valueAfterColon(line string) string {
	_, value, found := strings.Cut(line, ":")
	if !found {
		return ""
	}
	return strings.TrimSpace(value)
}

func containsAny(s string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
