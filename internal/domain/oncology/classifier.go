package oncology

import "strings"

// keywordGroup pairs a label with the phrases that select it. Groups
// are checked in order and the first hit wins, so more specific labels
// must come before broader ones.
type keywordGroup struct {
	label    string
	keywords []string
}

var cancerGroups = []keywordGroup{
	{"желудок", []string{"желудок", "гастрит", "c16"}},
	{"кишка", []string{"кишка", "колоректальный", "c18", "c19", "c20"}},
	{"прямая кишка", []string{"прямая кишка", "ректум", "c20"}},
	{"молочная железа", []string{"молочная", "грудь", "c50"}},
}

var stageGroups = []keywordGroup{
	{"I", []string{"стадия i", "t1", "ранняя"}},
	{"II", []string{"стадия ii", "t2"}},
	{"III", []string{"стадия iii", "t3", "n+"}},
	{"IV", []string{"стадия iv", "m1", "метастаз"}},
}

const (
	unknownCancer = "не определен"
	unknownStage  = "не определена"
)

// Classify runs the demo keyword classifier over free-text clinical
// notes. It stands in for a real model, so the confidence is a fixed
// placeholder value.
func Classify(text string) Classification {
	lower := strings.ToLower(text)

	c := Classification{
		CancerType: unknownCancer,
		Stage:      unknownStage,
		Confidence: 0.8,
		ExtractedInfo: ExtractedInfo{
			HasMetastasis: strings.Contains(lower, "метастаз"),
			LymphNodes:    strings.Contains(lower, "n+") || strings.Contains(lower, "n1"),
		},
	}

	for _, g := range cancerGroups {
		if containsAny(lower, g.keywords) {
			c.CancerType = g.label
			break
		}
	}
	for _, g := range stageGroups {
		if containsAny(lower, g.keywords) {
			c.Stage = g.label
			break
		}
	}
	return c
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
