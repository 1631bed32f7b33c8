package resilience

import (
	"slices"
	"strings"
)

// ModelPriorityList is the fixed order in which models are tried, most preferred first
type ModelPriorityList struct {
	models []string
}

// NewModelPriorityList builds a priority list, dropping blanks and repeated identifiers
func NewModelPriorityList(models []string) *ModelPriorityList {
	ordered := make([]string, 0, len(models))
	for _, model := range models {
		model = strings.TrimSpace(model)
		if model == "" || slices.Contains(ordered, model) {
			continue
		}
		ordered = append(ordered, model)
	}
	return &ModelPriorityList{models: ordered}
}

// Models returns a copy of the list in priority order
func (l *ModelPriorityList) Models() []string {
	return slices.Clone(l.models)
}
