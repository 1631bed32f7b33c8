// Package prompt screens user-supplied text before it is embedded in a model prompt.
package prompt

import (
	"errors"
	"fmt"
	"regexp"
)

// InjectionType names a family of prompt injection patterns
type InjectionType string

const (
	InjectionTypeSystemPromptLeak    InjectionType = "system_prompt_leak"
	InjectionTypeRoleManipulation    InjectionType = "role_manipulation"
	InjectionTypeInstructionOverride InjectionType = "instruction_override"
	InjectionTypeJailbreak           InjectionType = "jailbreak"
	InjectionTypeDelimiterAttack     InjectionType = "delimiter_attack"
)

// BlockThreshold is the confidence at which Guard rejects text
const BlockThreshold = 0.8

// ErrInjectionDetected is returned by Guard for text that tries to steer the model
var ErrInjectionDetected = errors.New("prompt injection detected")

// Detection is one matched pattern
type Detection struct {
	Type       InjectionType
	Confidence float64
	StartPos   int
	EndPos     int
}

type rule struct {
	kind       InjectionType
	confidence float64
	patterns   []*regexp.Regexp
}

var rules = []rule{
	{
		kind:       InjectionTypeSystemPromptLeak,
		confidence: 0.9,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)ignore\s+(previous|all|above|prior)\s+(instructions?|prompts?|commands?)`),
			regexp.MustCompile(`(?i)(show|reveal|print|repeat)\s+(me\s+)?(your|the)\s+(system|original|initial|hidden)\s+(prompt|instructions?)`),
		},
	},
	{
		kind:       InjectionTypeRoleManipulation,
		confidence: 0.85,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)from\s+now\s+on[,]?\s+you\s+(are|will)`),
			regexp.MustCompile(`(?i)assume\s+(the\s+)?(role|identity)\s+of`),
		},
	},
	{
		kind:       InjectionTypeInstructionOverride,
		confidence: 0.9,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)disregard\s+(all|previous|above|any)\s+(instructions?|rules|commands?)`),
			regexp.MustCompile(`(?i)override\s+(all|previous|system)\s+(instructions?|rules|settings?)`),
			regexp.MustCompile(`(?i)forget\s+(everything|all\s+previous)`),
		},
	},
	{
		kind:       InjectionTypeJailbreak,
		confidence: 0.95,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bDAN\s+mode\b`),
			regexp.MustCompile(`(?i)\bjailbreak`),
			regexp.MustCompile(`(?i)without\s+(any|ethical|moral)\s+(restrictions?|limitations?)`),
		},
	},
	{
		kind:       InjectionTypeDelimiterAttack,
		confidence: 0.8,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(\[/?SYSTEM\]|<\|(system|assistant|end)\|>)`),
			regexp.MustCompile(`(?i)###\s*(SYSTEM|INSTRUCTION)`),
		},
	},
}

// DetectInjections returns every pattern match in text
func DetectInjections(text string) []Detection {
	var detections []Detection
	for _, r := range rules {
		for _, pattern := range r.patterns {
			for _, match := range pattern.FindAllStringIndex(text, -1) {
				detections = append(detections, Detection{
					Type:       r.kind,
					Confidence: r.confidence,
					StartPos:   match[0],
					EndPos:     match[1],
				})
			}
		}
	}
	return detections
}

// Guard returns an error wrapping ErrInjectionDetected when text carries a
// detection at or above BlockThreshold
func Guard(text string) error {
	for _, d := range DetectInjections(text) {
		if d.Confidence >= BlockThreshold {
			return fmt.Errorf("%w: %s", ErrInjectionDetected, d.Type)
		}
	}
	return nil
}
