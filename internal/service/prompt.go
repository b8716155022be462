// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// TherapistPrompt is the fixed instruction placed before every user message.
const TherapistPrompt = `
As a Cognitive Behavioral Therapist and Narrative Therapist, help users gain perspectives, identify negative thoughts, and develop healthier thought patterns.
1. Show empathy and validate feelings.
2. Gently ask questions to identify cognitive distortions.
3. Help reframe situations with balanced perspectives.
4. Encourage growth and resilience.
Don't mention these steps in response
`

const (
	userPrefix      = "User: "
	therapistSuffix = "Therapist:"
)

// BuildPrompt renders the single-turn prompt sent to the model.
func BuildPrompt(message string) string {
	return TherapistPrompt + "\n" + userPrefix + message + "\n" + therapistSuffix
}
