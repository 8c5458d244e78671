package respond

import (
	"fmt"
	"strings"
)

// Fixed reply templates. The decider only ever fills these in; surface
// fluency beyond simple verb agreement is out of scope.
const (
	msgSarcasm        = "Oh no, that sounds frustrating. I hope everything is okay!"
	msgCannotAnswer   = "That's a good question. I'm not sure what the answer is."
	msgDefault        = "I understand. Thank you for telling me."
	msgLearnFallback  = "I had trouble remembering that. Could you try phrasing it differently?"
	msgQueryFallback  = "I had trouble answering that. Could you ask me again in a moment?"
	msgNotUnderstood  = "I'm sorry, I didn't quite understand that."
	defaultObservAgnt = "It"
)

func learnedMessage(relationship, subject, fact string) string {
	return fmt.Sprintf("Okay, I've learned that the %s of %s is %s.", relationship, subject, fact)
}

func updatedMessage(relationship, subject, fact string) string {
	return fmt.Sprintf("Okay, I've updated my belief. I now understand that the %s of %s is %s.", relationship, subject, fact)
}

func alreadyKnownMessage(relationship, subject, fact string) string {
	return fmt.Sprintf("I already know that the %s of %s is %s.", relationship, subject, fact)
}

func conflictMessage(relationship, subject string, knownFacts []string) string {
	return fmt.Sprintf("That's interesting, but my understanding is that the %s of %s is %s.",
		relationship, subject, formatList(knownFacts))
}

func answerMessage(relationship, subject string, answers []string) string {
	verb := "is"
	if len(answers) > 1 {
		verb = "are"
	}
	return fmt.Sprintf("Based on what I know, the %s of %s %s: %s.",
		relationship, subject, verb, formatList(answers))
}

func noInformationMessage(relationship, subject string) string {
	return fmt.Sprintf("I'm sorry, I don't have any information about the %s of %s.", relationship, subject)
}

func observationMessage(agent, attribute string) string {
	if agent == "" {
		agent = defaultObservAgnt
	}
	return fmt.Sprintf("%s certainly seems to be %s. That's an interesting observation.", agent, attribute)
}

// formatList joins values as prose: "a", "a and b" stays comma-joined
// with an "and" before the final item.
func formatList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
}
