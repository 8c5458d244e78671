package nats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubjectPrefixFollowsStreamName(t *testing.T) {
	assert.Equal(t, "dialogue_events", SubjectPrefix("DIALOGUE_EVENTS"))
	assert.Equal(t, "staging_events", SubjectPrefix("STAGING_EVENTS"))
}
