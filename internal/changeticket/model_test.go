package changeticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatuses(t *testing.T) {
	statuses, err := ParseStatuses("")
	require.NoError(t, err)
	assert.Equal(t, []Status{StatusWaiting}, statuses)

	statuses, err = ParseStatuses(" approved,REJECTED ")
	require.NoError(t, err)
	assert.Equal(t, []Status{StatusApproved, StatusRejected}, statuses)

	_, err = ParseStatuses("WAITING,DONE")
	assert.Error(t, err)
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusWaiting.Terminal())
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusCanceled.Terminal())
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("waiting")
	require.NoError(t, err)
	assert.Equal(t, PolicyWaiting, p)

	_, err = ParsePolicy("latest")
	assert.Error(t, err)
}
