package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUserLoop_CollectsUntilDeclined(t *testing.T) {
	p := &ScriptPrompter{Responses: []any{
		true, "alice", "s3cret",
		true, "bob", "hunter2",
		false,
	}}

	users, err := RunUserLoop(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, []Credential{
		{Username: "alice", Password: "s3cret"},
		{Username: "bob", Password: "hunter2"},
	}, users)
}

func TestRunUserLoop_RejectsDuplicateUsername(t *testing.T) {
	p := &ScriptPrompter{Responses: []any{
		true, "alice", "one",
		true, "alice", "carol", "two",
		false,
	}}

	users, err := RunUserLoop(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "carol", users[1].Username)
}

func TestRunUserLoop_CancelKeepsCollectedUsers(t *testing.T) {
	p := &ScriptPrompter{Responses: []any{
		true, "alice", "s3cret",
		CancelResponse{},
	}}

	users, err := RunUserLoop(context.Background(), p)
	require.NoError(t, err, "cancelling the sub-loop is not an error")
	assert.Equal(t, []Credential{{Username: "alice", Password: "s3cret"}}, users)
}

func TestRunUserLoop_CancelMidEntryDropsPartialUser(t *testing.T) {
	p := &ScriptPrompter{Responses: []any{
		true, "alice", "s3cret",
		true, "bob", CancelResponse{},
	}}

	users, err := RunUserLoop(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, []Credential{{Username: "alice", Password: "s3cret"}}, users)
}

func TestRunUserLoop_ImmediateDecline(t *testing.T) {
	p := &ScriptPrompter{Responses: []any{false}}

	users, err := RunUserLoop(context.Background(), p)
	require.NoError(t, err)
	assert.Empty(t, users)
}
