package chat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medTrigui/08-prj-loreal-chatbot/pkg/chat"
)

func TestNewTranscriptSeedsSystemMessage(t *testing.T) {
	tr := chat.NewTranscript("stay on topic")

	require.Equal(t, 1, tr.Len())
	msgs := tr.Snapshot()
	assert.Equal(t, chat.RoleSystem, msgs[0].Role)
	assert.Equal(t, "stay on topic", msgs[0].Content)
}

func TestTranscriptAppendPreservesOrder(t *testing.T) {
	tr := chat.NewTranscript("seed")

	require.NoError(t, tr.Append(chat.Message{Role: chat.RoleUser, Content: "hello"}))
	require.NoError(t, tr.Append(chat.Message{Role: chat.RoleAssistant, Content: "hi there"}))
	require.NoError(t, tr.Append(chat.Message{Role: chat.RoleUser, Content: "thanks"}))

	msgs := tr.Snapshot()
	require.Len(t, msgs, 4)
	assert.Equal(t, chat.RoleSystem, msgs[0].Role)
	assert.Equal(t, "hello", msgs[1].Content)
	assert.Equal(t, "hi there", msgs[2].Content)
	assert.Equal(t, "thanks", msgs[3].Content)
}

func TestTranscriptAppendValidation(t *testing.T) {
	tr := chat.NewTranscript("seed")

	err := tr.Append(chat.Message{Role: chat.RoleUser, Content: ""})
	assert.ErrorIs(t, err, chat.ErrEmptyContent)

	err = tr.Append(chat.Message{Role: "tool", Content: "output"})
	assert.Error(t, err)

	assert.Equal(t, 1, tr.Len())
}

func TestTranscriptSnapshotIsACopy(t *testing.T) {
	tr := chat.NewTranscript("seed")
	require.NoError(t, tr.Append(chat.Message{Role: chat.RoleUser, Content: "hello"}))

	msgs := tr.Snapshot()
	msgs[0] = chat.Message{Role: chat.RoleUser, Content: "mutated"}

	assert.Equal(t, chat.RoleSystem, tr.Snapshot()[0].Role)
	assert.Equal(t, "seed", tr.Snapshot()[0].Content)
}
