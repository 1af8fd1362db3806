package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-comment-go/internal/apperr"
	"ai-comment-go/internal/model"
)

func TestAskRoundTrip(t *testing.T) {
	repo := newFakeConversationRepo()
	svc := NewCommentService(repo, &stubLLMClient{answer: "hi there"})
	ctx := context.Background()

	result, err := svc.Ask(ctx, 1, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi there", result.Answer)

	// 回读对话：恰好两条消息，先 user 后 ai
	conversation, err := svc.GetConversation(ctx, result.ConversationID)
	require.NoError(t, err)
	require.Len(t, conversation.Messages, 2)
	assert.Equal(t, model.SenderUser, conversation.Messages[0].Sender)
	assert.Equal(t, "hello", conversation.Messages[0].Content)
	assert.Equal(t, model.SenderAI, conversation.Messages[1].Sender)
	assert.Equal(t, "hi there", conversation.Messages[1].Content)
}

func TestAskEmptyComment(t *testing.T) {
	repo := newFakeConversationRepo()
	svc := NewCommentService(repo, &stubLLMClient{answer: "hi there"})

	for _, comment := range []string{"", "   "} {
		_, err := svc.Ask(context.Background(), 1, comment)
		require.Error(t, err)
		assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	}
	// 校验失败时不会留下任何记录
	assert.Empty(t, repo.conversations)
	assert.Empty(t, repo.messages)
}

func TestAskTooLongComment(t *testing.T) {
	repo := newFakeConversationRepo()
	svc := NewCommentService(repo, &stubLLMClient{answer: "hi there"})

	_, err := svc.Ask(context.Background(), 1, strings.Repeat("a", model.MaxMessageLength+1))
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))

	// 长度按字符计数：恰好 2000 个多字节字符可以通过
	result, err := svc.Ask(context.Background(), 1, strings.Repeat("问", model.MaxMessageLength))
	require.NoError(t, err)
	assert.NotZero(t, result.ConversationID)

	// 超出一个字符即被拒绝
	_, err = svc.Ask(context.Background(), 1, strings.Repeat("问", model.MaxMessageLength+1))
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
}

func TestAskEmptyAnswerIsPersisted(t *testing.T) {
	repo := newFakeConversationRepo()
	svc := NewCommentService(repo, &stubLLMClient{answer: ""})

	result, err := svc.Ask(context.Background(), 1, "hello")
	require.NoError(t, err)
	assert.Equal(t, "", result.Answer)

	conversation, err := svc.GetConversation(context.Background(), result.ConversationID)
	require.NoError(t, err)
	require.Len(t, conversation.Messages, 2)
	assert.Equal(t, "", conversation.Messages[1].Content)
}

func TestAskUpstreamFailureLeavesUserMessage(t *testing.T) {
	repo := newFakeConversationRepo()
	svc := NewCommentService(repo, &stubLLMClient{err: apperr.Wrap(apperr.KindUpstream, "补全失败", errUpstream)})

	_, err := svc.Ask(context.Background(), 1, "hello")
	require.Error(t, err)
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))

	// 补全失败时用户消息保留为孤立的一条提问
	require.Len(t, repo.conversations, 1)
	require.Len(t, repo.messages, 1)
	assert.Equal(t, model.SenderUser, repo.messages[0].Sender)
}

func TestAskAnswerWriteFailure(t *testing.T) {
	repo := newFakeConversationRepo()
	repo.failCreateMessageAfter = 1 // 用户消息成功，AI 消息失败
	svc := NewCommentService(repo, &stubLLMClient{answer: "hi there"})

	_, err := svc.Ask(context.Background(), 1, "hello")
	require.Error(t, err)
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
	require.Len(t, repo.messages, 1)
	assert.Equal(t, model.SenderUser, repo.messages[0].Sender)
}

func TestAskConcurrentCallsGetOwnConversations(t *testing.T) {
	repo := newFakeConversationRepo()
	svc := NewCommentService(repo, &stubLLMClient{answer: "hi there"})
	ctx := context.Background()

	first, err := svc.Ask(ctx, 1, "first question")
	require.NoError(t, err)
	second, err := svc.Ask(ctx, 1, "second question")
	require.NoError(t, err)

	// 同一用户的每次提问都是独立的新对话
	assert.NotEqual(t, first.ConversationID, second.ConversationID)
}

func TestListConversationsNewestFirst(t *testing.T) {
	repo := newFakeConversationRepo()
	svc := NewCommentService(repo, &stubLLMClient{answer: "hi there"})
	ctx := context.Background()

	first, err := svc.Ask(ctx, 1, "first question")
	require.NoError(t, err)
	second, err := svc.Ask(ctx, 2, "second question")
	require.NoError(t, err)

	conversations, err := svc.ListConversations(ctx)
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	assert.Equal(t, second.ConversationID, conversations[0].ID)
	assert.Equal(t, first.ConversationID, conversations[1].ID)
	// 每条对话带归属用户和按时间升序的消息
	assert.Equal(t, uint(2), conversations[0].UserID)
	require.Len(t, conversations[0].Messages, 2)
	assert.Equal(t, model.SenderUser, conversations[0].Messages[0].Sender)
}

func TestGetConversationMissing(t *testing.T) {
	svc := NewCommentService(newFakeConversationRepo(), &stubLLMClient{})

	_, err := svc.GetConversation(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeleteConversationOwnership(t *testing.T) {
	repo := newFakeConversationRepo()
	svc := NewCommentService(repo, &stubLLMClient{answer: "hi there"})
	ctx := context.Background()

	result, err := svc.Ask(ctx, 1, "hello")
	require.NoError(t, err)

	// 其他用户删除返回未找到，记录不动
	err = svc.DeleteConversation(ctx, result.ConversationID, 99)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Len(t, repo.conversations, 1)

	// 归属用户删除成功，消息一并清理
	require.NoError(t, svc.DeleteConversation(ctx, result.ConversationID, 1))
	assert.Empty(t, repo.conversations)
	assert.Empty(t, repo.messages)
}
