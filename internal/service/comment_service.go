package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"ai-comment-go/internal/apperr"
	"ai-comment-go/internal/model"
	"ai-comment-go/internal/repository"
	"ai-comment-go/pkg/llm"
	"ai-comment-go/pkg/log"
)

// completionTimeout 是单次补全调用允许的最长耗时。
const completionTimeout = 30 * time.Second

// CommentService 定义了提问与对话查询的业务操作。
type CommentService interface {
	Ask(ctx context.Context, userID uint, comment string) (*AskResult, error)
	ListConversations(ctx context.Context) ([]model.Conversation, error)
	GetConversation(ctx context.Context, id uint) (*model.Conversation, error)
	DeleteConversation(ctx context.Context, id, userID uint) error
}

// AskResult 是一次提问往返的结果。
type AskResult struct {
	ConversationID uint
	Answer         string
}

// commentService 是 CommentService 接口的实现。
type commentService struct {
	conversationRepo repository.ConversationRepository
	llmClient        llm.Client
}

// NewCommentService 创建一个新的 CommentService 实例。
func NewCommentService(conversationRepo repository.ConversationRepository, llmClient llm.Client) CommentService {
	return &commentService{
		conversationRepo: conversationRepo,
		llmClient:        llmClient,
	}
}

// Ask 执行一次完整的提问往返：
// 新建对话 → 保存用户消息 → 调用补全接口 → 保存 AI 消息。
// 每次提问都是独立的新线程，不携带历史上下文。
// 两次写库与外部调用之间不构成事务：补全失败时已落库的
// 用户消息会成为孤立的一条提问，这是既定行为。
func (s *commentService) Ask(ctx context.Context, userID uint, comment string) (*AskResult, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, apperr.Invalid("提问内容不能为空", "comment")
	}
	// varchar(2000) 按字符计数，多字节内容不能按字节长度判断
	if utf8.RuneCountInString(comment) > model.MaxMessageLength {
		return nil, apperr.Invalid("提问内容过长", "comment")
	}

	// 1. 新建对话
	conversation, err := s.conversationRepo.CreateConversation(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 2. 保存用户提问
	if _, err := s.conversationRepo.CreateMessage(ctx, conversation.ID, model.SenderUser, comment); err != nil {
		return nil, err
	}

	// 3. 同步调用补全接口，限制单次调用时长；
	// 调用方断开时 ctx 取消会一并中止在途请求
	cctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()
	answer, err := s.llmClient.Complete(cctx, comment)
	if err != nil {
		log.Errorf("Ask: completion call failed, conversationId=%d, error: %v", conversation.ID, err)
		return nil, err
	}

	// 4. 保存 AI 回答（允许为空串）
	if _, err := s.conversationRepo.CreateMessage(ctx, conversation.ID, model.SenderAI, answer); err != nil {
		// 回答已经生成但没有落库，只能记录后原样上报
		log.Errorf("Ask: answer generated but not persisted, conversationId=%d, error: %v", conversation.ID, err)
		return nil, err
	}

	return &AskResult{ConversationID: conversation.ID, Answer: answer}, nil
}

// ListConversations 返回全部对话，最新的在前，消息按时间升序。
func (s *commentService) ListConversations(ctx context.Context) ([]model.Conversation, error) {
	return s.conversationRepo.FindAllWithMessages(ctx)
}

// GetConversation 返回一条对话及其全部消息。
func (s *commentService) GetConversation(ctx context.Context, id uint) (*model.Conversation, error) {
	return s.conversationRepo.FindByIDWithMessages(ctx, id)
}

// DeleteConversation 删除一条对话，仅限对话的归属用户。
// 不属于该用户的对话与不存在的对话同样返回未找到。
func (s *commentService) DeleteConversation(ctx context.Context, id, userID uint) error {
	deleted, err := s.conversationRepo.DeleteByIDForUser(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.New(apperr.KindNotFound, "对话不存在或无权删除")
	}
	return nil
}
