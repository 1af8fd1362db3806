package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"ai-comment-go/internal/apperr"
	"ai-comment-go/internal/model"
	"ai-comment-go/internal/repository"
	"ai-comment-go/pkg/hash"
	"ai-comment-go/pkg/log"
	"ai-comment-go/pkg/token"
)

// UserService 接口定义了所有与用户相关的业务操作。
type UserService interface {
	Register(ctx context.Context, email, password, nickname string) (uint, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, tokenString string) error
	GetProfile(ctx context.Context, userID uint) (*model.User, error)
}

// LoginResult 是登录成功后返回给客户端的会话信息。
type LoginResult struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// userService 是 UserService 接口的实现。
type userService struct {
	userRepo   repository.UserRepository
	blacklist  repository.TokenBlacklist
	jwtManager *token.JWTManager
}

// NewUserService 创建一个新的 UserService 实例。
func NewUserService(userRepo repository.UserRepository, blacklist repository.TokenBlacklist, jwtManager *token.JWTManager) UserService {
	return &userService{
		userRepo:   userRepo,
		blacklist:  blacklist,
		jwtManager: jwtManager,
	}
}

// Register 处理用户注册的业务逻辑。
func (s *userService) Register(ctx context.Context, email, password, nickname string) (uint, error) {
	// 1. 校验输入，一次性收集所有不合法的字段
	var invalidFields []string
	if !IsValidEmail(email) {
		invalidFields = append(invalidFields, "email")
	}
	if !IsValidPassword(password) {
		invalidFields = append(invalidFields, "password")
	}
	if nickname == "" {
		invalidFields = append(invalidFields, "nickname")
	}
	if len(invalidFields) > 0 {
		return 0, apperr.Invalid("邮箱或密码格式不正确", invalidFields...)
	}

	// 2. 检查邮箱是否已被使用
	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return 0, apperr.New(apperr.KindConflict, "该邮箱已被使用")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, apperr.Wrap(apperr.KindStorage, "查询用户失败", err)
	}

	// 3. 对密码进行哈希处理，明文不落库
	hashedPassword, err := hash.HashPassword(password)
	if err != nil {
		return 0, apperr.Wrap(apperr.KindStorage, "密码哈希失败", err)
	}

	// 4. 创建新用户（昵称冲突由唯一键兜底）
	newUser := &model.User{
		Email:    email,
		Password: hashedPassword,
		Nickname: nickname,
	}
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return 0, err
	}

	return newUser.ID, nil
}

// Login 处理用户登录的业务逻辑。
// 用户不存在和密码错误统一返回同一个失败，避免暴露账号是否存在。
func (s *userService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if !IsValidEmail(email) {
		return nil, apperr.Invalid("邮箱格式不正确", "email")
	}

	// 1. 查找用户
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindUnauthorized, "邮箱或密码不正确")
		}
		return nil, apperr.Wrap(apperr.KindStorage, "查询用户失败", err)
	}

	// 2. 验证密码
	if !hash.CheckPasswordHash(password, user.Password) {
		return nil, apperr.New(apperr.KindUnauthorized, "邮箱或密码不正确")
	}

	// 3. 签发会话 token
	tokenString, err := s.jwtManager.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStorage, "签发 token 失败", err)
	}

	return &LoginResult{
		Token:    tokenString,
		Email:    user.Email,
		Nickname: user.Nickname,
	}, nil
}

// Logout 处理用户登出逻辑，将 token 加入黑名单。
// token 的剩余有效期作为黑名单条目的过期时间。
func (s *userService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.jwtManager.VerifyToken(tokenString)
	if err != nil {
		return apperr.Wrap(apperr.KindUnauthorized, "无效的 token", err)
	}
	expiration := time.Until(claims.ExpiresAt.Time)
	if err := s.blacklist.Add(ctx, tokenString, expiration); err != nil {
		log.Error("Logout: failed to blacklist token", err)
		return apperr.Wrap(apperr.KindStorage, "登出失败", err)
	}
	return nil
}

// GetProfile 根据用户 ID 获取用户公开信息。
func (s *userService) GetProfile(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "用户不存在")
		}
		return nil, apperr.Wrap(apperr.KindStorage, "查询用户失败", err)
	}
	return user, nil
}
