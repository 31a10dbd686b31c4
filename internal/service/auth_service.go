package service

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/wfunc/chain-hunter/internal/errors"
	"github.com/wfunc/chain-hunter/internal/game"
	"github.com/wfunc/chain-hunter/internal/logger"
	"github.com/wfunc/chain-hunter/internal/storage"
	"github.com/wfunc/chain-hunter/internal/utils"
)

// AuthService 认证服务接口
type AuthService interface {
	Register(ctx context.Context, name, password, confirm string) error
	Login(ctx context.Context, name, password string) (string, *storage.UserRecord, error)
	Logout(ctx context.Context)
	CurrentUser() (*storage.UserRecord, bool)
	ValidateToken(token string) (*utils.JWTClaims, error)
}

// authService 基于存档层的认证实现。
// 用户口令以 argon2id 哈希落盘，绝不存明文。
type authService struct {
	mu     sync.RWMutex
	store  *storage.Store
	jwt    *utils.JWTManager
	logger *zap.Logger

	users map[string]storage.Credential
	user  *storage.UserRecord
}

// NewAuthService 创建认证服务。users/user 从存档快照恢复。
func NewAuthService(store *storage.Store, jwtManager *utils.JWTManager, snap *storage.Snapshot) AuthService {
	users := snap.Users
	if users == nil {
		users = make(map[string]storage.Credential)
	}
	return &authService{
		store:  store,
		jwt:    jwtManager,
		logger: logger.GetModuleLogger("auth"),
		users:  users,
		user:   snap.User,
	}
}

// Register 注册新用户
func (s *authService) Register(ctx context.Context, name, password, confirm string) error {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return errors.New(errors.ErrInvalidParam)
	}
	if password != confirm {
		return errors.Newf(errors.ErrInvalidParam, "两次输入的密码不一致")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[name]; exists {
		return errors.New(errors.ErrUserExists)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return errors.Wrap(err, errors.ErrUnknown, "密码哈希失败")
	}

	s.users[name] = storage.Credential{Password: hash}
	s.store.Save(game.KeyUsers, s.users)

	s.logger.Info("用户注册成功", zap.String("name", name))
	return nil
}

// Login 登录，成功返回访问令牌
func (s *authService) Login(ctx context.Context, name, password string) (string, *storage.UserRecord, error) {
	name = strings.TrimSpace(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	cred, exists := s.users[name]
	if !exists {
		return "", nil, errors.New(errors.ErrUserNotFound)
	}

	ok, err := utils.VerifyPassword(password, cred.Password)
	if err != nil || !ok {
		return "", nil, errors.New(errors.ErrAuthentication)
	}

	token, err := s.jwt.GenerateAccessToken(name, utils.GenerateSessionID())
	if err != nil {
		return "", nil, errors.Wrap(err, errors.ErrAuthentication, "令牌生成失败")
	}

	user := &storage.UserRecord{Name: name}
	s.user = user
	s.store.Save(game.KeyAuth, true)
	s.store.Save(game.KeyUser, user)

	s.logger.Info("用户登录成功", zap.String("name", name))
	return token, user, nil
}

// Logout 登出并清理会话键
func (s *authService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.store.Delete(game.KeyAuth)
	s.store.Delete(game.KeyUser)
	s.logger.Info("用户已登出")
}

// CurrentUser 当前登录用户
func (s *authService) CurrentUser() (*storage.UserRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, false
	}
	return s.user, true
}

// ValidateToken 校验访问令牌
func (s *authService) ValidateToken(token string) (*utils.JWTClaims, error) {
	return s.jwt.ValidateToken(token)
}
