package errors

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// ErrorCode 错误码类型
type ErrorCode int

// 错误码定义（按模块分组）
const (
	// 通用错误 (1000-1999)
	ErrUnknown          ErrorCode = 1000
	ErrInvalidParam     ErrorCode = 1001
	ErrNotFound         ErrorCode = 1002
	ErrAlreadyExists    ErrorCode = 1003
	ErrPermissionDenied ErrorCode = 1004
	ErrTimeout          ErrorCode = 1005
	ErrCanceled         ErrorCode = 1006
	ErrNotImplemented   ErrorCode = 1007

	// 游戏错误 (2000-2999)
	ErrNoCharacter       ErrorCode = 2000
	ErrNoEnemy           ErrorCode = 2001
	ErrInsufficientGold  ErrorCode = 2002
	ErrInsufficientMana  ErrorCode = 2003
	ErrSkillNotReady     ErrorCode = 2004
	ErrSkillLocked       ErrorCode = 2005
	ErrNoStatPoints      ErrorCode = 2006
	ErrClassRestriction  ErrorCode = 2007
	ErrItemNotFound      ErrorCode = 2008
	ErrInvalidGameSpeed  ErrorCode = 2009

	// 链上错误 (4000-4999)
	ErrWalletNotConnected ErrorCode = 4000
	ErrHouseNotReady      ErrorCode = 4001
	ErrHouseExists        ErrorCode = 4002
	ErrAuctionNotCreated  ErrorCode = 4003
	ErrChainCallFailed    ErrorCode = 4004
	ErrObjectExtraction   ErrorCode = 4005
	ErrInvalidObjectID    ErrorCode = 4006
	ErrPackageNotSet      ErrorCode = 4007

	// 持久化错误 (5000-5999)
	ErrDatabaseConnect ErrorCode = 5000
	ErrStorageRead     ErrorCode = 5001
	ErrStorageWrite    ErrorCode = 5002
	ErrStorageDelete   ErrorCode = 5003
	ErrDataCorrupt     ErrorCode = 5004

	// 配置错误 (6000-6999)
	ErrConfigLoad     ErrorCode = 6000
	ErrConfigParse    ErrorCode = 6001
	ErrConfigValidate ErrorCode = 6002
	ErrConfigMissing  ErrorCode = 6003

	// 认证错误 (7000-7999)
	ErrAuthentication ErrorCode = 7000
	ErrAuthorization  ErrorCode = 7001
	ErrTokenExpired   ErrorCode = 7002
	ErrTokenInvalid   ErrorCode = 7003
	ErrUserExists     ErrorCode = 7004
	ErrUserNotFound   ErrorCode = 7005
)

// 错误码消息映射
var errorMessages = map[ErrorCode]string{
	// 通用错误
	ErrUnknown:          "未知错误",
	ErrInvalidParam:     "无效的参数",
	ErrNotFound:         "资源未找到",
	ErrAlreadyExists:    "资源已存在",
	ErrPermissionDenied: "权限不足",
	ErrTimeout:          "操作超时",
	ErrCanceled:         "操作已取消",
	ErrNotImplemented:   "功能未实现",

	// 游戏错误
	ErrNoCharacter:      "角色未创建",
	ErrNoEnemy:          "当前没有敌人",
	ErrInsufficientGold: "金币不足",
	ErrInsufficientMana: "法力不足",
	ErrSkillNotReady:    "技能冷却中",
	ErrSkillLocked:      "技能未解锁",
	ErrNoStatPoints:     "没有可分配的属性点",
	ErrClassRestriction: "职业限制",
	ErrItemNotFound:     "物品不存在",
	ErrInvalidGameSpeed: "无效的游戏速度",

	// 链上错误
	ErrWalletNotConnected: "钱包未连接",
	ErrHouseNotReady:      "拍卖行未初始化",
	ErrHouseExists:        "拍卖行已初始化",
	ErrAuctionNotCreated:  "拍卖未创建",
	ErrChainCallFailed:    "链上调用失败",
	ErrObjectExtraction:   "未能提取对象ID",
	ErrInvalidObjectID:    "无效的对象ID",
	ErrPackageNotSet:      "合约包未配置",

	// 持久化错误
	ErrDatabaseConnect: "数据库连接失败",
	ErrStorageRead:     "读取存档失败",
	ErrStorageWrite:    "写入存档失败",
	ErrStorageDelete:   "删除存档失败",
	ErrDataCorrupt:     "存档数据损坏",

	// 配置错误
	ErrConfigLoad:     "配置加载失败",
	ErrConfigParse:    "配置解析失败",
	ErrConfigValidate: "配置验证失败",
	ErrConfigMissing:  "配置项缺失",

	// 认证错误
	ErrAuthentication: "认证失败",
	ErrAuthorization:  "授权失败",
	ErrTokenExpired:   "令牌已过期",
	ErrTokenInvalid:   "无效的令牌",
	ErrUserExists:     "用户名已被注册",
	ErrUserNotFound:   "用户不存在",
}

// AppError 应用错误结构
type AppError struct {
	Code    ErrorCode    `json:"code"`            // 错误码
	Message string       `json:"message"`         // 错误消息
	Details string       `json:"details"`         // 详细信息
	Cause   error        `json:"-"`               // 原始错误
	Stack   []StackFrame `json:"stack,omitempty"` // 调用栈
}

// StackFrame 调用栈帧
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// Error 实现error接口
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%d] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 返回原始错误
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails 添加详细信息
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// WithCause 添加原因错误
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	if cause != nil && e.Details == "" {
		e.Details = cause.Error()
	}
	return e
}

// New 创建新的应用错误
func New(code ErrorCode, details ...string) *AppError {
	message, ok := errorMessages[code]
	if !ok {
		message = errorMessages[ErrUnknown]
	}

	err := &AppError{
		Code:    code,
		Message: message,
	}

	if len(details) > 0 {
		err.Details = strings.Join(details, "; ")
	}

	// 捕获调用栈
	err.captureStack(2)

	return err
}

// Newf 创建格式化的应用错误
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	details := fmt.Sprintf(format, args...)
	return New(code, details)
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, details ...string) *AppError {
	if err == nil {
		return nil
	}

	// 如果已经是AppError，保留原始错误码
	if appErr, ok := err.(*AppError); ok {
		if len(details) > 0 {
			appErr.Details = strings.Join(details, "; ") + "; " + appErr.Details
		}
		return appErr
	}

	appErr := New(code, details...)
	appErr.Cause = err
	if appErr.Details == "" {
		appErr.Details = err.Error()
	}

	return appErr
}

// Wrapf 包装格式化错误
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AppError {
	details := fmt.Sprintf(format, args...)
	return Wrap(err, code, details)
}

// Is 判断错误是否为指定错误码
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	appErr, ok := err.(*AppError)
	return ok && appErr.Code == code
}

// GetCode 获取错误码
func GetCode(err error) ErrorCode {
	if err == nil {
		return 0
	}

	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}

	return ErrUnknown
}

// captureStack 捕获调用栈
func (e *AppError) captureStack(skip int) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(skip+1, pcs)

	if n > 0 {
		frames := runtime.CallersFrames(pcs[:n])
		for {
			frame, more := frames.Next()

			// 跳过runtime和本包的调用
			if strings.Contains(frame.Function, "runtime.") ||
				strings.Contains(frame.Function, "github.com/wfunc/chain-hunter/internal/errors") {
				if !more {
					break
				}
				continue
			}

			e.Stack = append(e.Stack, StackFrame{
				Function: frame.Function,
				File:     frame.File,
				Line:     frame.Line,
			})

			if !more {
				break
			}

			// 只保留前10个栈帧
			if len(e.Stack) >= 10 {
				break
			}
		}
	}
}

// GetStack 获取格式化的调用栈
func (e *AppError) GetStack() string {
	if len(e.Stack) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, frame := range e.Stack {
		builder.WriteString(fmt.Sprintf("%d. %s\n   %s:%d\n",
			i+1, frame.Function, frame.File, frame.Line))
	}

	return builder.String()
}

// HTTPStatus 返回对应的HTTP状态码
func (e *AppError) HTTPStatus() int {
	switch {
	case e.Code == ErrNotFound || e.Code == ErrItemNotFound || e.Code == ErrUserNotFound:
		return 404 // Not Found
	case e.Code == ErrInvalidParam || e.Code == ErrAlreadyExists:
		return 400 // Bad Request
	case e.Code == ErrPermissionDenied:
		return 403 // Forbidden
	case e.Code == ErrTimeout:
		return 408 // Request Timeout
	case e.Code >= 7000 && e.Code <= 7003:
		return 401 // Unauthorized
	case e.Code == ErrUserExists:
		return 409 // Conflict
	case e.Code >= 2000 && e.Code <= 2999:
		return 400 // 游戏校验错误均为请求问题
	case e.Code == ErrChainCallFailed || e.Code == ErrObjectExtraction:
		return 502 // 链上调用失败
	case e.Code >= 4000 && e.Code <= 4999:
		return 400 // 链上前置校验未通过
	case e.Code >= 5000 && e.Code <= 5999:
		return 503 // Service Unavailable
	default:
		return 500 // Internal Server Error
	}
}

// IsValidation 判断是否为本地校验错误（外部调用发起前即被拦截）
func IsValidation(err error) bool {
	code := GetCode(err)
	switch code {
	case ErrWalletNotConnected,
		ErrHouseNotReady,
		ErrHouseExists,
		ErrAuctionNotCreated,
		ErrPackageNotSet,
		ErrInvalidObjectID:
		return true
	}
	return code >= 2000 && code <= 2999
}

// IsSoft 判断是否为软失败（链上效果可能已经发生，仅本地记录缺失）
func IsSoft(err error) bool {
	return GetCode(err) == ErrObjectExtraction
}

// ErrorResponse API错误响应结构
type ErrorResponse struct {
	Success   bool      `json:"success"`
	Error     *AppError `json:"error,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp int64     `json:"timestamp"`
}

// NewErrorResponse 创建错误响应
func NewErrorResponse(err *AppError, requestID string) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     err,
		RequestID: requestID,
		Timestamp: time.Now().Unix(),
	}
}
