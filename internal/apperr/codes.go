package apperr

// 错误码定义
const (
	// 通用
	CodeInvalidRequest = "ERR_INVALID_REQUEST"
	CodeInternal       = "ERR_INTERNAL_ERROR"
	CodeStaleWrite     = "ERR_STALE_WRITE"
	CodeRateLimited    = "ERR_RATE_LIMITED"

	// 认证
	CodeNoSession          = "ERR_NO_SESSION"
	CodeInvalidToken       = "ERR_INVALID_TOKEN"
	CodeSessionRevoked     = "ERR_SESSION_REVOKED"
	CodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	CodeEmailExists        = "ERR_EMAIL_EXISTS"
	CodeUserBanned         = "ERR_USER_BANNED"
	CodeInvalidVerifyToken = "ERR_INVALID_VERIFICATION_TOKEN"
	CodeInvalidResetToken  = "ERR_INVALID_RESET_TOKEN"
	CodeMailUnavailable    = "ERR_MAIL_UNAVAILABLE"

	// 权限
	CodeForbidden     = "ERR_FORBIDDEN"
	CodeAdminOnly     = "ERR_ADMIN_ONLY"
	CodeNotAuthorized = "ERR_NOT_AUTHORIZED"
	CodeCannotSelf    = "ERR_CANNOT_TARGET_SELF"

	// 资源
	CodeUserNotFound     = "ERR_USER_NOT_FOUND"
	CodePostNotFound     = "ERR_POST_NOT_FOUND"
	CodeCommentNotFound  = "ERR_COMMENT_NOT_FOUND"
	CodeCategoryNotFound = "ERR_CATEGORY_NOT_FOUND"
	CodeTagNotFound      = "ERR_TAG_NOT_FOUND"
	CodeCategoryExists   = "ERR_CATEGORY_EXISTS"
	CodeTagExists        = "ERR_TAG_EXISTS"
	CodeInvalidImage     = "ERR_INVALID_IMAGE"
)
