package auth

// Auth error codes, kept wire-compatible with the identity provider the
// client apps were written against.
const (
	CodeEmailInUse      = "auth/email-already-in-use"
	CodeWeakPassword    = "auth/weak-password"
	CodeInvalidEmail    = "auth/invalid-email"
	CodeUserNotFound    = "auth/user-not-found"
	CodeWrongPassword   = "auth/wrong-password"
	CodeTooManyRequests = "auth/too-many-requests"
	CodeNetworkFailed   = "auth/network-request-failed"
	CodeInvalidCred     = "auth/invalid-credential"
	CodeUserDisabled    = "auth/user-disabled"
	CodeTokenInvalid    = "auth/invalid-token"
)

var errorMessages = map[string]string{
	CodeEmailInUse:      "이미 사용 중인 이메일입니다.",
	CodeWeakPassword:    "비밀번호가 너무 약합니다. 6자 이상 입력해주세요.",
	CodeInvalidEmail:    "유효하지 않은 이메일 주소입니다.",
	CodeUserNotFound:    "존재하지 않는 사용자입니다.",
	CodeWrongPassword:   "잘못된 비밀번호입니다.",
	CodeTooManyRequests: "너무 많은 요청이 발생했습니다. 잠시 후 다시 시도해주세요.",
	CodeNetworkFailed:   "네트워크 연결을 확인해주세요.",
	CodeInvalidCred:     "인증 정보가 올바르지 않습니다.",
	CodeUserDisabled:    "비활성화된 사용자입니다.",
	CodeTokenInvalid:    "인증 정보가 올바르지 않습니다. 다시 로그인해주세요.",
}

// Message resolves an auth error code to its user-readable message.
func Message(code string) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "알 수 없는 오류가 발생했습니다."
}
