package mail

import (
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"
)

const (
	KindVerification  = "verification"
	KindPasswordReset = "password_reset"
)

func accountLink(clientURL, path, token, email string) string {
	q := url.Values{}
	q.Set("token", token)
	q.Set("email", email)
	return strings.TrimRight(clientURL, "/") + path + "?" + q.Encode()
}

// VerificationEmail builds the email sent after registration.
func VerificationEmail(clientURL, name, email, token string) Message {
	link := accountLink(clientURL, "/verify-email", token, email)
	return Message{
		Kind:    KindVerification,
		To:      email,
		Subject: "Verify Your Email",
		HTML: fmt.Sprintf(`<p>Hi %s,</p><p>Click to verify: <a href="%s">Verify Email</a></p>`,
			html.EscapeString(name), html.EscapeString(link)),
		Text: fmt.Sprintf("Hi %s,\n\nVerify your email address: %s\n", name, link),
	}
}

// PasswordResetEmail builds the email carrying a reset link valid for ttl.
func PasswordResetEmail(clientURL, name, email, token string, ttl time.Duration) Message {
	link := accountLink(clientURL, "/reset-password", token, email)
	minutes := int(ttl / time.Minute)
	return Message{
		Kind:    KindPasswordReset,
		To:      email,
		Subject: "Reset Password",
		HTML: fmt.Sprintf(`<p>Hi %s,</p><p>Click <a href="%s">here</a> to change your password. This link expires in %d minutes.</p>`,
			html.EscapeString(name), html.EscapeString(link), minutes),
		Text: fmt.Sprintf("Hi %s,\n\nChange your password: %s\nThis link expires in %d minutes.\n\nIf you didn't request this, you can safely ignore this email.\n", name, link, minutes),
	}
}
