package middleware

import "context"

// contextKey defines a custom type for context keys to avoid collisions.
type contextKey string

const userContextKey = contextKey("user")

// UserInfo represents the essential user information stored in the session
// and request context.
type UserInfo struct {
	Subject string
	Role    string
}

// IsAdmin reports whether the request user carries the admin role.
func (u *UserInfo) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}

// GetUserInfo retrieves the user information from the request context,
// falling back to an anonymous user.
func GetUserInfo(ctx context.Context) *UserInfo {
	if userInfo, ok := ctx.Value(userContextKey).(*UserInfo); ok {
		return userInfo
	}
	return &UserInfo{Subject: "anonymous", Role: "anonymous"}
}

// SetUserInfo adds the user information to the request context.
func SetUserInfo(ctx context.Context, userInfo *UserInfo) context.Context {
	return context.WithValue(ctx, userContextKey, userInfo)
}
