package middleware

import (
	"net/http"

	"github.com/casbin/casbin/v2"

	"go-intranet-app/internal/session"
)

// Authorizer creates a new middleware for authorization. The subject and
// role come from the session; absent both, the request is treated as
// anonymous. Casbin enforces role/path/method.
func Authorizer(e casbin.IEnforcer, sm session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject := sm.GetString(r.Context(), "user_subject")
			role := sm.GetString(r.Context(), "user_role")
			if subject == "" {
				subject = "anonymous"
			}
			if role == "" {
				role = "anonymous"
			}

			userInfo := &UserInfo{Subject: subject, Role: role}
			r = r.WithContext(SetUserInfo(r.Context(), userInfo))

			allowed, err := e.Enforce(role, r.URL.Path, r.Method)
			if err != nil {
				http.Error(w, "Authorization error", http.StatusInternalServerError)
				return
			}
			if !allowed {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
