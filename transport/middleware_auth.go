package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/contact-book/application/user"
	utilsContext "github.com/muhammadheryan/contact-book/utils/context"
	"github.com/muhammadheryan/contact-book/utils/logger"
	"go.uber.org/zap"
)

// AuthMiddleware resolves the Authorization header (a raw opaque token, no
// scheme prefix) to its user record and attaches it to the request context.
// It never rejects: an absent or non-matching token just leaves the request
// anonymous, and each protected handler gates on the attached identity.
// The token is looked up in the store on every request, so a login or
// logout is visible on the very next call.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			authUser, err := userApp.Authenticate(r.Context(), token)
			if err != nil {
				logger.Error("[AuthMiddleware] err Authenticate", zap.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}
			if authUser == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := utilsContext.SetAuthUser(r.Context(), authUser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
