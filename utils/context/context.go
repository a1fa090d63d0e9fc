package context

import (
	"context"

	"github.com/muhammadheryan/contact-book/constant"
	"github.com/muhammadheryan/contact-book/model"
)

// SetAuthUser attaches the authenticated user entity to the context.
func SetAuthUser(ctx context.Context, user *model.UserEntity) context.Context {
	return context.WithValue(ctx, constant.AuthUserKey, user)
}

// GetAuthUser returns the authenticated user attached by the auth
// middleware, or false when the request is anonymous.
func GetAuthUser(ctx context.Context) (*model.UserEntity, bool) {
	v := ctx.Value(constant.AuthUserKey)
	if v == nil {
		return nil, false
	}
	user, ok := v.(*model.UserEntity)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
