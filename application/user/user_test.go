package user_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appuser "github.com/muhammadheryan/contact-book/application/user"
	"github.com/muhammadheryan/contact-book/constant"
	usermocks "github.com/muhammadheryan/contact-book/mocks/repository/user"
	"github.com/muhammadheryan/contact-book/model"
	cerr "github.com/muhammadheryan/contact-book/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestUserApp_Register(t *testing.T) {
	type fields struct {
		userRepo *usermocks.UserRepository
	}
	type args struct {
		ctx context.Context
		req *model.RegisterRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.UserResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: register new user",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Username: "johndoe",
					Password: "password123",
					Name:     "John Doe",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Count", mock.Anything, &model.UserFilter{Username: "johndoe"}).
					Return(int64(0), nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						if ent.Username != "johndoe" || ent.Name != "John Doe" {
							return false
						}
						// password must be stored hashed, never verbatim
						return ent.PasswordHash != "password123" &&
							bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte("password123")) == nil
					})).
					Return(&model.UserEntity{
						Username:     "johndoe",
						Name:         "John Doe",
						PasswordHash: "hashed_password",
					}, nil).
					Once()
			},
			want: &model.UserResponse{
				Username: "johndoe",
				Name:     "John Doe",
			},
			wantErr: false,
		},
		{
			name:   "error: username already exists",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Username: "taken",
					Password: "password123",
					Name:     "Someone",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Count", mock.Anything, &model.UserFilter{Username: "taken"}).
					Return(int64(1), nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrUsernameExists,
		},
		{
			name:   "error: repository Count returns error",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Username: "johndoe",
					Password: "password123",
					Name:     "John Doe",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Count", mock.Anything, &model.UserFilter{Username: "johndoe"}).
					Return(int64(0), errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name:   "error: repository Create returns error",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Username: "johndoe",
					Password: "password123",
					Name:     "John Doe",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Count", mock.Anything, &model.UserFilter{Username: "johndoe"}).
					Return(int64(0), nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, errors.New("create failed")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.userRepo)

			got, err := app.Register(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Register() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	type fields struct {
		userRepo *usermocks.UserRepository
	}
	type args struct {
		ctx context.Context
		req *model.LoginRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.UserResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: login stores a fresh token",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Username: "johndoe", Password: "password123"},
			},
			mockCall: func(f fields) {
				oldToken := "old-token"
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "johndoe"}).
					Return(&model.UserEntity{
						Username:     "johndoe",
						Name:         "John Doe",
						PasswordHash: string(hashedPassword),
						Token:        &oldToken,
					}, nil).
					Once()

				f.userRepo.
					On("UpdateToken", mock.Anything, "johndoe", mock.MatchedBy(func(token *string) bool {
						// overwrite with a new non-empty token, never the old one
						return token != nil && *token != "" && *token != "old-token"
					})).
					Return(nil).
					Once()
			},
			want: &model.UserResponse{
				Username: "johndoe",
				Name:     "John Doe",
			},
			wantErr: false,
		},
		{
			name:   "error: unknown username answers invalid credentials",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Username: "ghost", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "ghost"}).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
		{
			name:   "error: wrong password answers the same invalid credentials",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Username: "johndoe", Password: "wrongpassword"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "johndoe"}).
					Return(&model.UserEntity{
						Username:     "johndoe",
						Name:         "John Doe",
						PasswordHash: string(hashedPassword),
					}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
		{
			name:   "error: repository Get returns error",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Username: "johndoe", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "johndoe"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name:   "error: UpdateToken returns error",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{Username: "johndoe", Password: "password123"},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "johndoe"}).
					Return(&model.UserEntity{
						Username:     "johndoe",
						Name:         "John Doe",
						PasswordHash: string(hashedPassword),
					}, nil).
					Once()

				f.userRepo.
					On("UpdateToken", mock.Anything, "johndoe", mock.AnythingOfType("*string")).
					Return(errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.userRepo)

			got, err := app.Login(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}

			if got.Username != tt.want.Username || got.Name != tt.want.Name {
				t.Fatalf("Login() = %+v, want %+v", got, tt.want)
			}
			if got.Token == "" {
				t.Fatal("Login() token should not be empty")
			}
		})
	}
}

func TestUserApp_Login_TokenFreshness(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	userRepo := usermocks.NewUserRepository(t)
	userRepo.
		On("Get", mock.Anything, &model.UserFilter{Username: "johndoe"}).
		Return(&model.UserEntity{
			Username:     "johndoe",
			Name:         "John Doe",
			PasswordHash: string(hashedPassword),
		}, nil).
		Twice()
	userRepo.
		On("UpdateToken", mock.Anything, "johndoe", mock.AnythingOfType("*string")).
		Return(nil).
		Twice()

	app := appuser.NewUserApp(userRepo)

	first, err := app.Login(context.Background(), &model.LoginRequest{Username: "johndoe", Password: "password123"})
	if err != nil {
		t.Fatalf("first Login() error = %v", err)
	}
	second, err := app.Login(context.Background(), &model.LoginRequest{Username: "johndoe", Password: "password123"})
	if err != nil {
		t.Fatalf("second Login() error = %v", err)
	}

	if first.Token == second.Token {
		t.Fatalf("each login must issue a fresh token, got %q twice", first.Token)
	}
}

func TestUserApp_Authenticate(t *testing.T) {
	type fields struct {
		userRepo *usermocks.UserRepository
	}
	tests := []struct {
		name     string
		fields   fields
		token    string
		mockCall func(f fields)
		want     *model.UserEntity
		wantErr  bool
	}{
		{
			name:   "success: matching token resolves the user",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			token:  "token-1",
			mockCall: func(f fields) {
				token := "token-1"
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Token: "token-1"}).
					Return(&model.UserEntity{
						Username: "johndoe",
						Name:     "John Doe",
						Token:    &token,
					}, nil).
					Once()
			},
			want: &model.UserEntity{Username: "johndoe", Name: "John Doe"},
		},
		{
			name:   "anonymous: empty token never hits the store",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			token:  "",
			want:   nil,
		},
		{
			name:   "anonymous: no user matches the token",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			token:  "stale-token",
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Token: "stale-token"}).
					Return(nil, nil).
					Once()
			},
			want: nil,
		},
		{
			name:   "error: repository Get returns error",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			token:  "token-1",
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Token: "token-1"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.userRepo)

			got, err := app.Authenticate(context.Background(), tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Authenticate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.want == nil {
				if got != nil {
					t.Fatalf("Authenticate() = %+v, want nil", got)
				}
				return
			}
			if got == nil || got.Username != tt.want.Username {
				t.Fatalf("Authenticate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Update(t *testing.T) {
	type fields struct {
		userRepo *usermocks.UserRepository
	}
	type args struct {
		user *model.UserEntity
		req  *model.UpdateUserRequest
	}
	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.UserResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: update name only keeps password hash",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			args: args{
				user: &model.UserEntity{Username: "johndoe", Name: "John Doe", PasswordHash: "prior_hash"},
				req:  &model.UpdateUserRequest{Name: strPtr("Johnny")},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("UpdateProfile", mock.Anything, "johndoe", "Johnny", "prior_hash").
					Return(nil).
					Once()
			},
			want: &model.UserResponse{Username: "johndoe", Name: "Johnny"},
		},
		{
			name:   "success: update password only re-hashes and keeps name",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			args: args{
				user: &model.UserEntity{Username: "johndoe", Name: "John Doe", PasswordHash: "prior_hash"},
				req:  &model.UpdateUserRequest{Password: strPtr("newpassword")},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("UpdateProfile", mock.Anything, "johndoe", "John Doe", mock.MatchedBy(func(hash string) bool {
						return hash != "prior_hash" && hash != "newpassword" &&
							bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpassword")) == nil
					})).
					Return(nil).
					Once()
			},
			want: &model.UserResponse{Username: "johndoe", Name: "John Doe"},
		},
		{
			name:   "success: empty request rewrites prior values unchanged",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			args: args{
				user: &model.UserEntity{Username: "johndoe", Name: "John Doe", PasswordHash: "prior_hash"},
				req:  &model.UpdateUserRequest{},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("UpdateProfile", mock.Anything, "johndoe", "John Doe", "prior_hash").
					Return(nil).
					Once()
			},
			want: &model.UserResponse{Username: "johndoe", Name: "John Doe"},
		},
		{
			name:   "error: repository UpdateProfile returns error",
			fields: fields{userRepo: usermocks.NewUserRepository(t)},
			args: args{
				user: &model.UserEntity{Username: "johndoe", Name: "John Doe", PasswordHash: "prior_hash"},
				req:  &model.UpdateUserRequest{Name: strPtr("Johnny")},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("UpdateProfile", mock.Anything, "johndoe", "Johnny", "prior_hash").
					Return(errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.userRepo)

			got, err := app.Update(context.Background(), tt.args.user, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Update() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Update() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Logout(t *testing.T) {
	userRepo := usermocks.NewUserRepository(t)
	userRepo.
		On("UpdateToken", mock.Anything, "johndoe", (*string)(nil)).
		Return(nil).
		Once()

	app := appuser.NewUserApp(userRepo)

	err := app.Logout(context.Background(), &model.UserEntity{Username: "johndoe"})
	if err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
}
