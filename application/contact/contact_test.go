package contact_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appcontact "github.com/muhammadheryan/contact-book/application/contact"
	"github.com/muhammadheryan/contact-book/constant"
	contactmocks "github.com/muhammadheryan/contact-book/mocks/repository/contact"
	"github.com/muhammadheryan/contact-book/model"
	cerr "github.com/muhammadheryan/contact-book/utils/errors"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

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

func TestContactApp_Create(t *testing.T) {
	type fields struct {
		contactRepo *contactmocks.ContactRepository
	}
	tests := []struct {
		name     string
		fields   fields
		username string
		req      *model.CreateContactRequest
		mockCall func(f fields)
		want     *model.ContactResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:     "success: contact is attached to the caller",
			fields:   fields{contactRepo: contactmocks.NewContactRepository(t)},
			username: "johndoe",
			req: &model.CreateContactRequest{
				FirstName: "Jane",
				LastName:  strPtr("Smith"),
				Email:     strPtr("jane@example.com"),
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.ContactEntity) bool {
						return ent.Username == "johndoe" && ent.FirstName == "Jane"
					})).
					Return(&model.ContactEntity{
						ID:        7,
						FirstName: "Jane",
						LastName:  strPtr("Smith"),
						Email:     strPtr("jane@example.com"),
						Username:  "johndoe",
					}, nil).
					Once()
			},
			want: &model.ContactResponse{
				ID:        7,
				FirstName: "Jane",
				LastName:  strPtr("Smith"),
				Email:     strPtr("jane@example.com"),
			},
		},
		{
			name:     "error: repository Create returns error",
			fields:   fields{contactRepo: contactmocks.NewContactRepository(t)},
			username: "johndoe",
			req:      &model.CreateContactRequest{FirstName: "Jane"},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.ContactEntity")).
					Return(nil, errors.New("db error")).
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
			app := appcontact.NewContactApp(tt.fields.contactRepo)

			got, err := app.Create(context.Background(), tt.username, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Create() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestContactApp_Get(t *testing.T) {
	type fields struct {
		contactRepo *contactmocks.ContactRepository
	}
	tests := []struct {
		name     string
		fields   fields
		username string
		id       uint64
		mockCall func(f fields)
		want     *model.ContactResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:     "success: own contact resolves",
			fields:   fields{contactRepo: contactmocks.NewContactRepository(t)},
			username: "johndoe",
			id:       7,
			mockCall: func(f fields) {
				f.contactRepo.
					On("Get", mock.Anything, "johndoe", uint64(7)).
					Return(&model.ContactEntity{ID: 7, FirstName: "Jane", Username: "johndoe"}, nil).
					Once()
			},
			want: &model.ContactResponse{ID: 7, FirstName: "Jane"},
		},
		{
			name:     "error: someone else's contact answers the same not found as a missing id",
			fields:   fields{contactRepo: contactmocks.NewContactRepository(t)},
			username: "mallory",
			id:       7,
			mockCall: func(f fields) {
				// compound predicate: id 7 exists but belongs to johndoe,
				// so the lookup for mallory finds no row
				f.contactRepo.
					On("Get", mock.Anything, "mallory", uint64(7)).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:     "error: repository Get returns error",
			fields:   fields{contactRepo: contactmocks.NewContactRepository(t)},
			username: "johndoe",
			id:       7,
			mockCall: func(f fields) {
				f.contactRepo.
					On("Get", mock.Anything, "johndoe", uint64(7)).
					Return(nil, errors.New("db error")).
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
			app := appcontact.NewContactApp(tt.fields.contactRepo)

			got, err := app.Get(context.Background(), tt.username, tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Get() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Get() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestContactApp_Update(t *testing.T) {
	type fields struct {
		contactRepo *contactmocks.ContactRepository
	}
	tests := []struct {
		name     string
		fields   fields
		username string
		id       uint64
		req      *model.UpdateContactRequest
		mockCall func(f fields)
		want     *model.ContactResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:     "success: full-field replace after resolve",
			fields:   fields{contactRepo: contactmocks.NewContactRepository(t)},
			username: "johndoe",
			id:       7,
			req: &model.UpdateContactRequest{
				FirstName: "Janet",
				Phone:     strPtr("555-0100"),
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Get", mock.Anything, "johndoe", uint64(7)).
					Return(&model.ContactEntity{
						ID:        7,
						FirstName: "Jane",
						LastName:  strPtr("Smith"),
						Email:     strPtr("jane@example.com"),
						Username:  "johndoe",
					}, nil).
					Once()

				// every mutable field is replaced, including the ones the
				// request left nil
				f.contactRepo.
					On("Update", mock.Anything, mock.MatchedBy(func(ent *model.ContactEntity) bool {
						return ent.ID == 7 && ent.Username == "johndoe" &&
							ent.FirstName == "Janet" &&
							ent.LastName == nil && ent.Email == nil &&
							ent.Phone != nil && *ent.Phone == "555-0100"
					})).
					Return(nil).
					Once()
			},
			want: &model.ContactResponse{
				ID:        7,
				FirstName: "Janet",
				Phone:     strPtr("555-0100"),
			},
		},
		{
			name:     "error: resolve fails before any write",
			fields:   fields{contactRepo: contactmocks.NewContactRepository(t)},
			username: "mallory",
			id:       7,
			req:      &model.UpdateContactRequest{FirstName: "Janet"},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Get", mock.Anything, "mallory", uint64(7)).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:     "error: repository Update returns error",
			fields:   fields{contactRepo: contactmocks.NewContactRepository(t)},
			username: "johndoe",
			id:       7,
			req:      &model.UpdateContactRequest{FirstName: "Janet"},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Get", mock.Anything, "johndoe", uint64(7)).
					Return(&model.ContactEntity{ID: 7, FirstName: "Jane", Username: "johndoe"}, nil).
					Once()

				f.contactRepo.
					On("Update", mock.Anything, mock.AnythingOfType("*model.ContactEntity")).
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
			app := appcontact.NewContactApp(tt.fields.contactRepo)

			got, err := app.Update(context.Background(), tt.username, tt.id, tt.req)
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

func TestContactApp_Delete(t *testing.T) {
	type fields struct {
		contactRepo *contactmocks.ContactRepository
	}
	tests := []struct {
		name     string
		fields   fields
		username string
		id       uint64
		mockCall func(f fields)
		want     *model.ContactResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:     "success: delete returns the previous state",
			fields:   fields{contactRepo: contactmocks.NewContactRepository(t)},
			username: "johndoe",
			id:       7,
			mockCall: func(f fields) {
				f.contactRepo.
					On("Get", mock.Anything, "johndoe", uint64(7)).
					Return(&model.ContactEntity{ID: 7, FirstName: "Jane", Username: "johndoe"}, nil).
					Once()

				f.contactRepo.
					On("Delete", mock.Anything, "johndoe", uint64(7)).
					Return(nil).
					Once()
			},
			want: &model.ContactResponse{ID: 7, FirstName: "Jane"},
		},
		{
			name:     "error: foreign contact is not deletable and not revealed",
			fields:   fields{contactRepo: contactmocks.NewContactRepository(t)},
			username: "mallory",
			id:       7,
			mockCall: func(f fields) {
				f.contactRepo.
					On("Get", mock.Anything, "mallory", uint64(7)).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcontact.NewContactApp(tt.fields.contactRepo)

			got, err := app.Delete(context.Background(), tt.username, tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Delete() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Delete() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestContactApp_Search(t *testing.T) {
	type fields struct {
		contactRepo *contactmocks.ContactRepository
	}
	tests := []struct {
		name       string
		fields     fields
		username   string
		req        *model.SearchContactRequest
		mockCall   func(f fields)
		wantItems  int
		wantPaging model.Paging
		wantErr    bool
	}{
		{
			name:     "success: no filters returns all own contacts paginated",
			fields:   fields{contactRepo: contactmocks.NewContactRepository(t)},
			username: "johndoe",
			req:      &model.SearchContactRequest{Page: 1, Size: 10},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Search", mock.Anything, "johndoe", &model.SearchContactRequest{Page: 1, Size: 10}).
					Return([]model.ContactEntity{
						{ID: 1, FirstName: "Jane", Username: "johndoe"},
						{ID: 2, FirstName: "Joe", Username: "johndoe"},
					}, int64(25), nil).
					Once()
			},
			wantItems:  2,
			wantPaging: model.Paging{CurrentPage: 1, TotalPage: 3, Size: 10},
		},
		{
			name:     "success: page beyond the data is empty, total pages still correct",
			fields:   fields{contactRepo: contactmocks.NewContactRepository(t)},
			username: "johndoe",
			req:      &model.SearchContactRequest{Page: 9, Size: 10},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Search", mock.Anything, "johndoe", &model.SearchContactRequest{Page: 9, Size: 10}).
					Return([]model.ContactEntity{}, int64(25), nil).
					Once()
			},
			wantItems:  0,
			wantPaging: model.Paging{CurrentPage: 9, TotalPage: 3, Size: 10},
		},
		{
			name:     "success: zero matches means zero total pages",
			fields:   fields{contactRepo: contactmocks.NewContactRepository(t)},
			username: "johndoe",
			req:      &model.SearchContactRequest{Name: "nobody", Page: 1, Size: 10},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Search", mock.Anything, "johndoe", &model.SearchContactRequest{Name: "nobody", Page: 1, Size: 10}).
					Return([]model.ContactEntity{}, int64(0), nil).
					Once()
			},
			wantItems:  0,
			wantPaging: model.Paging{CurrentPage: 1, TotalPage: 0, Size: 10},
		},
		{
			name:     "success: zero page and size fall back to defaults",
			fields:   fields{contactRepo: contactmocks.NewContactRepository(t)},
			username: "johndoe",
			req:      &model.SearchContactRequest{},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Search", mock.Anything, "johndoe", &model.SearchContactRequest{Page: 1, Size: 10}).
					Return([]model.ContactEntity{}, int64(0), nil).
					Once()
			},
			wantItems:  0,
			wantPaging: model.Paging{CurrentPage: 1, TotalPage: 0, Size: 10},
		},
		{
			name:     "error: repository Search returns error",
			fields:   fields{contactRepo: contactmocks.NewContactRepository(t)},
			username: "johndoe",
			req:      &model.SearchContactRequest{Page: 1, Size: 10},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Search", mock.Anything, "johndoe", mock.AnythingOfType("*model.SearchContactRequest")).
					Return(nil, int64(0), errors.New("db error")).
					Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcontact.NewContactApp(tt.fields.contactRepo)

			got, err := app.Search(context.Background(), tt.username, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Search() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, constant.ErrInternal)
				return
			}

			if len(got.Items) != tt.wantItems {
				t.Fatalf("Search() items = %d, want %d", len(got.Items), tt.wantItems)
			}
			if !reflect.DeepEqual(got.Paging, tt.wantPaging) {
				t.Fatalf("Search() paging = %+v, want %+v", got.Paging, tt.wantPaging)
			}
		})
	}
}
