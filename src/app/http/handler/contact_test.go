package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"phonebook/src/app/http/response"
	"phonebook/src/app/middleware"
	"phonebook/src/core/domain"
	"phonebook/src/core/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockContactService mocks the ContactService interface
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) GetAllContacts(ctx context.Context) ([]ports.ContactDto, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.ContactDto), args.Error(1)
}

func (m *MockContactService) GetContactByID(ctx context.Context, id int64) (*ports.ContactDto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.ContactDto), args.Error(1)
}

func (m *MockContactService) CreateContact(ctx context.Context, in ports.CreateContactDto) (*ports.ContactDto, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.ContactDto), args.Error(1)
}

func (m *MockContactService) UpdateContact(ctx context.Context, id int64, in ports.CreateContactDto) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockContactService) DeleteContact(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newContactRouter(svc ports.ContactService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil))))
	NewContactHandler(svc).Register(r)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorDetail(t *testing.T, w *httptest.ResponseRecorder) response.ErrorDetail {
	t.Helper()
	var body response.Error
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestContactHandler_List(t *testing.T) {
	svc := new(MockContactService)
	svc.On("GetAllContacts", mock.Anything).Return([]ports.ContactDto{
		{ID: 1, Name: "John Doe", PhoneNumber: "1234567890"},
		{ID: 2, Name: "Jane Doe", PhoneNumber: "0987654321"},
	}, nil)

	w := do(newContactRouter(svc), http.MethodGet, "/contacts", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"id":1,"name":"John Doe","phoneNumber":"1234567890"},
		{"id":2,"name":"Jane Doe","phoneNumber":"0987654321"}
	]`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestContactHandler_List_Empty(t *testing.T) {
	svc := new(MockContactService)
	svc.On("GetAllContacts", mock.Anything).Return([]ports.ContactDto{}, nil)

	w := do(newContactRouter(svc), http.MethodGet, "/contacts", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestContactHandler_Get(t *testing.T) {
	svc := new(MockContactService)
	svc.On("GetContactByID", mock.Anything, int64(1)).
		Return(&ports.ContactDto{ID: 1, Name: "John Doe", PhoneNumber: "1234567890"}, nil)

	w := do(newContactRouter(svc), http.MethodGet, "/contacts/1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"John Doe","phoneNumber":"1234567890"}`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestContactHandler_Get_NotFound(t *testing.T) {
	svc := new(MockContactService)
	svc.On("GetContactByID", mock.Anything, int64(99)).
		Return(nil, domain.NewContactNotFoundError(99))

	w := do(newContactRouter(svc), http.MethodGet, "/contacts/99", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorDetail(t, w).Code)
}

func TestContactHandler_Get_InvalidID(t *testing.T) {
	for _, id := range []string{"abc", "1.5", "99999999999999999999"} {
		t.Run(id, func(t *testing.T) {
			svc := new(MockContactService)

			w := do(newContactRouter(svc), http.MethodGet, "/contacts/"+id, "")

			assert.Equal(t, http.StatusBadRequest, w.Code)
			detail := errorDetail(t, w)
			assert.Equal(t, "VALIDATION_ERROR", detail.Code)
			assert.Equal(t, "id", detail.Field)
			svc.AssertNotCalled(t, "GetContactByID", mock.Anything, mock.Anything)
		})
	}
}

func TestContactHandler_NonPositiveIDsAreNotFound(t *testing.T) {
	tests := []struct {
		method string
		target string
		body   string
		setup  func(svc *MockContactService)
	}{
		{
			method: http.MethodGet,
			target: "/contacts/0",
			setup: func(svc *MockContactService) {
				svc.On("GetContactByID", mock.Anything, int64(0)).Return(nil, domain.NewContactNotFoundError(0))
			},
		},
		{
			method: http.MethodGet,
			target: "/contacts/-4",
			setup: func(svc *MockContactService) {
				svc.On("GetContactByID", mock.Anything, int64(-4)).Return(nil, domain.NewContactNotFoundError(-4))
			},
		},
		{
			method: http.MethodPut,
			target: "/contacts/-1",
			body:   `{"name":"Nobody","phoneNumber":"000"}`,
			setup: func(svc *MockContactService) {
				svc.On("UpdateContact", mock.Anything, int64(-1), mock.Anything).Return(domain.NewContactNotFoundError(-1))
			},
		},
		{
			method: http.MethodDelete,
			target: "/contacts/0",
			setup: func(svc *MockContactService) {
				svc.On("DeleteContact", mock.Anything, int64(0)).Return(domain.NewContactNotFoundError(0))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			svc := new(MockContactService)
			tt.setup(svc)

			w := do(newContactRouter(svc), tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "NOT_FOUND", errorDetail(t, w).Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestContactHandler_Create(t *testing.T) {
	svc := new(MockContactService)
	in := ports.CreateContactDto{Name: "New Contact", PhoneNumber: "1112223333"}
	svc.On("CreateContact", mock.Anything, in).
		Return(&ports.ContactDto{ID: 1, Name: "New Contact", PhoneNumber: "1112223333"}, nil)

	w := do(newContactRouter(svc), http.MethodPost, "/contacts",
		`{"name":"New Contact","phoneNumber":"1112223333"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/contacts/1", w.Header().Get("Location"))
	assert.JSONEq(t, `{"id":1,"name":"New Contact","phoneNumber":"1112223333"}`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestContactHandler_Create_InvalidBody(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "missing phone", body: `{"name":"New Contact"}`, wantField: "phoneNumber"},
		{name: "missing name", body: `{"phoneNumber":"1112223333"}`, wantField: "name"},
		{name: "malformed", body: `{"name":`, wantField: "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockContactService)

			w := do(newContactRouter(svc), http.MethodPost, "/contacts", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			detail := errorDetail(t, w)
			assert.Equal(t, "VALIDATION_ERROR", detail.Code)
			assert.Equal(t, tt.wantField, detail.Field)
			svc.AssertNotCalled(t, "CreateContact", mock.Anything, mock.Anything)
		})
	}
}

func TestContactHandler_Create_StoreFailure(t *testing.T) {
	svc := new(MockContactService)
	svc.On("CreateContact", mock.Anything, mock.Anything).
		Return(nil, errors.New("insert contact: connection reset by peer"))

	w := do(newContactRouter(svc), http.MethodPost, "/contacts",
		`{"name":"New Contact","phoneNumber":"1112223333"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	detail := errorDetail(t, w)
	assert.Equal(t, "INTERNAL_ERROR", detail.Code)
	assert.NotContains(t, detail.Message, "connection reset")
	assert.Empty(t, w.Header().Get("Location"))
}

func TestContactHandler_Update(t *testing.T) {
	svc := new(MockContactService)
	in := ports.CreateContactDto{Name: "John Updated", PhoneNumber: "9876543210"}
	svc.On("UpdateContact", mock.Anything, int64(1), in).Return(nil).Once()

	w := do(newContactRouter(svc), http.MethodPut, "/contacts/1",
		`{"name":"John Updated","phoneNumber":"9876543210"}`)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	svc.AssertNumberOfCalls(t, "UpdateContact", 1)
}

func TestContactHandler_Update_NotFound(t *testing.T) {
	svc := new(MockContactService)
	svc.On("UpdateContact", mock.Anything, int64(99), mock.Anything).
		Return(domain.NewContactNotFoundError(99))

	w := do(newContactRouter(svc), http.MethodPut, "/contacts/99",
		`{"name":"Nobody","phoneNumber":"000"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorDetail(t, w).Code)
}

func TestContactHandler_Delete(t *testing.T) {
	svc := new(MockContactService)
	svc.On("DeleteContact", mock.Anything, int64(1)).Return(nil).Once()

	w := do(newContactRouter(svc), http.MethodDelete, "/contacts/1", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	svc.AssertNumberOfCalls(t, "DeleteContact", 1)
}

func TestContactHandler_Delete_NotFound(t *testing.T) {
	svc := new(MockContactService)
	svc.On("DeleteContact", mock.Anything, int64(99)).Return(domain.NewContactNotFoundError(99))

	w := do(newContactRouter(svc), http.MethodDelete, "/contacts/99", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
