package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/service"
	"github.com/dafibh/dompet/dompet-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupProfileHandler(t *testing.T) (*ProfileHandler, *testutil.MockStore, *domain.User) {
	t.Helper()
	store := testutil.NewMockStore()
	user := addUser(t, store, "an@example.com", "an")
	return NewProfileHandler(service.NewProfileService(store.Users)), store, user
}

func TestGetProfile_Success(t *testing.T) {
	e := echo.New()
	handler, _, user := setupProfileHandler(t)

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/users/profile", "")
	setupAuthContext(c, user.ID)

	err := handler.GetProfile(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.ID != user.ID.String() {
		t.Errorf("Expected id %s, got %s", user.ID, response.ID)
	}
	if response.FullName != "An Nguyen" {
		t.Errorf("Expected full name 'An Nguyen', got %s", response.FullName)
	}
}

func TestGetProfile_Unauthorized(t *testing.T) {
	e := echo.New()
	handler, _, _ := setupProfileHandler(t)

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/users/profile", "")

	err := handler.GetProfile(c)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rec.Code)
	}
}

func TestUpdateProfile_PatchKeepsUnsentFields(t *testing.T) {
	e := echo.New()
	handler, _, user := setupProfileHandler(t)

	c, rec := newJSONContext(e, http.MethodPatch, "/api/v1/users/profile", `{"currency": "usd"}`)
	setupAuthContext(c, user.ID)

	require.NoError(t, handler.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "USD", response.Currency)
	assert.Equal(t, "an", response.Username)
	assert.Equal(t, "An", response.FirstName)
}

func TestUpdateProfile_PutRequiresUsername(t *testing.T) {
	e := echo.New()
	handler, _, user := setupProfileHandler(t)

	c, rec := newJSONContext(e, http.MethodPut, "/api/v1/users/profile", `{"firstName": "Binh"}`)
	setupAuthContext(c, user.ID)

	require.NoError(t, handler.UpdateProfile(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"username"}, fieldsOf(decodeProblem(t, rec)))
}

func TestUpdateProfile_EmailIsIgnored(t *testing.T) {
	e := echo.New()
	handler, _, user := setupProfileHandler(t)

	c, rec := newJSONContext(e, http.MethodPatch, "/api/v1/users/profile", `{"email": "changed@example.com", "lastName": "Tran"}`)
	setupAuthContext(c, user.ID)

	require.NoError(t, handler.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "an@example.com", response.Email)
	assert.Equal(t, "Tran", response.LastName)
}

func TestUpdateProfile_DuplicateUsername(t *testing.T) {
	e := echo.New()
	handler, store, user := setupProfileHandler(t)
	addUser(t, store, "binh@example.com", "binh")

	c, rec := newJSONContext(e, http.MethodPatch, "/api/v1/users/profile", `{"username": "binh"}`)
	setupAuthContext(c, user.ID)

	require.NoError(t, handler.UpdateProfile(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"username"}, fieldsOf(decodeProblem(t, rec)))
}

func TestDeleteAccount_RemovesOwnedData(t *testing.T) {
	e := echo.New()
	handler, store, user := setupProfileHandler(t)

	categoryID := int32(1)
	store.Categories.AddCategory(&domain.Category{ID: categoryID, UserID: user.ID, Name: "Food", Type: domain.TransactionTypeExpense})
	store.Transactions.AddTransaction(&domain.Transaction{UserID: user.ID, CategoryID: &categoryID, Amount: decimal.NewFromInt(10), Type: domain.TransactionTypeExpense})

	c, rec := newJSONContext(e, http.MethodDelete, "/api/v1/users/profile", "")
	setupAuthContext(c, user.ID)

	require.NoError(t, handler.DeleteAccount(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	_, err := store.Users.GetByID(context.Background(), user.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Empty(t, store.Categories.Categories)
	assert.Empty(t, store.Transactions.Transactions)
}

func TestChangePassword_Success(t *testing.T) {
	e := echo.New()
	handler, store, user := setupProfileHandler(t)

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/users/change-password", `{"oldPassword": "`+testPassword+`", "newPassword": "a-brand-new-secret"}`)
	setupAuthContext(c, user.ID)

	require.NoError(t, handler.ChangePassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Password updated successfully", response.Detail)

	stored, err := store.Users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("a-brand-new-secret")))
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	e := echo.New()
	handler, _, user := setupProfileHandler(t)

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/users/change-password", `{"oldPassword": "guess", "newPassword": "a-brand-new-secret"}`)
	setupAuthContext(c, user.ID)

	require.NoError(t, handler.ChangePassword(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	problem := decodeProblem(t, rec)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "oldPassword", problem.Errors[0].Field)
	assert.Equal(t, "wrong password!", problem.Errors[0].Message)
}

func TestChangePassword_WeakNewPassword(t *testing.T) {
	e := echo.New()
	handler, _, user := setupProfileHandler(t)

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/users/change-password", `{"oldPassword": "`+testPassword+`", "newPassword": "short"}`)
	setupAuthContext(c, user.ID)

	require.NoError(t, handler.ChangePassword(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	problem := decodeProblem(t, rec)
	require.NotEmpty(t, problem.Errors)
	for _, fe := range problem.Errors {
		assert.Equal(t, "newPassword", fe.Field)
	}
}

func TestChangePassword_MissingFields(t *testing.T) {
	e := echo.New()
	handler, _, _ := setupProfileHandler(t)

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/users/change-password", `{}`)
	setupAuthContext(c, uuid.New())

	require.NoError(t, handler.ChangePassword(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.ElementsMatch(t, []string{"oldPassword", "newPassword"}, fieldsOf(decodeProblem(t, rec)))
}
