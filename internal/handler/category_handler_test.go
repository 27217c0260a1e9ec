package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/service"
	"github.com/dafibh/dompet/dompet-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCategoryHandler() (*CategoryHandler, *testutil.MockStore) {
	store := testutil.NewMockStore()
	return NewCategoryHandler(service.NewCategoryService(store.Categories)), store
}

func withID(c echo.Context, id int32) {
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(int(id)))
}

func TestCreateCategory_AppliesDefaults(t *testing.T) {
	e := echo.New()
	handler, _ := setupCategoryHandler()
	userID := uuid.New()

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/categories", `{"name": "Coffee", "type": "expense"}`)
	setupAuthContext(c, userID)

	require.NoError(t, handler.CreateCategory(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response CategoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Coffee", response.Name)
	assert.Equal(t, "expense", response.Type)
	assert.Equal(t, domain.DefaultCategoryIcon, response.Icon)
	assert.Equal(t, domain.DefaultCategoryColor, response.Color)
	assert.False(t, response.IsDefault)
}

func TestCreateCategory_Validation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing name", `{"type": "expense"}`, "name"},
		{"missing type", `{"name": "Coffee"}`, "type"},
		{"bad type", `{"name": "Coffee", "type": "transfer"}`, "type"},
		{"bad color", `{"name": "Coffee", "type": "expense", "color": "blue"}`, "color"},
		{"long name", `{"name": "` + strings.Repeat("a", domain.MaxCategoryNameLength+1) + `", "type": "expense"}`, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			handler, _ := setupCategoryHandler()

			c, rec := newJSONContext(e, http.MethodPost, "/api/v1/categories", tt.body)
			setupAuthContext(c, uuid.New())

			require.NoError(t, handler.CreateCategory(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, []string{tt.field}, fieldsOf(decodeProblem(t, rec)))
		})
	}
}

func TestCreateCategory_DuplicateNameAndType(t *testing.T) {
	e := echo.New()
	handler, store := setupCategoryHandler()
	userID := uuid.New()
	store.Categories.AddCategory(&domain.Category{UserID: userID, Name: "Food", Type: domain.TransactionTypeExpense})

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/categories", `{"name": "Food", "type": "expense"}`)
	setupAuthContext(c, userID)

	require.NoError(t, handler.CreateCategory(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"name"}, fieldsOf(decodeProblem(t, rec)))

	// Same name with the other type is a different category
	c, rec = newJSONContext(e, http.MethodPost, "/api/v1/categories", `{"name": "Food", "type": "income"}`)
	setupAuthContext(c, userID)

	require.NoError(t, handler.CreateCategory(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestGetCategories_SearchAndOrdering(t *testing.T) {
	e := echo.New()
	handler, store := setupCategoryHandler()
	userID := uuid.New()
	for _, name := range []string{"Food", "Fuel", "Rent"} {
		store.Categories.AddCategory(&domain.Category{UserID: userID, Name: name, Type: domain.TransactionTypeExpense})
	}
	store.Categories.AddCategory(&domain.Category{UserID: uuid.New(), Name: "Fun", Type: domain.TransactionTypeExpense})

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/categories?search=f&ordering=-name", "")
	setupAuthContext(c, userID)

	require.NoError(t, handler.GetCategories(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response []CategoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 2)
	assert.Equal(t, "Fuel", response[0].Name)
	assert.Equal(t, "Food", response[1].Name)
}

func TestGetCategory_OtherUsersCategoryIsNotFound(t *testing.T) {
	e := echo.New()
	handler, store := setupCategoryHandler()
	owner := uuid.New()
	category := &domain.Category{UserID: owner, Name: "Food", Type: domain.TransactionTypeExpense}
	store.Categories.AddCategory(category)

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/categories/1", "")
	setupAuthContext(c, uuid.New())
	withID(c, category.ID)

	require.NoError(t, handler.GetCategory(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ErrorTypeNotFound, decodeProblem(t, rec).Type)
}

func TestGetCategory_InvalidID(t *testing.T) {
	e := echo.New()
	handler, _ := setupCategoryHandler()

	c, rec := newJSONContext(e, http.MethodGet, "/api/v1/categories/abc", "")
	setupAuthContext(c, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, handler.GetCategory(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateCategory_PatchAndPut(t *testing.T) {
	e := echo.New()
	handler, store := setupCategoryHandler()
	userID := uuid.New()
	category := &domain.Category{UserID: userID, Name: "Food", Type: domain.TransactionTypeExpense, Icon: "🍔", Color: "#F59E0B"}
	store.Categories.AddCategory(category)

	c, rec := newJSONContext(e, http.MethodPatch, "/api/v1/categories/1", `{"color": "#000000"}`)
	setupAuthContext(c, userID)
	withID(c, category.ID)

	require.NoError(t, handler.UpdateCategory(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var response CategoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Food", response.Name)
	assert.Equal(t, "🍔", response.Icon)
	assert.Equal(t, "#000000", response.Color)

	// PUT without type is rejected
	c, rec = newJSONContext(e, http.MethodPut, "/api/v1/categories/1", `{"name": "Meals"}`)
	setupAuthContext(c, userID)
	withID(c, category.ID)

	require.NoError(t, handler.UpdateCategory(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{"type"}, fieldsOf(decodeProblem(t, rec)))
}

func TestDeleteCategory_DetachesTransactionsAndRemovesBudgets(t *testing.T) {
	e := echo.New()
	handler, store := setupCategoryHandler()
	userID := uuid.New()
	category := &domain.Category{UserID: userID, Name: "Food", Type: domain.TransactionTypeExpense}
	store.Categories.AddCategory(category)

	transaction := &domain.Transaction{UserID: userID, CategoryID: &category.ID, Amount: decimal.NewFromInt(50), Type: domain.TransactionTypeExpense}
	store.Transactions.AddTransaction(transaction)
	store.Budgets.AddBudget(&domain.Budget{UserID: userID, CategoryID: category.ID, Amount: decimal.NewFromInt(500)})

	c, rec := newJSONContext(e, http.MethodDelete, "/api/v1/categories/1", "")
	setupAuthContext(c, userID)
	withID(c, category.ID)

	require.NoError(t, handler.DeleteCategory(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	require.Contains(t, store.Transactions.Transactions, transaction.ID)
	assert.Nil(t, store.Transactions.Transactions[transaction.ID].CategoryID)
	assert.Empty(t, store.Budgets.Budgets)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	e := echo.New()
	handler, _ := setupCategoryHandler()

	c, rec := newJSONContext(e, http.MethodDelete, "/api/v1/categories/42", "")
	setupAuthContext(c, uuid.New())
	withID(c, 42)

	require.NoError(t, handler.DeleteCategory(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
