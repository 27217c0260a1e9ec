package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/service"
	"github.com/dafibh/dompet/dompet-backend/internal/util"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// TransactionRequest represents the create/update transaction request body.
// Amount may be a JSON string or number; category may be null to clear it.
type TransactionRequest struct {
	Category    nullableID      `json:"category" swaggertype:"integer"`
	Amount      json.RawMessage `json:"amount" swaggertype:"string" example:"150.50"`
	Type        *string         `json:"type" example:"expense"`
	Description *string         `json:"description"`
	Date        *string         `json:"date" example:"2026-03-14"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID            int32   `json:"id"`
	Category      *int32  `json:"category"`
	CategoryName  *string `json:"categoryName"`
	CategoryIcon  *string `json:"categoryIcon"`
	CategoryColor *string `json:"categoryColor"`
	Amount        string  `json:"amount"`
	Type          string  `json:"type"`
	Description   string  `json:"description"`
	Date          string  `json:"date"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// PaginatedTransactionsResponse represents paginated transactions in API responses
type PaginatedTransactionsResponse struct {
	Data       []TransactionResponse `json:"data"`
	Page       int32                 `json:"page"`
	PageSize   int32                 `json:"pageSize"`
	TotalItems int64                 `json:"totalItems"`
	TotalPages int32                 `json:"totalPages"`
}

// toInput converts the request, reporting the first malformed field
func (r TransactionRequest) toInput() (service.TransactionInput, *ValidationError) {
	input := service.TransactionInput{
		CategoryID:  r.Category.Value,
		CategorySet: r.Category.Set,
		Description: r.Description,
	}

	amount, err := parseAmount(r.Amount)
	if err != nil {
		return input, &ValidationError{Field: "amount", Message: "A valid number is required."}
	}
	input.Amount = amount

	if r.Type != nil {
		t := domain.TransactionType(*r.Type)
		input.Type = &t
	}

	date, err := parseOptionalDate(r.Date)
	if err != nil {
		return input, &ValidationError{Field: "date", Message: "Date has wrong format. Use YYYY-MM-DD."}
	}
	input.Date = date

	return input, nil
}

// GetTransactions godoc
// @Summary List transactions
// @Description Get paginated transactions with optional filters
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param type query string false "income or expense"
// @Param category query int false "Category ID"
// @Param date query string false "Exact date (YYYY-MM-DD)"
// @Param date_from query string false "Earliest date, inclusive (YYYY-MM-DD)"
// @Param date_to query string false "Latest date, inclusive (YYYY-MM-DD)"
// @Param amount_min query number false "Minimum amount, inclusive"
// @Param amount_max query number false "Maximum amount, inclusive"
// @Param search query string false "Case-insensitive substring of the description"
// @Param ordering query string false "Comma list of date, amount, created_at, each optionally prefixed with -" default(-date,-created_at)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Success 200 {object} PaginatedTransactionsResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /transactions [get]
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}

	filters := &domain.TransactionFilters{
		Page:     1,
		PageSize: domain.DefaultPageSize,
		Search:   c.QueryParam("search"),
	}

	if typeStr := c.QueryParam("type"); typeStr != "" {
		transactionType := domain.TransactionType(typeStr)
		if !transactionType.IsValid() {
			return NewFieldError(c, "type", "Type must be one of: income, expense.")
		}
		filters.Type = &transactionType
	}

	if categoryStr := c.QueryParam("category"); categoryStr != "" {
		var categoryID int32
		if _, err := parseIntParam(categoryStr, &categoryID); err != nil {
			return NewFieldError(c, "category", "A valid integer is required.")
		}
		filters.CategoryID = &categoryID
	}

	for _, p := range []struct {
		name string
		dest **time.Time
	}{
		{"date", &filters.Date},
		{"date_from", &filters.DateFrom},
		{"date_to", &filters.DateTo},
	} {
		if s := c.QueryParam(p.name); s != "" {
			parsed, err := util.ParseDate(s)
			if err != nil {
				return NewFieldError(c, p.name, "Date has wrong format. Use YYYY-MM-DD.")
			}
			*p.dest = &parsed
		}
	}

	for _, p := range []struct {
		name string
		dest **decimal.Decimal
	}{
		{"amount_min", &filters.AmountMin},
		{"amount_max", &filters.AmountMax},
	} {
		if s := c.QueryParam(p.name); s != "" {
			parsed, err := decimal.NewFromString(s)
			if err != nil {
				return NewFieldError(c, p.name, "A valid number is required.")
			}
			*p.dest = &parsed
		}
	}

	if orderingStr := c.QueryParam("ordering"); orderingStr != "" {
		filters.Ordering = parseTransactionOrdering(orderingStr)
	}

	if pageStr := c.QueryParam("page"); pageStr != "" {
		var page int32
		if _, err := parseIntParam(pageStr, &page); err != nil || page < 1 {
			return NewValidationError(c, "Invalid page (must be positive integer)", nil)
		}
		filters.Page = page
	}

	if pageSizeStr := c.QueryParam("pageSize"); pageSizeStr != "" {
		var pageSize int32
		if _, err := parseIntParam(pageSizeStr, &pageSize); err != nil || pageSize < 1 {
			return NewValidationError(c, "Invalid pageSize (must be positive integer)", nil)
		}
		if pageSize > domain.MaxPageSize {
			pageSize = domain.MaxPageSize
		}
		filters.PageSize = pageSize
	}

	result, err := h.transactionService.ListTransactions(c.Request().Context(), userID, filters)
	if err != nil {
		return handleServiceError(c, err, "get transactions")
	}

	response := PaginatedTransactionsResponse{
		Data:       make([]TransactionResponse, len(result.Data)),
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	}
	for i, transaction := range result.Data {
		response.Data[i] = toTransactionResponse(transaction)
	}

	return c.JSON(http.StatusOK, response)
}

// CreateTransaction godoc
// @Summary Create a transaction
// @Description Create a new income or expense transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TransactionRequest true "Transaction creation request"
// @Success 201 {object} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	input, fieldErr := req.toInput()
	if fieldErr != nil {
		return NewFieldError(c, fieldErr.Field, fieldErr.Message)
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request().Context(), userID, input)
	if err != nil {
		return handleServiceError(c, err, "create transaction")
	}

	return c.JSON(http.StatusCreated, toTransactionResponse(transaction))
}

// GetTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} TransactionResponse
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewNotFoundError(c, "Transaction not found")
	}

	transaction, err := h.transactionService.GetTransaction(c.Request().Context(), userID, id)
	if err != nil {
		return handleServiceError(c, err, "get transaction")
	}

	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// UpdateTransaction godoc
// @Summary Update a transaction
// @Description PUT requires amount, type and date; PATCH updates only the fields sent
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Param request body TransactionRequest true "Transaction fields"
// @Success 200 {object} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /transactions/{id} [put]
// @Router /transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewNotFoundError(c, "Transaction not found")
	}

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	input, fieldErr := req.toInput()
	if fieldErr != nil {
		return NewFieldError(c, fieldErr.Field, fieldErr.Message)
	}
	// A full update without a category clears it
	if !isPartial(c) {
		input.CategorySet = true
	}

	transaction, err := h.transactionService.UpdateTransaction(c.Request().Context(), userID, id, input, isPartial(c))
	if err != nil {
		return handleServiceError(c, err, "update transaction")
	}

	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 204
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, ok := currentUser(c)
	if !ok {
		return NewUnauthorizedError(c, "Authentication required")
	}
	id, ok := parseID(c)
	if !ok {
		return NewNotFoundError(c, "Transaction not found")
	}

	if err := h.transactionService.DeleteTransaction(c.Request().Context(), userID, id); err != nil {
		return handleServiceError(c, err, "delete transaction")
	}

	return c.NoContent(http.StatusNoContent)
}

// Helper function to convert domain.Transaction to TransactionResponse
func toTransactionResponse(transaction *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            transaction.ID,
		Category:      transaction.CategoryID,
		CategoryName:  transaction.CategoryName,
		CategoryIcon:  transaction.CategoryIcon,
		CategoryColor: transaction.CategoryColor,
		Amount:        transaction.Amount.StringFixed(2),
		Type:          string(transaction.Type),
		Description:   transaction.Description,
		Date:          transaction.Date.Format(util.DateLayout),
		CreatedAt:     transaction.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     transaction.UpdatedAt.Format(time.RFC3339),
	}
}
