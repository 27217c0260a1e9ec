package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dafibh/dompet/dompet-backend/internal/domain"
	"github.com/dafibh/dompet/dompet-backend/internal/middleware"
	"github.com/dafibh/dompet/dompet-backend/internal/util"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Helper function to parse int query params with overflow protection
func parseIntParam(s string, out *int32) (bool, error) {
	if s == "" {
		return false, nil
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return false, errors.New("invalid integer")
	}
	*out = int32(v)
	return true, nil
}

// parseID reads the :id path parameter
func parseID(c echo.Context) (int32, bool) {
	var id int32
	if ok, err := parseIntParam(c.Param("id"), &id); !ok || err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// currentUser returns the authenticated user's ID placed in the context by the auth middleware
func currentUser(c echo.Context) (uuid.UUID, bool) {
	userID := middleware.GetUserID(c)
	return userID, userID != uuid.Nil
}

// isPartial reports whether the request only updates the fields it sends
func isPartial(c echo.Context) bool {
	return c.Request().Method == http.MethodPatch
}

// nullableID records whether a JSON id field was sent and whether it was null
type nullableID struct {
	Set   bool
	Value *int32
}

// UnmarshalJSON implements json.Unmarshaler
func (n *nullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v int32
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// parseAmount parses a decimal amount given as a JSON string or number
func parseAmount(raw json.RawMessage) (*decimal.Decimal, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	s := string(raw)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// parseOptionalDate parses an optional YYYY-MM-DD value
func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := util.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseOptionalMonth parses an optional YYYY-MM-DD or YYYY-MM value to the first of its month
func parseOptionalMonth(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := util.ParseMonth(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseTransactionOrdering parses a comma separated ordering like "-date,amount".
// Unknown fields are ignored; an empty result means the default ordering.
func parseTransactionOrdering(s string) []domain.TransactionOrder {
	var ordering []domain.TransactionOrder
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		field := strings.TrimPrefix(part, "-")
		switch field {
		case domain.TransactionOrderDate, domain.TransactionOrderAmount, domain.TransactionOrderCreatedAt:
			ordering = append(ordering, domain.TransactionOrder{Field: field, Desc: desc})
		}
	}
	return ordering
}
