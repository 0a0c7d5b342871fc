package serviceerrors

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindBusinessRule
	KindInvalidRequest
	KindConflict
	KindUnavailable
	KindInternal
)

// Stable error codes. These are part of the API contract; callers match on
// them instead of parsing messages.
const (
	CodeResourceNotFound   = "RESOURCE_NOT_FOUND"
	CodeInsufficientStock  = "INSUFFICIENT_STOCK"
	CodeEmptySale          = "EMPTY_SALE"
	CodeInvalidQuantity    = "INVALID_QUANTITY"
	CodeInvalidPrice       = "INVALID_PRICE"
	CodeNegativeStock      = "NEGATIVE_STOCK_NOT_ALLOWED"
	CodeDuplicateResource  = "DUPLICATE_RESOURCE"
	CodeForeignKey         = "FOREIGN_KEY_VIOLATION"
	CodeDuplicateEntry     = "DUPLICATE_ENTRY"
	CodeIntegrity          = "INTEGRITY_ERROR"
	CodeDatabase           = "DATABASE_ERROR"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeBusinessRule       = "BUSINESS_RULE_VIOLATION"
	CodeIdempotency        = "IDEMPOTENCY_CONFLICT"
	CodeSaleTimeout        = "SALE_TIMEOUT"
	CodeInternal           = "INTERNAL_SERVER_ERROR"
	CodeExternalService    = "EXTERNAL_SERVICE_ERROR"
)

type ServiceError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Extra   map[string]any
	cause   error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.cause
}

func IsOfKind(err error, kind ErrorKind) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind == kind
	}
	return false
}

// CodeOf returns the stable error code, or CodeInternal for errors that were
// never classified.
func CodeOf(err error) string {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Code
	}
	return CodeInternal
}

func NewResourceNotFound(resource string, identifier any) *ServiceError {
	return &ServiceError{
		Kind:    KindNotFound,
		Code:    CodeResourceNotFound,
		Message: fmt.Sprintf("%s with identifier '%v' not found", resource, identifier),
		Extra:   map[string]any{"resource": resource, "identifier": fmt.Sprint(identifier)},
	}
}

func NewInsufficientStock(productName string, requested, available int) *ServiceError {
	return &ServiceError{
		Kind: KindBusinessRule,
		Code: CodeInsufficientStock,
		Message: fmt.Sprintf("insufficient stock for '%s': requested %d, available %d",
			productName, requested, available),
		Extra: map[string]any{
			"product":            productName,
			"requested_quantity": requested,
			"available_quantity": available,
		},
	}
}

func NewEmptySale() *ServiceError {
	return &ServiceError{
		Kind:    KindBusinessRule,
		Code:    CodeEmptySale,
		Message: "a sale must contain at least one item",
	}
}

func NewInvalidQuantity(productID any, quantity int) *ServiceError {
	return &ServiceError{
		Kind:    KindBusinessRule,
		Code:    CodeInvalidQuantity,
		Message: fmt.Sprintf("quantity must be positive, got %d", quantity),
		Extra:   map[string]any{"product_id": fmt.Sprint(productID), "quantity": quantity},
	}
}

func NewInvalidPrice(price string) *ServiceError {
	return &ServiceError{
		Kind:    KindBusinessRule,
		Code:    CodeInvalidPrice,
		Message: fmt.Sprintf("invalid price %s: price must be greater than zero", price),
		Extra:   map[string]any{"price": price},
	}
}

func NewNegativeStock(productName string, attempted int) *ServiceError {
	return &ServiceError{
		Kind:    KindBusinessRule,
		Code:    CodeNegativeStock,
		Message: fmt.Sprintf("stock of '%s' cannot be negative (attempted %d)", productName, attempted),
		Extra:   map[string]any{"product": productName, "attempted_value": attempted},
	}
}

func NewDuplicateResource(resource, field, value string) *ServiceError {
	return &ServiceError{
		Kind:    KindBusinessRule,
		Code:    CodeDuplicateResource,
		Message: fmt.Sprintf("%s with %s '%s' already exists", resource, field, value),
		Extra:   map[string]any{"resource": resource, "field": field, "value": value},
	}
}

func NewBusinessRule(message string) *ServiceError {
	return &ServiceError{Kind: KindBusinessRule, Code: CodeBusinessRule, Message: message}
}

func NewInvalidRequest(message string) *ServiceError {
	return &ServiceError{Kind: KindInvalidRequest, Code: CodeInvalidInput, Message: message}
}

func NewConflict(message string) *ServiceError {
	return &ServiceError{Kind: KindConflict, Code: CodeIdempotency, Message: message}
}

func NewForeignKeyViolation() *ServiceError {
	return &ServiceError{
		Kind:    KindBusinessRule,
		Code:    CodeForeignKey,
		Message: "invalid reference: the related resource does not exist",
	}
}

func NewDuplicateEntry() *ServiceError {
	return &ServiceError{
		Kind:    KindBusinessRule,
		Code:    CodeDuplicateEntry,
		Message: "a record with these values already exists",
	}
}

func NewIntegrityViolation() *ServiceError {
	return &ServiceError{
		Kind:    KindBusinessRule,
		Code:    CodeIntegrity,
		Message: "database constraint violation",
	}
}

// NewDatabaseError wraps an unclassified store failure. The raw driver text
// stays in the cause for logs; callers only see the stable code.
func NewDatabaseError(cause error) *ServiceError {
	return &ServiceError{
		Kind:    KindInternal,
		Code:    CodeDatabase,
		Message: "error accessing the database",
		cause:   cause,
	}
}

func NewSaleTimeout(cause error) *ServiceError {
	return &ServiceError{
		Kind:    KindUnavailable,
		Code:    CodeSaleTimeout,
		Message: "sale could not be processed in time, try again",
		cause:   cause,
	}
}
