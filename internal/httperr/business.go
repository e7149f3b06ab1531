package httperr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindInvalidArgument Kind = "invalid_argument"
)

// Códigos conhecidos.
const (
	CodeTimeConflict            = "time_conflict"
	CodeCategoryHasServices     = "category_has_services"
	CodeCustomerHasAppointments = "customer_has_appointments"
	CodeInsufficientBalance     = "insufficient_balance"
	CodeInvalidPoints           = "invalid_points"
	CodeInvalidPromotionalPrice = "invalid_promotional_price"
	CodeStartInPast             = "start_in_past"
	CodeInvalidStartTime        = "invalid_start_time"
	CodeInvalidRequest          = "invalid_request"
)

// pgExclusionViolation é o SQLSTATE de uma EXCLUDE constraint violada.
const pgExclusionViolation = "23P01"

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

// ErrNotFound identifica a entidade ausente: ErrNotFound("service", 7) → service_not_found.
func ErrNotFound(entity string, id uint) error {
	return BusinessError{
		Kind:    KindNotFound,
		Code:    entity + "_not_found",
		Message: fmt.Sprintf("%s %d not found", entity, id),
	}
}

func ErrConflict(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func ErrInvalidArgument(code, message string) error {
	return BusinessError{Kind: KindInvalidArgument, Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// KindOf devolve "" quando err não é um BusinessError.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

// IsExclusionConflict reconhece a violação da constraint de sobreposição
// de agendamentos no Postgres.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation
	}
	return false
}
