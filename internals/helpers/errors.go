package helper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AppError carries the HTTP status a handler failure maps to.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func newAppError(status int, format string, args ...any) *AppError {
	return &AppError{Status: status, Message: fmt.Sprintf(format, args...)}
}

func ErrValidation(format string, args ...any) error {
	return newAppError(fiber.StatusBadRequest, format, args...)
}

func ErrUnauthenticated(format string, args ...any) error {
	return newAppError(fiber.StatusUnauthorized, format, args...)
}

func ErrForbidden(format string, args ...any) error {
	return newAppError(fiber.StatusForbidden, format, args...)
}

func ErrNotFound(format string, args ...any) error {
	return newAppError(fiber.StatusNotFound, format, args...)
}

// ErrConflict is a unique-constraint violation. The API reports it as 400.
func ErrConflict(format string, args ...any) error {
	return newAppError(fiber.StatusBadRequest, format, args...)
}

// ErrInternal hides the cause from the client; it is logged by ErrorHandler.
func ErrInternal(err error) error {
	return &AppError{Status: fiber.StatusInternalServerError, Message: "Internal Server Error", Err: err}
}

// StatusOf is the HTTP status ErrorHandler writes for err.
func StatusOf(err error) int {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Status
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// ErrorHandler is the fiber.Config.ErrorHandler for the app.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ae *AppError
	if errors.As(err, &ae) {
		if ae.Status >= 500 {
			log.WithFields(log.Fields{
				"reqid":  c.Locals("reqid"),
				"method": c.Method(),
				"path":   c.OriginalURL(),
			}).WithError(ae.Err).Error("request failed")
		}
		return JsonError(c, ae.Status, ae.Message)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}

	log.WithFields(log.Fields{
		"reqid":  c.Locals("reqid"),
		"method": c.Method(),
		"path":   c.OriginalURL(),
	}).WithError(err).Error("unhandled error")
	return JsonError(c, fiber.StatusInternalServerError, fiber.ErrInternalServerError.Message)
}

// --- persistence error mapping ---

func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}

func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return true
	}
	// sqlite: "FOREIGN KEY constraint failed"
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}

// DBError maps a persistence failure. conflictMsg is used for unique violations.
func DBError(err error, conflictMsg string) error {
	switch {
	case err == nil:
		return nil
	case IsUniqueViolation(err):
		if conflictMsg == "" {
			conflictMsg = "Duplicate data"
		}
		return ErrConflict("%s", conflictMsg)
	case IsForeignKeyViolation(err):
		return ErrValidation("Referenced data does not exist")
	default:
		return ErrInternal(err)
	}
}
