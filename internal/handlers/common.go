package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/kantocollect/salesops/internal/apperrors"
	"github.com/kantocollect/salesops/internal/core/domain"
)

var registerValidatorsOnce sync.Once

// enumValidations are the custom binding tags used by the request DTOs.
var enumValidations = map[string]validator.Func{
	"matchmode": func(fl validator.FieldLevel) bool {
		return domain.MatchMode(fl.Field().String()).IsValid()
	},
	"rulekind": func(fl validator.FieldLevel) bool {
		return domain.RuleKind(fl.Field().String()).IsValid()
	},
	"owner": func(fl validator.FieldLevel) bool {
		return domain.Owner(fl.Field().String()).IsValid()
	},
}

// registerValidators adds the enum tags to gin's validator and panics when
// one fails to register.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("handlers: unexpected validator engine %T", binding.Validator.Engine()))
		}
		if err := registerTagValidations(v, enumValidations); err != nil {
			panic(err)
		}
	})
}

func registerTagValidations(v *validator.Validate, tags map[string]validator.Func) error {
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %q validation: %w", tag, err)
		}
	}
	return nil
}

// parseIDParam reads a positive integer path parameter, answering 400 when it is not one.
func parseIDParam(c *gin.Context, logger *slog.Logger, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.Warn("Invalid id in path", slog.String("param", name), slog.String("value", raw))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": must be a positive integer"})
		return 0, false
	}
	return id, true
}

// respondError maps service errors onto HTTP status codes. Unexpected errors
// are logged and answered with failureMsg.
func respondError(c *gin.Context, logger *slog.Logger, err error, notFoundMsg, failureMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(notFoundMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failureMsg})
	}
}
