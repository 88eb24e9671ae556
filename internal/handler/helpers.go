package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"restogestion/internal/apierror"
	"restogestion/internal/middleware"
	"restogestion/internal/model"
	"restogestion/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	// Fecha validates as time.Time: required rejects the zero date.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(model.Fecha); ok {
			return v.Time
		}
		return nil
	}, model.Fecha{})
}

// bindAndValidate binds the JSON body and runs go-playground/validator tags.
// Any failure answers 400 with msg; field names are not enumerated.
// Returns false when a response has already been written.
func bindAndValidate(c *gin.Context, req interface{}, msg string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(msg))
		return false
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(msg))
		return false
	}
	return true
}

// responderError writes err as an envelope. Errors outside the apierror
// taxonomy are persistence failures: 500 under fallback, with detail.
func responderError(c *gin.Context, err error, fallback string) {
	e, ok := apierror.As(err)
	if !ok {
		e = apierror.Internal(fallback, err)
	}
	if e.Kind == apierror.KindInternal {
		evt := log.Error()
		if repository.IsForeignKeyViolation(e.Err) {
			evt = log.Warn()
		}
		evt.
			Err(e.Err).
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.FullPath()).
			Msg(e.Msg)
	}
	c.JSON(e.Kind.Status(), e.Envelope())
}

var errIDInvalido = errors.New("id invalido")

// parseID reads the {id} path parameter. Anything that is not a positive
// integer cannot name a row.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, errIDInvalido
	}
	return uint(id), nil
}
