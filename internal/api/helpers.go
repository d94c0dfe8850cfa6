package api

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/pageza/dippingsauce/backend/internal/apperr"
	"github.com/pageza/dippingsauce/backend/internal/types"
)

// okResponse acknowledges a delete
var okResponse = gin.H{"ok": true}

// parseID reads the integer path parameter "id". Ids no row can have are
// left for the store to report as not found; those past the signed 64-bit
// range become 0, which no row has either.
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if errors.Is(err, strconv.ErrRange) || id > math.MaxInt64 {
		return 0, nil
	}
	if err != nil {
		return 0, apperr.Validation("id must be a non-negative integer")
	}
	return uint(id), nil
}

// parseFilter reads an optional id filter from the query string. An empty
// value or "all" means no filter.
func parseFilter(c *gin.Context, name string) (*uint, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" || strings.EqualFold(raw, "all") {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, apperr.Validation(fmt.Sprintf("%s must be an id or \"all\"", name))
	}
	v := uint(id)
	return &v, nil
}

func bindPage(c *gin.Context) (types.Page, error) {
	var page types.Page
	if err := c.ShouldBindQuery(&page); err != nil {
		return page, bindingError(err)
	}
	return page.Clamp(), nil
}

// payloadValidator is implemented by payloads with rules binding tags
// cannot express
type payloadValidator interface {
	Validate() error
}

func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return bindingError(err)
	}
	if v, ok := obj.(payloadValidator); ok {
		if err := v.Validate(); err != nil {
			return apperr.Validation(err.Error())
		}
	}
	return nil
}

// bindingError turns a gin binding failure into a Validation error with a
// readable message
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fieldMessage(fe))
		}
		return apperr.Validation(strings.Join(msgs, "; "))
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return apperr.Validation("invalid number " + strconv.Quote(numErr.Num))
	}
	return apperr.Validation("Invalid request body: " + err.Error())
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s check", field, fe.Tag())
	}
}

func writeHTML(c *gin.Context, status int, fragment string) {
	c.Data(status, "text/html; charset=utf-8", []byte(fragment))
}

func created(c *gin.Context, obj interface{}) {
	c.JSON(http.StatusCreated, obj)
}
