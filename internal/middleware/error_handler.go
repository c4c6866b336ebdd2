package middleware

import (
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders uncaught errors as the same {"message": ...} shape
// the handlers use. Structured rejections (validation lists, conflicts) are
// rendered by the handlers themselves and never reach this point.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = fmt.Sprintf("%v", he.Message)
		}
	}

	if code >= http.StatusInternalServerError {
		log.Printf("[ErrorHandler] %s %s: %v", c.Request().Method, c.Request().RequestURI, err)
	}

	_ = c.JSON(code, map[string]string{"message": msg})
}
