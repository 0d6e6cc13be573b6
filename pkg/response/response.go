package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the uniform JSON body for every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Ok(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Message: message,
	})
}

func Conflict(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, Envelope{
		Success: false,
		Message: message,
	})
}

func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, Envelope{
		Success: false,
		Message: message,
	})
}

// InternalServerError reports a generic failure. The underlying error text is
// included only when debug is set; production callers pass debug=false so no
// internals leak to clients.
func InternalServerError(c echo.Context, err error, debug bool) error {
	env := Envelope{
		Success: false,
		Message: "Internal server error",
	}
	if debug && err != nil {
		env.Error = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, env)
}
