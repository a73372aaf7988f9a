package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"astrox_site/internal/views"
)

// CustomErrorHandler renders HTTP errors as a branded error page
func CustomErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		c.Logger().Error(err)
		return
	}

	code := http.StatusInternalServerError
	errorTitle := "Internal Server Error"
	errorMessage := ""

	// Check if it's an Echo HTTPError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code

		// Try to extract message from HTTPError
		if msg, ok := he.Message.(string); ok && msg != "" {
			errorMessage = msg
		}

		// Set title and default message if no custom message provided
		switch code {
		case http.StatusNotFound:
			errorTitle = "Page Not Found"
			if errorMessage == "" || errorMessage == http.StatusText(code) {
				errorMessage = "The page you're looking for doesn't exist."
			}
		case http.StatusMethodNotAllowed:
			errorTitle = "Method Not Allowed"
			if errorMessage == "" || errorMessage == http.StatusText(code) {
				errorMessage = "This page only supports viewing."
			}
		case http.StatusBadRequest:
			errorTitle = "Bad Request"
			if errorMessage == "" {
				errorMessage = "The request could not be processed."
			}
		default:
			if code < http.StatusInternalServerError {
				errorTitle = http.StatusText(code)
			}
			// Internal details stay in the log
			if errorMessage == "" || code >= http.StatusInternalServerError {
				errorMessage = "Something went wrong. Please try again later."
			}
		}
	} else {
		// Non-HTTPError, use default
		errorMessage = "Something went wrong. Please try again later."
	}

	// Log the error
	if code >= http.StatusInternalServerError {
		c.Logger().Error(err)
	} else {
		c.Logger().Debug(err)
	}

	props := views.ErrorPageProps{
		ErrorTitle:   errorTitle,
		ErrorMessage: errorMessage,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)

	if c.Request().Method == http.MethodHead {
		return
	}

	if renderErr := views.ErrorPage(props).Render(c.Request().Context(), c.Response()); renderErr != nil {
		// Fallback to plain text if the page fails
		c.Logger().Error(fmt.Errorf("failed to render error page: %w", renderErr))
		_, _ = c.Response().Write([]byte(errorMessage))
	}
}
