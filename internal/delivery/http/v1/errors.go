package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	errInvalidTaskID  = errors.New("invalid task id")
	errTaskNotFound   = errors.New("task not found")
	errTaskNotAllowed = errors.New("you are not allowed to modify this task")
)

type apiError struct {
	Code    int
	Message string
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

// abort renders the error view and stops the handler chain.
func abort(c *gin.Context, err apiError) {
	c.HTML(err.Code, "error.html", gin.H{
		"Code":    err.Code,
		"Message": err.Message,
	})
	c.Abort()
}

func newStatusTextError(status int) apiError {
	return newAPIError(status, http.StatusText(status))
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newForbiddenError(message string) apiError {
	return newAPIError(http.StatusForbidden, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

// describeBindError turns a form binding failure into a message
// that can be shown to the user.
func describeBindError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "Invalid form data"
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		case "email":
			messages = append(messages, fmt.Sprintf("%s must be a valid email address", field))
		case "datetime":
			messages = append(messages, fmt.Sprintf("%s must be a date and time", field))
		case "min", "max":
			messages = append(messages, fmt.Sprintf("%s must be %s %s characters", field, boundWord(fe.Tag()), fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(messages, "; ")
}

func boundWord(tag string) string {
	if tag == "min" {
		return "at least"
	}
	return "at most"
}
