package model

import (
	"fmt"
	"regexp"

	log "github.com/sirupsen/logrus"
)

const (
	ErrorParams           = 100001
	ErrorNewRepo          = 100002
	ErrorDB               = 100003
	ErrorStoreCorrupt     = 100004
	ErrorModelUnavailable = 100005
	ErrorEmptyMessage     = 100006
)

var ErrorMessages = map[int]string{
	ErrorParams:           "invalid parameters",
	ErrorNewRepo:          "failed to create repository",
	ErrorDB:               "store error",
	ErrorStoreCorrupt:     "reservation store is corrupt",
	ErrorModelUnavailable: "model backend unavailable",
	ErrorEmptyMessage:     "message is empty",
}

type Error struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	InnerError error  `json:"inner_error"`
}

func (err Error) Error() string {
	return err.Message
}

func (err Error) String() string {
	return err.InnerError.Error()
}

func NewError(code int, innerError error) *Error {
	if innerError != nil {
		var re = regexp.MustCompile(`[\n\t]+`)
		innerErrorString := re.ReplaceAllString(fmt.Sprintf("%+v", innerError), " ")
		log.Errorf("NewError code:%d, message:%s, innerError:%+v\n", code, ErrorMessages[code], innerErrorString)
	}
	return &Error{
		Code:       code,
		Message:    ErrorMessages[code],
		InnerError: nil,
	}
}

func NewErrorWithMessage(code int, message string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		InnerError: nil,
	}
}
