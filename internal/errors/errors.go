package errors

import "errors"

var ErrUnsupportedMessage = errors.New("ErrUnsupportedMessage: message isn't supported")
var ErrInvalidAngle = errors.New("ErrInvalidAngle: angle isn't a number")
