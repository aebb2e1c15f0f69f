package errors

import "google.golang.org/grpc/codes"

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

var toGRPC = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeCanceled:           codes.Canceled,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeDeadlineExceeded:   codes.DeadlineExceeded,
	CodeNotFound:           codes.NotFound,
	CodeAlreadyExists:      codes.AlreadyExists,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
	CodeDataLoss:           codes.DataLoss,
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	if gc, ok := toGRPC[c]; ok {
		return gc
	}
	return codes.Unknown
}

// codeFromGRPC converts a gRPC code to our error code
func codeFromGRPC(gc codes.Code) Code {
	for c, g := range toGRPC {
		if g == gc {
			return c
		}
	}
	return CodeInternal
}
