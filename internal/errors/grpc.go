package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error. Metadata travels as a
// structpb.Struct detail so clients can recover the declined reason.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) == 0 {
		return st.Err()
	}

	details, serr := structpb.NewStruct(wireMeta(customErr.Meta))
	if serr != nil {
		return st.Err()
	}
	withDetails, derr := st.WithDetails(details)
	if derr != nil {
		return st.Err()
	}
	return withDetails.Err()
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		if meta, ok := detail.(*structpb.Struct); ok {
			customErr.Meta = meta.AsMap()
			break
		}
	}

	return customErr
}

// GRPCStatus returns the gRPC status for any error
func GRPCStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	st, _ := status.FromError(ToGRPCError(err))
	return st
}

// wireMeta converts metadata values into shapes structpb accepts.
func wireMeta(meta map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(meta))
	for k, v := range meta {
		switch tv := v.(type) {
		case nil, bool, string, int, int32, int64, float32, float64:
			out[k] = tv
		case []string:
			list := make([]interface{}, len(tv))
			for i, s := range tv {
				list[i] = s
			}
			out[k] = list
		case map[string][]string:
			m := make(map[string]interface{}, len(tv))
			for field, msgs := range tv {
				list := make([]interface{}, len(msgs))
				for i, s := range msgs {
					list[i] = s
				}
				m[field] = list
			}
			out[k] = m
		default:
			out[k] = fmt.Sprint(tv)
		}
	}
	return out
}
