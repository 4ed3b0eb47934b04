package errors

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error. Metadata that can be represented as a
// protobuf Struct travels as a status detail.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !errors.As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), chainMessage(customErr))
	if len(customErr.Meta) > 0 {
		if details, detailErr := structpb.NewStruct(plainMeta(customErr.Meta)); detailErr == nil {
			if withDetails, attachErr := st.WithDetails(details); attachErr == nil {
				st = withDetails
			}
		}
	}

	return st.Err()
}

// chainMessage joins the messages down the cause chain without the code prefixes
func chainMessage(e *Error) string {
	msg := e.Message
	for cause := e.Cause; cause != nil; {
		var next *Error
		if !errors.As(cause, &next) {
			return msg + ": " + cause.Error()
		}
		if next.Message != "" {
			msg += ": " + next.Message
		}
		cause = next.Cause
	}
	return msg
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

// plainMeta narrows metadata to values structpb accepts
func plainMeta(meta map[string]any) map[string]any {
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		switch val := v.(type) {
		case map[string][]string:
			fields := make(map[string]any, len(val))
			for field, msgs := range val {
				list := make([]any, len(msgs))
				for i, m := range msgs {
					list[i] = m
				}
				fields[field] = list
			}
			out[k] = fields
		case []string:
			list := make([]any, len(val))
			for i, s := range val {
				list[i] = s
			}
			out[k] = list
		case string, bool, float64, nil:
			out[k] = val
		case int:
			out[k] = float64(val)
		default:
			if _, err := structpb.NewValue(val); err == nil {
				out[k] = val
			}
		}
	}
	return out
}
