package gift

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"
)

// optionalString reads a string field; absent and null both yield "".
func optionalString(req *structpb.Struct, field string) (string, error) {
	v, ok := req.GetFields()[field]
	if !ok {
		return "", nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return "", nil
	case *structpb.Value_StringValue:
		return k.StringValue, nil
	default:
		return "", fmt.Errorf("%s must be a string", field)
	}
}

// optionalPositiveInt reads a whole, positive number field; absent yields 0.
func optionalPositiveInt(req *structpb.Struct, field string) (int, error) {
	v, ok := req.GetFields()[field]
	if !ok {
		return 0, nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return 0, nil
	case *structpb.Value_NumberValue:
		n := k.NumberValue
		if n < 1 || n != math.Trunc(n) || n > math.MaxInt32 {
			return 0, fmt.Errorf("%s must be a positive integer", field)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%s must be a number", field)
	}
}
