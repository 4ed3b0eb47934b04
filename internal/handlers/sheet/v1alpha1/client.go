package v1alpha1

import (
	"context"
	"slices"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Client calls CharacterService methods with the service input and output types
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client on an open connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// MethodNames lists the CharacterService methods
func MethodNames() []string {
	names := make([]string, 0, len(CharacterServiceDesc.Methods))
	for _, m := range CharacterServiceDesc.Methods {
		names = append(names, m.MethodName)
	}
	return names
}

// Call invokes method with in and decodes the response into out.
// Status errors come back as *errors.Error with their code and metadata.
func (c *Client) Call(ctx context.Context, method string, in, out any, opts ...grpc.CallOption) error {
	if !slices.Contains(MethodNames(), method) {
		return errors.InvalidArgumentf("unknown method %q", method)
	}

	req, err := Encode(in)
	if err != nil {
		return err
	}

	resp := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), req, resp, opts...); err != nil {
		return errors.FromGRPCError(err)
	}

	if out == nil {
		return nil
	}
	if err := Decode(resp, out); err != nil {
		return errors.Wrapf(err, "failed to decode %s response", method)
	}
	return nil
}

// CallRaw invokes method with a ready Struct and returns the raw response
func (c *Client) CallRaw(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	resp := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), req, resp, opts...); err != nil {
		return nil, errors.FromGRPCError(err)
	}
	return resp, nil
}
