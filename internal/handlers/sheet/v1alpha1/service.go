package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "sheet.v1alpha1.CharacterService"

// CharacterServiceServer is the server API for the character sheet service.
// Every request and response is a google.protobuf.Struct carrying the JSON form of the matching
// service input and output.
type CharacterServiceServer interface {
	CreateCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCharacters(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetSheet(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddExperience(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Rest(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ExpendSlot(context.Context, *structpb.Struct) (*structpb.Struct, error)
	StartLevelUp(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetLevelUp(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SubmitHitPoints(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SubmitAbilityImprovement(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SubmitClassChoices(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SubmitSpells(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CommitLevelUp(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CancelLevelUp(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClaimPendingASI(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type serverMethod func(CharacterServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(name string, method serverMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return method(srv.(CharacterServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return method(srv.(CharacterServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// FullMethod is the gRPC method path for a method name
func FullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// CharacterServiceDesc is the grpc.ServiceDesc for CharacterService
var CharacterServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CharacterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateCharacter", CharacterServiceServer.CreateCharacter),
		unary("GetCharacter", CharacterServiceServer.GetCharacter),
		unary("ListCharacters", CharacterServiceServer.ListCharacters),
		unary("UpdateCharacter", CharacterServiceServer.UpdateCharacter),
		unary("DeleteCharacter", CharacterServiceServer.DeleteCharacter),
		unary("GetSheet", CharacterServiceServer.GetSheet),
		unary("AddExperience", CharacterServiceServer.AddExperience),
		unary("Rest", CharacterServiceServer.Rest),
		unary("ExpendSlot", CharacterServiceServer.ExpendSlot),
		unary("StartLevelUp", CharacterServiceServer.StartLevelUp),
		unary("GetLevelUp", CharacterServiceServer.GetLevelUp),
		unary("SubmitHitPoints", CharacterServiceServer.SubmitHitPoints),
		unary("SubmitAbilityImprovement", CharacterServiceServer.SubmitAbilityImprovement),
		unary("SubmitClassChoices", CharacterServiceServer.SubmitClassChoices),
		unary("SubmitSpells", CharacterServiceServer.SubmitSpells),
		unary("CommitLevelUp", CharacterServiceServer.CommitLevelUp),
		unary("CancelLevelUp", CharacterServiceServer.CancelLevelUp),
		unary("ClaimPendingASI", CharacterServiceServer.ClaimPendingASI),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sheet/v1alpha1/character.proto",
}

// RegisterCharacterServiceServer registers srv on s
func RegisterCharacterServiceServer(s grpc.ServiceRegistrar, srv CharacterServiceServer) {
	s.RegisterService(&CharacterServiceDesc, srv)
}
