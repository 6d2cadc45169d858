package gift

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName          = "gift.v1.GiftService"
	SearchGiftsMethod    = "/" + ServiceName + "/SearchGifts"
	ListCategoriesMethod = "/" + ServiceName + "/ListCategories"
)

// GiftServiceServer is the server API of gift.v1.GiftService. Messages are
// google.protobuf.Struct so clients need no generated stubs.
type GiftServiceServer interface {
	SearchGifts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCategories(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func RegisterGiftServiceServer(s grpc.ServiceRegistrar, srv GiftServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GiftServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SearchGifts", Handler: searchGiftsHandler},
		{MethodName: "ListCategories", Handler: listCategoriesHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gift/v1/gift.proto",
}

func searchGiftsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GiftServiceServer).SearchGifts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SearchGiftsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GiftServiceServer).SearchGifts(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func listCategoriesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GiftServiceServer).ListCategories(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListCategoriesMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GiftServiceServer).ListCategories(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
