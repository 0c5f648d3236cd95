package grpc

// proto.go defines the gRPC server interface for bib.iban.v1.IbanService.
// It stands in for buf-generated code; messages travel with the JSON codec
// registered in codec.go.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "bib.iban.v1.IbanService"

// IbanServiceServer is the server API for IbanService.
type IbanServiceServer interface {
	ValidateIban(context.Context, *ValidateIbanRequest) (*ValidateIbanResponse, error)
	GetCountry(context.Context, *GetCountryRequest) (*CountryMessage, error)
	ListCountries(context.Context, *ListCountriesRequest) (*ListCountriesResponse, error)
	BuildIban(context.Context, *BuildIbanRequest) (*BuildIbanResponse, error)
	GetValidation(context.Context, *GetValidationRequest) (*ValidationRecordMessage, error)
	mustEmbedUnimplementedIbanServiceServer()
}

// UnimplementedIbanServiceServer provides forward-compatible default implementations.
type UnimplementedIbanServiceServer struct{}

func (UnimplementedIbanServiceServer) ValidateIban(context.Context, *ValidateIbanRequest) (*ValidateIbanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ValidateIban not implemented")
}
func (UnimplementedIbanServiceServer) GetCountry(context.Context, *GetCountryRequest) (*CountryMessage, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCountry not implemented")
}
func (UnimplementedIbanServiceServer) ListCountries(context.Context, *ListCountriesRequest) (*ListCountriesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCountries not implemented")
}
func (UnimplementedIbanServiceServer) BuildIban(context.Context, *BuildIbanRequest) (*BuildIbanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BuildIban not implemented")
}
func (UnimplementedIbanServiceServer) GetValidation(context.Context, *GetValidationRequest) (*ValidationRecordMessage, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetValidation not implemented")
}
func (UnimplementedIbanServiceServer) mustEmbedUnimplementedIbanServiceServer() {}

// RegisterIbanServiceServer registers the IbanServiceServer with the gRPC server.
func RegisterIbanServiceServer(s grpclib.ServiceRegistrar, srv IbanServiceServer) {
	s.RegisterService(&_IbanService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _IbanService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*IbanServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ValidateIban", Handler: _IbanService_ValidateIban_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "GetCountry", Handler: _IbanService_GetCountry_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "ListCountries", Handler: _IbanService_ListCountries_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "BuildIban", Handler: _IbanService_BuildIban_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "GetValidation", Handler: _IbanService_GetValidation_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _IbanService_ValidateIban_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ValidateIbanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IbanServiceServer).ValidateIban(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/ValidateIban",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IbanServiceServer).ValidateIban(ctx, req.(*ValidateIbanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _IbanService_GetCountry_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCountryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IbanServiceServer).GetCountry(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/GetCountry",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IbanServiceServer).GetCountry(ctx, req.(*GetCountryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _IbanService_ListCountries_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListCountriesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IbanServiceServer).ListCountries(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/ListCountries",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IbanServiceServer).ListCountries(ctx, req.(*ListCountriesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _IbanService_BuildIban_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(BuildIbanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IbanServiceServer).BuildIban(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/BuildIban",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IbanServiceServer).BuildIban(ctx, req.(*BuildIbanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _IbanService_GetValidation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetValidationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IbanServiceServer).GetValidation(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + ServiceName + "/GetValidation",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IbanServiceServer).GetValidation(ctx, req.(*GetValidationRequest))
	}
	return interceptor(ctx, in, info, handler)
}
