package grpc

// proto.go defines the gRPC server interface derived from
// verificacion/v1/verification.proto. This file serves as a stand-in for
// buf-generated code; once `buf generate` is run, replace it with the
// generated package import.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// VerificationServiceServer is the server API for VerificationService.
// It mirrors the proto-generated interface from verificacion.v1.VerificationService.
type VerificationServiceServer interface {
	EvaluateCase(context.Context, *EvaluateCaseRequest) (*EvaluateCaseResponse, error)
	GetEvaluation(context.Context, *GetEvaluationRequest) (*GetEvaluationResponse, error)
	CreateCaseFile(context.Context, *CreateCaseFileRequest) (*CreateCaseFileResponse, error)
	GetCaseFile(context.Context, *GetCaseFileRequest) (*GetCaseFileResponse, error)
	ListCaseFiles(context.Context, *ListCaseFilesRequest) (*ListCaseFilesResponse, error)
	DeleteCaseFile(context.Context, *DeleteCaseFileRequest) (*DeleteCaseFileResponse, error)
	UploadDocument(context.Context, *UploadDocumentRequest) (*UploadDocumentResponse, error)
	GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error)
	mustEmbedUnimplementedVerificationServiceServer()
}

// UnimplementedVerificationServiceServer provides forward-compatible default implementations.
type UnimplementedVerificationServiceServer struct{}

func (UnimplementedVerificationServiceServer) EvaluateCase(context.Context, *EvaluateCaseRequest) (*EvaluateCaseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EvaluateCase not implemented")
}
func (UnimplementedVerificationServiceServer) GetEvaluation(context.Context, *GetEvaluationRequest) (*GetEvaluationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetEvaluation not implemented")
}
func (UnimplementedVerificationServiceServer) CreateCaseFile(context.Context, *CreateCaseFileRequest) (*CreateCaseFileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateCaseFile not implemented")
}
func (UnimplementedVerificationServiceServer) GetCaseFile(context.Context, *GetCaseFileRequest) (*GetCaseFileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCaseFile not implemented")
}
func (UnimplementedVerificationServiceServer) ListCaseFiles(context.Context, *ListCaseFilesRequest) (*ListCaseFilesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCaseFiles not implemented")
}
func (UnimplementedVerificationServiceServer) DeleteCaseFile(context.Context, *DeleteCaseFileRequest) (*DeleteCaseFileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteCaseFile not implemented")
}
func (UnimplementedVerificationServiceServer) UploadDocument(context.Context, *UploadDocumentRequest) (*UploadDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UploadDocument not implemented")
}
func (UnimplementedVerificationServiceServer) GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDocument not implemented")
}
func (UnimplementedVerificationServiceServer) mustEmbedUnimplementedVerificationServiceServer() {}

// RegisterVerificationServiceServer registers the VerificationServiceServer with the gRPC server.
func RegisterVerificationServiceServer(s *grpclib.Server, srv VerificationServiceServer) {
	s.RegisterService(&_VerificationService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _VerificationService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "verificacion.v1.VerificationService",
	HandlerType: (*VerificationServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "EvaluateCase", Handler: _VerificationService_EvaluateCase_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "GetEvaluation", Handler: _VerificationService_GetEvaluation_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "CreateCaseFile", Handler: _VerificationService_CreateCaseFile_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "GetCaseFile", Handler: _VerificationService_GetCaseFile_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "ListCaseFiles", Handler: _VerificationService_ListCaseFiles_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "DeleteCaseFile", Handler: _VerificationService_DeleteCaseFile_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "UploadDocument", Handler: _VerificationService_UploadDocument_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "GetDocument", Handler: _VerificationService_GetDocument_Handler},       //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _VerificationService_EvaluateCase_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateCaseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VerificationServiceServer).EvaluateCase(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/verificacion.v1.VerificationService/EvaluateCase",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VerificationServiceServer).EvaluateCase(ctx, req.(*EvaluateCaseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _VerificationService_GetEvaluation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetEvaluationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VerificationServiceServer).GetEvaluation(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/verificacion.v1.VerificationService/GetEvaluation",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VerificationServiceServer).GetEvaluation(ctx, req.(*GetEvaluationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _VerificationService_CreateCaseFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateCaseFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VerificationServiceServer).CreateCaseFile(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/verificacion.v1.VerificationService/CreateCaseFile",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VerificationServiceServer).CreateCaseFile(ctx, req.(*CreateCaseFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _VerificationService_GetCaseFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCaseFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VerificationServiceServer).GetCaseFile(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/verificacion.v1.VerificationService/GetCaseFile",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VerificationServiceServer).GetCaseFile(ctx, req.(*GetCaseFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _VerificationService_ListCaseFiles_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListCaseFilesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VerificationServiceServer).ListCaseFiles(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/verificacion.v1.VerificationService/ListCaseFiles",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VerificationServiceServer).ListCaseFiles(ctx, req.(*ListCaseFilesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _VerificationService_DeleteCaseFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteCaseFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VerificationServiceServer).DeleteCaseFile(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/verificacion.v1.VerificationService/DeleteCaseFile",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VerificationServiceServer).DeleteCaseFile(ctx, req.(*DeleteCaseFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _VerificationService_UploadDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VerificationServiceServer).UploadDocument(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/verificacion.v1.VerificationService/UploadDocument",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VerificationServiceServer).UploadDocument(ctx, req.(*UploadDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _VerificationService_GetDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VerificationServiceServer).GetDocument(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/verificacion.v1.VerificationService/GetDocument",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VerificationServiceServer).GetDocument(ctx, req.(*GetDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}
