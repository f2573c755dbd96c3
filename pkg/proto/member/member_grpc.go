package memberpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const serviceName = "member.MemberService"

// MemberServiceClient client API for MemberService
type MemberServiceClient interface {
	Signup(ctx context.Context, in *SignupReq, opts ...grpc.CallOption) (*SignupRes, error)
	Login(ctx context.Context, in *LoginReq, opts ...grpc.CallOption) (*LoginRes, error)
	Logout(ctx context.Context, in *LogoutReq, opts ...grpc.CallOption) (*CommonRes, error)
	ForceLogout(ctx context.Context, in *ForceLogoutReq, opts ...grpc.CallOption) (*CommonRes, error)
	CheckSessionTimeout(ctx context.Context, in *CheckSessionTimeoutReq, opts ...grpc.CallOption) (*CheckSessionTimeoutRes, error)
	ReconnectSession(ctx context.Context, in *ReconnectSessionReq, opts ...grpc.CallOption) (*CommonRes, error)
	GetProfile(ctx context.Context, in *GetProfileReq, opts ...grpc.CallOption) (*ProfileRes, error)
	UpdateProfile(ctx context.Context, in *UpdateProfileReq, opts ...grpc.CallOption) (*ProfileRes, error)
	UpdateProfileImage(ctx context.Context, in *UpdateProfileImageReq, opts ...grpc.CallOption) (*CommonRes, error)
	UpdateStatus(ctx context.Context, in *UpdateStatusReq, opts ...grpc.CallOption) (*CommonRes, error)
	FindMembers(ctx context.Context, in *FindMembersReq, opts ...grpc.CallOption) (*MembersRes, error)
	SearchMembers(ctx context.Context, in *SearchMembersReq, opts ...grpc.CallOption) (*MembersRes, error)
}

type memberServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewMemberServiceClient wraps cc, every call is encoded as member.proto binary
func NewMemberServiceClient(cc grpc.ClientConnInterface) MemberServiceClient {
	return &memberServiceClient{cc}
}

func (c *memberServiceClient) invoke(ctx context.Context, method string, in, out interface{}, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+serviceName+"/"+method, in, out, opts...)
}

func (c *memberServiceClient) Signup(ctx context.Context, in *SignupReq, opts ...grpc.CallOption) (*SignupRes, error) {
	out := new(SignupRes)
	if err := c.invoke(ctx, "Signup", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memberServiceClient) Login(ctx context.Context, in *LoginReq, opts ...grpc.CallOption) (*LoginRes, error) {
	out := new(LoginRes)
	if err := c.invoke(ctx, "Login", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memberServiceClient) Logout(ctx context.Context, in *LogoutReq, opts ...grpc.CallOption) (*CommonRes, error) {
	out := new(CommonRes)
	if err := c.invoke(ctx, "Logout", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memberServiceClient) ForceLogout(ctx context.Context, in *ForceLogoutReq, opts ...grpc.CallOption) (*CommonRes, error) {
	out := new(CommonRes)
	if err := c.invoke(ctx, "ForceLogout", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memberServiceClient) CheckSessionTimeout(ctx context.Context, in *CheckSessionTimeoutReq, opts ...grpc.CallOption) (*CheckSessionTimeoutRes, error) {
	out := new(CheckSessionTimeoutRes)
	if err := c.invoke(ctx, "CheckSessionTimeout", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memberServiceClient) ReconnectSession(ctx context.Context, in *ReconnectSessionReq, opts ...grpc.CallOption) (*CommonRes, error) {
	out := new(CommonRes)
	if err := c.invoke(ctx, "ReconnectSession", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memberServiceClient) GetProfile(ctx context.Context, in *GetProfileReq, opts ...grpc.CallOption) (*ProfileRes, error) {
	out := new(ProfileRes)
	if err := c.invoke(ctx, "GetProfile", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memberServiceClient) UpdateProfile(ctx context.Context, in *UpdateProfileReq, opts ...grpc.CallOption) (*ProfileRes, error) {
	out := new(ProfileRes)
	if err := c.invoke(ctx, "UpdateProfile", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memberServiceClient) UpdateProfileImage(ctx context.Context, in *UpdateProfileImageReq, opts ...grpc.CallOption) (*CommonRes, error) {
	out := new(CommonRes)
	if err := c.invoke(ctx, "UpdateProfileImage", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memberServiceClient) UpdateStatus(ctx context.Context, in *UpdateStatusReq, opts ...grpc.CallOption) (*CommonRes, error) {
	out := new(CommonRes)
	if err := c.invoke(ctx, "UpdateStatus", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memberServiceClient) FindMembers(ctx context.Context, in *FindMembersReq, opts ...grpc.CallOption) (*MembersRes, error) {
	out := new(MembersRes)
	if err := c.invoke(ctx, "FindMembers", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *memberServiceClient) SearchMembers(ctx context.Context, in *SearchMembersReq, opts ...grpc.CallOption) (*MembersRes, error) {
	out := new(MembersRes)
	if err := c.invoke(ctx, "SearchMembers", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// MemberServiceServer server API for MemberService
type MemberServiceServer interface {
	Signup(context.Context, *SignupReq) (*SignupRes, error)
	Login(context.Context, *LoginReq) (*LoginRes, error)
	Logout(context.Context, *LogoutReq) (*CommonRes, error)
	ForceLogout(context.Context, *ForceLogoutReq) (*CommonRes, error)
	CheckSessionTimeout(context.Context, *CheckSessionTimeoutReq) (*CheckSessionTimeoutRes, error)
	ReconnectSession(context.Context, *ReconnectSessionReq) (*CommonRes, error)
	GetProfile(context.Context, *GetProfileReq) (*ProfileRes, error)
	UpdateProfile(context.Context, *UpdateProfileReq) (*ProfileRes, error)
	UpdateProfileImage(context.Context, *UpdateProfileImageReq) (*CommonRes, error)
	UpdateStatus(context.Context, *UpdateStatusReq) (*CommonRes, error)
	FindMembers(context.Context, *FindMembersReq) (*MembersRes, error)
	SearchMembers(context.Context, *SearchMembersReq) (*MembersRes, error)
}

// UnimplementedMemberServiceServer embed to stay forward compatible
type UnimplementedMemberServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

// Signup not implemented
func (UnimplementedMemberServiceServer) Signup(context.Context, *SignupReq) (*SignupRes, error) {
	return nil, unimplemented("Signup")
}

// Login not implemented
func (UnimplementedMemberServiceServer) Login(context.Context, *LoginReq) (*LoginRes, error) {
	return nil, unimplemented("Login")
}

// Logout not implemented
func (UnimplementedMemberServiceServer) Logout(context.Context, *LogoutReq) (*CommonRes, error) {
	return nil, unimplemented("Logout")
}

// ForceLogout not implemented
func (UnimplementedMemberServiceServer) ForceLogout(context.Context, *ForceLogoutReq) (*CommonRes, error) {
	return nil, unimplemented("ForceLogout")
}

// CheckSessionTimeout not implemented
func (UnimplementedMemberServiceServer) CheckSessionTimeout(context.Context, *CheckSessionTimeoutReq) (*CheckSessionTimeoutRes, error) {
	return nil, unimplemented("CheckSessionTimeout")
}

// ReconnectSession not implemented
func (UnimplementedMemberServiceServer) ReconnectSession(context.Context, *ReconnectSessionReq) (*CommonRes, error) {
	return nil, unimplemented("ReconnectSession")
}

// GetProfile not implemented
func (UnimplementedMemberServiceServer) GetProfile(context.Context, *GetProfileReq) (*ProfileRes, error) {
	return nil, unimplemented("GetProfile")
}

// UpdateProfile not implemented
func (UnimplementedMemberServiceServer) UpdateProfile(context.Context, *UpdateProfileReq) (*ProfileRes, error) {
	return nil, unimplemented("UpdateProfile")
}

// UpdateProfileImage not implemented
func (UnimplementedMemberServiceServer) UpdateProfileImage(context.Context, *UpdateProfileImageReq) (*CommonRes, error) {
	return nil, unimplemented("UpdateProfileImage")
}

// UpdateStatus not implemented
func (UnimplementedMemberServiceServer) UpdateStatus(context.Context, *UpdateStatusReq) (*CommonRes, error) {
	return nil, unimplemented("UpdateStatus")
}

// FindMembers not implemented
func (UnimplementedMemberServiceServer) FindMembers(context.Context, *FindMembersReq) (*MembersRes, error) {
	return nil, unimplemented("FindMembers")
}

// SearchMembers not implemented
func (UnimplementedMemberServiceServer) SearchMembers(context.Context, *SearchMembersReq) (*MembersRes, error) {
	return nil, unimplemented("SearchMembers")
}

// RegisterMemberServiceServer registers srv on s
func RegisterMemberServiceServer(s grpc.ServiceRegistrar, srv MemberServiceServer) {
	s.RegisterService(&MemberServiceDesc, srv)
}

// unaryHandler adapts one typed server method to the grpc method handler shape
func unaryHandler[Req any, Res any](method string, call func(MemberServiceServer, context.Context, *Req) (*Res, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(MemberServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + serviceName + "/" + method,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(MemberServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// MemberServiceDesc grpc.ServiceDesc for MemberService
var MemberServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*MemberServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler("Signup", MemberServiceServer.Signup),
		unaryHandler("Login", MemberServiceServer.Login),
		unaryHandler("Logout", MemberServiceServer.Logout),
		unaryHandler("ForceLogout", MemberServiceServer.ForceLogout),
		unaryHandler("CheckSessionTimeout", MemberServiceServer.CheckSessionTimeout),
		unaryHandler("ReconnectSession", MemberServiceServer.ReconnectSession),
		unaryHandler("GetProfile", MemberServiceServer.GetProfile),
		unaryHandler("UpdateProfile", MemberServiceServer.UpdateProfile),
		unaryHandler("UpdateProfileImage", MemberServiceServer.UpdateProfileImage),
		unaryHandler("UpdateStatus", MemberServiceServer.UpdateStatus),
		unaryHandler("FindMembers", MemberServiceServer.FindMembers),
		unaryHandler("SearchMembers", MemberServiceServer.SearchMembers),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "member.proto",
}
