package app

import (
	"context"

	"gamevault/internal/member/domain"
	"gamevault/pkg/logger"
	memberpb "gamevault/pkg/proto/member"

	"go.uber.org/zap"
)

// MemberGRPCServer grpc surface of MemberUseCase. Failures travel in Success/Message, the rpc error stays nil.
type MemberGRPCServer struct {
	memberpb.UnimplementedMemberServiceServer
	Usecase MemberUseCase
}

func toProfilePB(p domain.Profile) *memberpb.MemberProfile {
	return &memberpb.MemberProfile{
		MemberId:        p.MemberID,
		Username:        p.Username,
		Email:           p.Email,
		Bio:             p.Bio,
		Status:          string(p.Status),
		ProfileImageUrl: p.ProfileImageURL,
		ShowEmail:       p.ShowEmail,
		CreatedAt:       p.CreatedAt.Unix(),
	}
}

func toProfilesPB(ps []domain.Profile) []*memberpb.MemberProfile {
	out := make([]*memberpb.MemberProfile, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProfilePB(p))
	}
	return out
}

// Signup create account and log in
func (s *MemberGRPCServer) Signup(ctx context.Context, req *memberpb.SignupReq) (*memberpb.SignupRes, error) {
	logger.Log.Debug("Signup Req", zap.String("email", req.Email), zap.String("username", req.Username))
	memberID, tk, err := s.Usecase.Signup(ctx, req.Email, req.Password, req.Username)
	if err != nil {
		logger.Log.Error("Signup Err", zap.String("email", req.Email), zap.Error(err))
		return &memberpb.SignupRes{
			Success:  false,
			MemberId: memberID,
			Message:  err.Error(),
		}, nil
	}
	return &memberpb.SignupRes{
		Success:  true,
		MemberId: memberID,
		Token:    tk,
		Message:  "signup success",
	}, nil
}

// Login
func (s *MemberGRPCServer) Login(ctx context.Context, req *memberpb.LoginReq) (*memberpb.LoginRes, error) {
	logger.Log.Debug("Login :", zap.String("email", req.Email))
	memberID, tk, err := s.Usecase.Login(ctx, req.Email, req.Password)
	if err != nil {
		logger.Log.Error("Login Err", zap.String("email", req.Email), zap.Error(err))
		return &memberpb.LoginRes{
			Success: false,
			Message: err.Error(),
		}, nil
	}
	return &memberpb.LoginRes{
		Success:  true,
		MemberId: memberID,
		Token:    tk,
		Message:  "login success",
	}, nil
}

// Logout
func (s *MemberGRPCServer) Logout(ctx context.Context, req *memberpb.LogoutReq) (*memberpb.CommonRes, error) {
	if err := s.Usecase.Logout(ctx, req.Token); err != nil {
		return &memberpb.CommonRes{Success: false, Message: err.Error()}, nil
	}
	return &memberpb.CommonRes{Success: true, Message: "logout success"}, nil
}

// ForceLogout
func (s *MemberGRPCServer) ForceLogout(ctx context.Context, req *memberpb.ForceLogoutReq) (*memberpb.CommonRes, error) {
	logger.Log.Info("ForceLogout", zap.String("member_id", req.MemberId))
	if err := s.Usecase.ForceLogout(ctx, req.MemberId); err != nil {
		return &memberpb.CommonRes{Success: false, Message: err.Error()}, nil
	}
	return &memberpb.CommonRes{Success: true, Message: "logout success"}, nil
}

// CheckSessionTimeout
func (s *MemberGRPCServer) CheckSessionTimeout(ctx context.Context, req *memberpb.CheckSessionTimeoutReq) (*memberpb.CheckSessionTimeoutRes, error) {
	expire, err := s.Usecase.CheckSessionTimeout(ctx, req.Token)
	if err != nil {
		return &memberpb.CheckSessionTimeoutRes{
			Success: false,
			Expire:  expire,
			Message: err.Error(),
		}, nil
	}
	return &memberpb.CheckSessionTimeoutRes{
		Success: true,
		Expire:  expire,
		Message: "session checked",
	}, nil
}

// ReconnectSession
func (s *MemberGRPCServer) ReconnectSession(ctx context.Context, req *memberpb.ReconnectSessionReq) (*memberpb.CommonRes, error) {
	if err := s.Usecase.ReconnectSession(ctx, req.Token); err != nil {
		return &memberpb.CommonRes{Success: false, Message: err.Error()}, nil
	}
	return &memberpb.CommonRes{Success: true, Message: "session extended"}, nil
}

// GetProfile
func (s *MemberGRPCServer) GetProfile(ctx context.Context, req *memberpb.GetProfileReq) (*memberpb.ProfileRes, error) {
	p, err := s.Usecase.GetProfile(ctx, req.MemberId, req.ViewerId)
	if err != nil {
		return &memberpb.ProfileRes{Success: false, Message: err.Error()}, nil
	}
	return &memberpb.ProfileRes{Success: true, Profile: toProfilePB(p), Message: "ok"}, nil
}

// UpdateProfile
func (s *MemberGRPCServer) UpdateProfile(ctx context.Context, req *memberpb.UpdateProfileReq) (*memberpb.ProfileRes, error) {
	p, err := s.Usecase.UpdateProfile(ctx, req.MemberId, domain.ProfileUpdate{
		Username:        req.Username,
		Bio:             req.Bio,
		ShowEmail:       req.ShowEmail,
		ProfileImageURL: req.ProfileImageUrl,
	})
	if err != nil {
		logger.Log.Error("UpdateProfile Err", zap.String("member_id", req.MemberId), zap.Error(err))
		return &memberpb.ProfileRes{Success: false, Message: err.Error()}, nil
	}
	return &memberpb.ProfileRes{Success: true, Profile: toProfilePB(p), Message: "profile updated"}, nil
}

// UpdateProfileImage
func (s *MemberGRPCServer) UpdateProfileImage(ctx context.Context, req *memberpb.UpdateProfileImageReq) (*memberpb.CommonRes, error) {
	if err := s.Usecase.UpdateProfileImage(ctx, req.MemberId, req.ProfileImageUrl); err != nil {
		return &memberpb.CommonRes{Success: false, Message: err.Error()}, nil
	}
	return &memberpb.CommonRes{Success: true, Message: "profile image updated"}, nil
}

// UpdateStatus
func (s *MemberGRPCServer) UpdateStatus(ctx context.Context, req *memberpb.UpdateStatusReq) (*memberpb.CommonRes, error) {
	if err := s.Usecase.UpdateStatus(ctx, req.MemberId, req.Status); err != nil {
		return &memberpb.CommonRes{Success: false, Message: err.Error()}, nil
	}
	return &memberpb.CommonRes{Success: true, Message: "status updated"}, nil
}

// FindMembers viewer is unknown here so only public fields are filled
func (s *MemberGRPCServer) FindMembers(ctx context.Context, req *memberpb.FindMembersReq) (*memberpb.MembersRes, error) {
	ps, err := s.Usecase.FindMembers(ctx, req.MemberIds, "")
	if err != nil {
		return &memberpb.MembersRes{Success: false, Message: err.Error()}, nil
	}
	return &memberpb.MembersRes{Success: true, Members: toProfilesPB(ps), Message: "ok"}, nil
}

// SearchMembers
func (s *MemberGRPCServer) SearchMembers(ctx context.Context, req *memberpb.SearchMembersReq) (*memberpb.MembersRes, error) {
	ps, err := s.Usecase.SearchMembers(ctx, req.Query, int(req.Limit), "")
	if err != nil {
		return &memberpb.MembersRes{Success: false, Message: err.Error()}, nil
	}
	return &memberpb.MembersRes{Success: true, Members: toProfilesPB(ps), Message: "ok"}, nil
}
