package memberpb

// MemberProfile public member projection, Email is empty unless the owner chose to show it
type MemberProfile struct {
	MemberId        string `json:"member_id"`
	Username        string `json:"username"`
	Email           string `json:"email,omitempty"`
	Bio             string `json:"bio,omitempty"`
	Status          string `json:"status"`
	ProfileImageUrl string `json:"profile_image_url,omitempty"`
	ShowEmail       bool   `json:"show_email"`
	CreatedAt       int64  `json:"created_at"`
}

// GetMemberId nil safe getter
func (x *MemberProfile) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

// GetUsername nil safe getter
func (x *MemberProfile) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

// GetProfileImageUrl nil safe getter
func (x *MemberProfile) GetProfileImageUrl() string {
	if x != nil {
		return x.ProfileImageUrl
	}
	return ""
}

// GetStatus nil safe getter
func (x *MemberProfile) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

// SignupReq create account
type SignupReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// SignupRes created member and its first session token
type SignupRes struct {
	Success  bool   `json:"success"`
	MemberId string `json:"member_id,omitempty"`
	Token    string `json:"token,omitempty"`
	Message  string `json:"message"`
}

// LoginReq login with email and password
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRes session token
type LoginRes struct {
	Success  bool   `json:"success"`
	MemberId string `json:"member_id,omitempty"`
	Token    string `json:"token,omitempty"`
	Message  string `json:"message"`
}

// GetToken nil safe getter
func (x *LoginRes) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

// GetMessage nil safe getter
func (x *LoginRes) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

// LogoutReq end the session owning Token
type LogoutReq struct {
	Token string `json:"token"`
}

// ForceLogoutReq end every session of MemberId
type ForceLogoutReq struct {
	MemberId string `json:"member_id"`
}

// CheckSessionTimeoutReq is the session behind Token expired
type CheckSessionTimeoutReq struct {
	Token string `json:"token"`
}

// CheckSessionTimeoutRes Expire true when no live session exists
type CheckSessionTimeoutRes struct {
	Success bool   `json:"success"`
	Expire  bool   `json:"expire"`
	Message string `json:"message"`
}

// ReconnectSessionReq extend the session behind Token
type ReconnectSessionReq struct {
	Token string `json:"token"`
}

// CommonRes success flag and message
type CommonRes struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// GetMessage nil safe getter
func (x *CommonRes) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

// GetProfileReq viewer asks for member's profile
type GetProfileReq struct {
	MemberId string `json:"member_id"`
	ViewerId string `json:"viewer_id"`
}

// ProfileRes one profile
type ProfileRes struct {
	Success bool           `json:"success"`
	Profile *MemberProfile `json:"profile,omitempty"`
	Message string         `json:"message"`
}

// UpdateProfileReq replace editable profile fields
type UpdateProfileReq struct {
	MemberId        string `json:"member_id"`
	Username        string `json:"username"`
	Bio             string `json:"bio"`
	ShowEmail       bool   `json:"show_email"`
	ProfileImageUrl string `json:"profile_image_url"`
}

// UpdateProfileImageReq set only the avatar url
type UpdateProfileImageReq struct {
	MemberId        string `json:"member_id"`
	ProfileImageUrl string `json:"profile_image_url"`
}

// UpdateStatusReq set the user chosen status
type UpdateStatusReq struct {
	MemberId string `json:"member_id"`
	Status   string `json:"status"`
}

// FindMembersReq profiles by id
type FindMembersReq struct {
	MemberIds []string `json:"member_ids"`
}

// SearchMembersReq username prefix search
type SearchMembersReq struct {
	Query string `json:"query"`
	Limit int32  `json:"limit"`
}

// MembersRes many profiles
type MembersRes struct {
	Success bool             `json:"success"`
	Members []*MemberProfile `json:"members,omitempty"`
	Message string           `json:"message"`
}

// GetMembers nil safe getter
func (x *MembersRes) GetMembers() []*MemberProfile {
	if x != nil {
		return x.Members
	}
	return nil
}
