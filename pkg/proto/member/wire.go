package memberpb

// field numbers follow member.proto

func (x *MemberProfile) marshalWire(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendString(b, 1, x.MemberId)
	b = appendString(b, 2, x.Username)
	b = appendString(b, 3, x.Email)
	b = appendString(b, 4, x.Bio)
	b = appendString(b, 5, x.Status)
	b = appendString(b, 6, x.ProfileImageUrl)
	b = appendBool(b, 7, x.ShowEmail)
	return appendInt64(b, 8, x.CreatedAt)
}

func (x *MemberProfile) unmarshalWire(b []byte) error {
	return rangeFields(b, func(f field) error {
		switch f.num {
		case 1:
			x.MemberId = f.string()
		case 2:
			x.Username = f.string()
		case 3:
			x.Email = f.string()
		case 4:
			x.Bio = f.string()
		case 5:
			x.Status = f.string()
		case 6:
			x.ProfileImageUrl = f.string()
		case 7:
			x.ShowEmail = f.bool()
		case 8:
			x.CreatedAt = f.int64()
		}
		return nil
	})
}

func (x *SignupReq) marshalWire(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendString(b, 1, x.Email)
	b = appendString(b, 2, x.Password)
	return appendString(b, 3, x.Username)
}

func (x *SignupReq) unmarshalWire(b []byte) error {
	return rangeFields(b, func(f field) error {
		switch f.num {
		case 1:
			x.Email = f.string()
		case 2:
			x.Password = f.string()
		case 3:
			x.Username = f.string()
		}
		return nil
	})
}

func (x *SignupRes) marshalWire(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendBool(b, 1, x.Success)
	b = appendString(b, 2, x.MemberId)
	b = appendString(b, 3, x.Token)
	return appendString(b, 4, x.Message)
}

func (x *SignupRes) unmarshalWire(b []byte) error {
	return rangeFields(b, func(f field) error {
		switch f.num {
		case 1:
			x.Success = f.bool()
		case 2:
			x.MemberId = f.string()
		case 3:
			x.Token = f.string()
		case 4:
			x.Message = f.string()
		}
		return nil
	})
}

func (x *LoginReq) marshalWire(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendString(b, 1, x.Email)
	return appendString(b, 2, x.Password)
}

func (x *LoginReq) unmarshalWire(b []byte) error {
	return rangeFields(b, func(f field) error {
		switch f.num {
		case 1:
			x.Email = f.string()
		case 2:
			x.Password = f.string()
		}
		return nil
	})
}

func (x *LoginRes) marshalWire(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendBool(b, 1, x.Success)
	b = appendString(b, 2, x.MemberId)
	b = appendString(b, 3, x.Token)
	return appendString(b, 4, x.Message)
}

func (x *LoginRes) unmarshalWire(b []byte) error {
	return rangeFields(b, func(f field) error {
		switch f.num {
		case 1:
			x.Success = f.bool()
		case 2:
			x.MemberId = f.string()
		case 3:
			x.Token = f.string()
		case 4:
			x.Message = f.string()
		}
		return nil
	})
}

func (x *LogoutReq) marshalWire(b []byte) []byte {
	if x == nil {
		return b
	}
	return appendString(b, 1, x.Token)
}

func (x *LogoutReq) unmarshalWire(b []byte) error {
	return rangeFields(b, func(f field) error {
		if f.num == 1 {
			x.Token = f.string()
		}
		return nil
	})
}

func (x *ForceLogoutReq) marshalWire(b []byte) []byte {
	if x == nil {
		return b
	}
	return appendString(b, 1, x.MemberId)
}

func (x *ForceLogoutReq) unmarshalWire(b []byte) error {
	return rangeFields(b, func(f field) error {
		if f.num == 1 {
			x.MemberId = f.string()
		}
		return nil
	})
}

func (x *CheckSessionTimeoutReq) marshalWire(b []byte) []byte {
	if x == nil {
		return b
	}
	return appendString(b, 1, x.Token)
}

func (x *CheckSessionTimeoutReq) unmarshalWire(b []byte) error {
	return rangeFields(b, func(f field) error {
		if f.num == 1 {
			x.Token = f.string()
		}
		return nil
	})
}

func (x *CheckSessionTimeoutRes) marshalWire(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendBool(b, 1, x.Success)
	b = appendBool(b, 2, x.Expire)
	return appendString(b, 3, x.Message)
}

func (x *CheckSessionTimeoutRes) unmarshalWire(b []byte) error {
	return rangeFields(b, func(f field) error {
		switch f.num {
		case 1:
			x.Success = f.bool()
		case 2:
			x.Expire = f.bool()
		case 3:
			x.Message = f.string()
		}
		return nil
	})
}

func (x *ReconnectSessionReq) marshalWire(b []byte) []byte {
	if x == nil {
		return b
	}
	return appendString(b, 1, x.Token)
}

func (x *ReconnectSessionReq) unmarshalWire(b []byte) error {
	return rangeFields(b, func(f field) error {
		if f.num == 1 {
			x.Token = f.string()
		}
		return nil
	})
}

func (x *CommonRes) marshalWire(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendBool(b, 1, x.Success)
	return appendString(b, 2, x.Message)
}

func (x *CommonRes) unmarshalWire(b []byte) error {
	return rangeFields(b, func(f field) error {
		switch f.num {
		case 1:
			x.Success = f.bool()
		case 2:
			x.Message = f.string()
		}
		return nil
	})
}

func (x *GetProfileReq) marshalWire(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendString(b, 1, x.MemberId)
	return appendString(b, 2, x.ViewerId)
}

func (x *GetProfileReq) unmarshalWire(b []byte) error {
	return rangeFields(b, func(f field) error {
		switch f.num {
		case 1:
			x.MemberId = f.string()
		case 2:
			x.ViewerId = f.string()
		}
		return nil
	})
}

func (x *ProfileRes) marshalWire(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendBool(b, 1, x.Success)
	if x.Profile != nil {
		b = appendMessage(b, 2, x.Profile)
	}
	return appendString(b, 3, x.Message)
}

func (x *ProfileRes) unmarshalWire(b []byte) error {
	return rangeFields(b, func(f field) error {
		switch f.num {
		case 1:
			x.Success = f.bool()
		case 2:
			x.Profile = &MemberProfile{}
			return x.Profile.unmarshalWire(f.bytes)
		case 3:
			x.Message = f.string()
		}
		return nil
	})
}

func (x *UpdateProfileReq) marshalWire(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendString(b, 1, x.MemberId)
	b = appendString(b, 2, x.Username)
	b = appendString(b, 3, x.Bio)
	b = appendBool(b, 4, x.ShowEmail)
	return appendString(b, 5, x.ProfileImageUrl)
}

func (x *UpdateProfileReq) unmarshalWire(b []byte) error {
	return rangeFields(b, func(f field) error {
		switch f.num {
		case 1:
			x.MemberId = f.string()
		case 2:
			x.Username = f.string()
		case 3:
			x.Bio = f.string()
		case 4:
			x.ShowEmail = f.bool()
		case 5:
			x.ProfileImageUrl = f.string()
		}
		return nil
	})
}

func (x *UpdateProfileImageReq) marshalWire(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendString(b, 1, x.MemberId)
	return appendString(b, 2, x.ProfileImageUrl)
}

func (x *UpdateProfileImageReq) unmarshalWire(b []byte) error {
	return rangeFields(b, func(f field) error {
		switch f.num {
		case 1:
			x.MemberId = f.string()
		case 2:
			x.ProfileImageUrl = f.string()
		}
		return nil
	})
}

func (x *UpdateStatusReq) marshalWire(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendString(b, 1, x.MemberId)
	return appendString(b, 2, x.Status)
}

func (x *UpdateStatusReq) unmarshalWire(b []byte) error {
	return rangeFields(b, func(f field) error {
		switch f.num {
		case 1:
			x.MemberId = f.string()
		case 2:
			x.Status = f.string()
		}
		return nil
	})
}

func (x *FindMembersReq) marshalWire(b []byte) []byte {
	if x == nil {
		return b
	}
	for _, id := range x.MemberIds {
		b = appendRepeatedString(b, 1, id)
	}
	return b
}

func (x *FindMembersReq) unmarshalWire(b []byte) error {
	return rangeFields(b, func(f field) error {
		if f.num == 1 {
			x.MemberIds = append(x.MemberIds, f.string())
		}
		return nil
	})
}

func (x *SearchMembersReq) marshalWire(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendString(b, 1, x.Query)
	return appendInt64(b, 2, int64(x.Limit))
}

func (x *SearchMembersReq) unmarshalWire(b []byte) error {
	return rangeFields(b, func(f field) error {
		switch f.num {
		case 1:
			x.Query = f.string()
		case 2:
			x.Limit = int32(f.int64())
		}
		return nil
	})
}

func (x *MembersRes) marshalWire(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendBool(b, 1, x.Success)
	for _, m := range x.Members {
		b = appendMessage(b, 2, m)
	}
	return appendString(b, 3, x.Message)
}

func (x *MembersRes) unmarshalWire(b []byte) error {
	return rangeFields(b, func(f field) error {
		switch f.num {
		case 1:
			x.Success = f.bool()
		case 2:
			m := &MemberProfile{}
			if err := m.unmarshalWire(f.bytes); err != nil {
				return err
			}
			x.Members = append(x.Members, m)
		case 3:
			x.Message = f.string()
		}
		return nil
	})
}
