package crsdk

import "context"

// ListUsers returns the Control Room accounts.
func (s *Session) ListUsers(ctx context.Context) ([]User, error) {
	var out []User
	if err := s.Invoke(ctx, OpUserList, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListRoles returns the permission roles.
func (s *Session) ListRoles(ctx context.Context) ([]Role, error) {
	var out []Role
	if err := s.Invoke(ctx, OpRoleList, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateUser creates a Control Room account and returns the created record.
func (s *Session) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	if req.Username == "" {
		return nil, &ValidationError{Field: "username", Message: "must not be empty"}
	}

	var out User
	if err := s.Invoke(ctx, OpUserCreate, req, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
