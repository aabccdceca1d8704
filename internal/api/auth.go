package api

import "context"

// LoginRequest represents a login request
type LoginRequest struct {
	MemberNo string `json:"member_no"`
	Password string `json:"password"`
}

// LoginResponse represents a login response
type LoginResponse struct {
	Token        string `json:"token"`
	User         User   `json:"user"`
	Role         string `json:"role"`
	IsFirstLogin bool   `json:"isFirstLogin"`
}

// Login exchanges credentials for a token and user identity.
// The session store owns persisting the result; Login itself has no
// side effects on client state.
func (c *Client) Login(ctx context.Context, memberNo, password string) (*LoginResponse, error) {
	req := LoginRequest{
		MemberNo: memberNo,
		Password: password,
	}

	var loginResp LoginResponse
	if err := c.post(ctx, "/auth/login", req, &loginResp); err != nil {
		return nil, err
	}

	return &loginResp, nil
}

// VerifySession confirms the current token with the server and returns
// the canonical user. The server copy is authoritative over anything
// restored optimistically from disk.
func (c *Client) VerifySession(ctx context.Context) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.get(ctx, "/auth/verify", &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// ChangePassword updates the current user's password
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	req := map[string]string{
		"oldPassword": oldPassword,
		"newPassword": newPassword,
	}
	return c.post(ctx, "/auth/change-password", req, nil)
}

// ForgotPassword starts the OTP-based password reset flow
func (c *Client) ForgotPassword(ctx context.Context, memberNo string) error {
	req := map[string]string{"member_no": memberNo}
	return c.post(ctx, "/auth/forgot-password", req, nil)
}

// VerifyOTP confirms a one-time password and returns a reset token
func (c *Client) VerifyOTP(ctx context.Context, memberNo, otp string) (string, error) {
	req := map[string]string{
		"member_no": memberNo,
		"otp":       otp,
	}
	var resp struct {
		ResetToken string `json:"resetToken"`
	}
	if err := c.post(ctx, "/auth/verify-otp", req, &resp); err != nil {
		return "", err
	}
	return resp.ResetToken, nil
}

// ResetPassword completes the reset flow with the token from VerifyOTP
func (c *Client) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	req := map[string]string{
		"resetToken":  resetToken,
		"newPassword": newPassword,
	}
	return c.post(ctx, "/auth/reset-password", req, nil)
}
