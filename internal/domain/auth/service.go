package auth

import "context"

// AuthService resolves credentials into signed caller identities. The wider
// authentication subsystem (sessions, OAuth, verification) lives outside this
// service; ledger operations only need the minted claims.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
