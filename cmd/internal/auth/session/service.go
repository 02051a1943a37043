package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"taskhub/cmd/identity"
	"taskhub/cmd/security/password"
	"taskhub/cmd/security/token"

	"github.com/oklog/ulid/v2"
)

// Service implements the high-level auth operations for taskhub.
//
// It registers and authenticates users, issues and rotates token pairs,
// revokes refresh tokens, and serves profile reads/updates. All collaborators
// are injected once at construction; there is no server-side session object
// beyond the refresh-token records.
type Service struct {
	cfg    Config
	users  identity.Store
	store  Store
	tokens *token.Issuer
	hasher *password.Hasher
	policy password.Policy

	// decoyDigest is verified against on unknown-email logins so that the
	// unknown-email and wrong-password paths cost the same (enumeration
	// resistance).
	decoyDigest string
}

// UserView is the public projection of a user. It never carries the
// password hash.
type UserView struct {
	ID          string
	Email       string
	FirstName   string
	LastName    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastLoginAt *time.Time
}

// Session is the result of a successful login or refresh.
type Session struct {
	User             UserView
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// RegisterInput describes a registration request.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// ProfilePatch is a partial profile update; nil fields are left untouched.
// At least one field must be present.
type ProfilePatch struct {
	FirstName *string
	LastName  *string
	Password  *string
	IsActive  *bool
}

func (p ProfilePatch) empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Password == nil && p.IsActive == nil
}

// NewService constructs a Service with the provided configuration and
// collaborators.
func NewService(
	cfg Config,
	users identity.Store,
	store Store,
	tokens *token.Issuer,
	hasher *password.Hasher,
	policy password.Policy,
) (*Service, error) {
	if users == nil || store == nil || tokens == nil || hasher == nil {
		return nil, ErrConfig
	}

	// The decoy content is irrelevant; only the verification cost matters.
	decoy, err := hasher.Hash("taskhub-decoy-" + ulid.Make().String())
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg:         cfg,
		users:       users,
		store:       store,
		tokens:      tokens,
		hasher:      hasher,
		policy:      policy,
		decoyDigest: decoy,
	}, nil
}

// Register creates a new active user.
//
// The password is assessed against the strength policy first; a failing
// password yields a ValidationError listing every unmet rule. A duplicate
// email yields ErrConflict (case-sensitive exact match in the user store).
func (s *Service) Register(ctx context.Context, now time.Time, in RegisterInput) (view UserView, err error) {
	defer func() { metricRegistrations.WithLabelValues(resultOf(err)).Inc() }()

	email := strings.TrimSpace(in.Email)
	if email == "" {
		return UserView{}, ValidationError{Reasons: []string{"email is required"}}
	}

	if strength := s.policy.Assess(in.Password); !strength.Valid {
		return UserView{}, ValidationError{Reasons: strength.Reasons}
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return UserView{}, StorageError{Op: "session.Register", Err: err}
	}

	u, err := s.users.Create(ctx, identity.CreateUserInput{
		Email:        email,
		PasswordHash: digest,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Now:          now,
	})
	if identity.IsConflict(err) {
		return UserView{}, ErrConflict
	}
	if err != nil {
		return UserView{}, StorageError{Op: "session.Register", Err: err}
	}

	return viewOf(u), nil
}

// Login authenticates email+password and issues a fresh token pair.
//
// Unknown email and wrong password both return the single generic
// ErrInvalidCredentials; the unknown-email path still performs one hash
// verification so the two are indistinguishable by timing as well.
func (s *Service) Login(ctx context.Context, now time.Time, email, plaintext string) (sess Session, err error) {
	defer func() { metricLogins.WithLabelValues(resultOf(err)).Inc() }()

	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if identity.IsNotFound(err) {
		s.hasher.Verify(plaintext, s.decoyDigest)
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, StorageError{Op: "session.Login", Err: err}
	}

	if !s.hasher.Verify(plaintext, u.PasswordHash) {
		return Session{}, ErrInvalidCredentials
	}
	if !u.IsActive {
		return Session{}, ErrInvalidCredentials
	}

	login := now
	u.LastLoginAt = &login
	u, err = s.users.Update(ctx, u, now)
	if err != nil {
		return Session{}, StorageError{Op: "session.Login", Err: err}
	}

	return s.issue(ctx, now, u)
}

// Refresh rotates a refresh token: the presented token is revoked and a
// brand-new pair is issued, with the new refresh record persisted before
// returning. A rotated token buys exactly one use.
//
// The store is the authority of record: an absent, revoked, or store-expired
// record fails with ErrInvalidCredentials even if the signed token itself
// still verifies.
func (s *Service) Refresh(ctx context.Context, now time.Time, refreshToken string) (sess Session, err error) {
	defer func() { metricRefreshes.WithLabelValues(resultOf(err)).Inc() }()

	if _, err := s.tokens.VerifyRefresh(refreshToken, now); err != nil {
		return Session{}, ErrInvalidCredentials
	}

	rec, found, err := s.store.FindByHash(ctx, s.hashRefresh(refreshToken))
	if err != nil {
		return Session{}, StorageError{Op: "session.Refresh", Err: err}
	}
	if !found || rec.Revoked() || !rec.ExpiresAt.After(now) {
		return Session{}, ErrInvalidCredentials
	}

	// Atomic revoke-then-check: of two racing refreshes on the same token,
	// the first to claim wins and the loser fails like any invalid token.
	claimed, err := s.store.Revoke(ctx, rec.TokenHash, now)
	if err != nil {
		return Session{}, StorageError{Op: "session.Refresh", Err: err}
	}
	if !claimed {
		return Session{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByID(ctx, rec.UserID)
	if identity.IsNotFound(err) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, StorageError{Op: "session.Refresh", Err: err}
	}
	if !u.IsActive {
		return Session{}, ErrInvalidCredentials
	}

	return s.issue(ctx, now, u)
}

// Logout revokes the presented refresh token.
//
// It always succeeds from the caller's perspective, even for unknown or
// already-revoked tokens, to avoid leaking validity information. Only a
// storage failure surfaces.
func (s *Service) Logout(ctx context.Context, now time.Time, refreshToken string) (err error) {
	defer func() { metricLogouts.WithLabelValues(resultOf(err)).Inc() }()

	if _, err := s.store.Revoke(ctx, s.hashRefresh(refreshToken), now); err != nil {
		return StorageError{Op: "session.Logout", Err: err}
	}
	return nil
}

// GetProfile verifies the access token and returns the owner's public view.
func (s *Service) GetProfile(ctx context.Context, now time.Time, accessToken string) (UserView, error) {
	claims, err := s.tokens.VerifyAccess(accessToken, now)
	if err != nil {
		return UserView{}, ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, claims.UserID)
	if identity.IsNotFound(err) {
		return UserView{}, ErrNotFound
	}
	if err != nil {
		return UserView{}, StorageError{Op: "session.GetProfile", Err: err}
	}

	return viewOf(u), nil
}

// UpdateProfile applies a partial profile update for the token's owner.
// The patch must carry at least one field; a new password is re-assessed
// against the strength policy and re-hashed.
func (s *Service) UpdateProfile(ctx context.Context, now time.Time, accessToken string, patch ProfilePatch) (UserView, error) {
	claims, err := s.tokens.VerifyAccess(accessToken, now)
	if err != nil {
		return UserView{}, ErrUnauthorized
	}

	if patch.empty() {
		return UserView{}, ValidationError{Reasons: []string{
			"at least one of firstName, lastName, password, isActive must be provided",
		}}
	}

	u, err := s.users.GetByID(ctx, claims.UserID)
	if identity.IsNotFound(err) {
		return UserView{}, ErrNotFound
	}
	if err != nil {
		return UserView{}, StorageError{Op: "session.UpdateProfile", Err: err}
	}

	if patch.Password != nil {
		if strength := s.policy.Assess(*patch.Password); !strength.Valid {
			return UserView{}, ValidationError{Reasons: strength.Reasons}
		}
		digest, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return UserView{}, StorageError{Op: "session.UpdateProfile", Err: err}
		}
		u.PasswordHash = digest
	}
	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = *patch.LastName
	}
	if patch.IsActive != nil {
		u.IsActive = *patch.IsActive
	}

	u, err = s.users.Update(ctx, u, now)
	if err != nil {
		return UserView{}, StorageError{Op: "session.UpdateProfile", Err: err}
	}

	return viewOf(u), nil
}

// issue mints a fresh access+refresh pair for u and persists the refresh
// record before returning.
func (s *Service) issue(ctx context.Context, now time.Time, u identity.User) (Session, error) {
	recID := ulid.Make().String()

	refreshToken, refreshExp, err := s.tokens.IssueRefresh(u.ID, recID, now)
	if err != nil {
		return Session{}, StorageError{Op: "session.issue", Err: err}
	}

	err = s.store.Create(ctx, Record{
		ID:        recID,
		UserID:    u.ID,
		TokenHash: s.hashRefresh(refreshToken),
		CreatedAt: now,
		ExpiresAt: refreshExp,
	})
	if err != nil {
		return Session{}, StorageError{Op: "session.issue", Err: err}
	}

	accessToken, accessExp, err := s.tokens.IssueAccess(u.ID, now)
	if err != nil {
		return Session{}, StorageError{Op: "session.issue", Err: err}
	}

	return Session{
		User:             viewOf(u),
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// hashRefresh computes the at-rest digest of a refresh-token value.
func (s *Service) hashRefresh(value string) string {
	if len(s.cfg.TokenHashKey) == 0 {
		return token.HashSHA256Hex(value)
	}
	return token.HashHMACSHA256Hex(value, s.cfg.TokenHashKey)
}

func viewOf(u identity.User) UserView {
	return UserView{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, ErrValidation):
		return resultValidation
	case errors.Is(err, ErrConflict):
		return resultConflict
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return resultInvalid
	default:
		return resultError
	}
}
