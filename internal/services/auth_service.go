package services

import (
	"context"
	"net/http"
	"time"

	"talentlink/internal/logger"
	"talentlink/internal/marketplace"
	"talentlink/internal/session"
	"talentlink/internal/services/dto"
	"talentlink/pkg/apperrors"

	"github.com/google/uuid"
)

// AuthService runs the login exchange and owns the session lifecycle:
// populate on login, clear in full on logout.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Logout(ctx context.Context, sessionID string) error
}

type authService struct {
	client     *marketplace.Client
	store      session.Store
	sessionTTL time.Duration
}

func NewAuthService(client *marketplace.Client, store session.Store, sessionTTL time.Duration) AuthService {
	return &authService{
		client:     client,
		store:      store,
		sessionTTL: sessionTTL,
	}
}

// Login authenticates, then resolves the profile by username match against
// the full profile list, then populates the session atomically. A missing
// profile discards the token pair and reports NotFound: the account exists
// but has no workspace to route to.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	pair, err := s.client.Login(ctx, req.Username, req.Password)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.CodeUnauthorized {
			return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth",
				"Invalid username or password", http.StatusUnauthorized).WithError(err)
		}
		return nil, err
	}

	profiles, err := s.client.WithToken(pair.Access).ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	var profile *session.Session
	for i := range profiles {
		if profiles[i].UserName == req.Username {
			p := profiles[i]
			profile = &session.Session{
				ID:          uuid.NewString(),
				Access:      pair.Access,
				Refresh:     pair.Refresh,
				LoggedUser:  req.Username,
				ProfileID:   p.ID,
				ProfileName: p.UserName,
				CreatedAt:   time.Now(),
			}
			// The role-scoped name keys are mutually exclusive: setting one
			// clears the other, matching the dashboard storage behavior.
			switch {
			case p.IsFreelancer:
				profile.Role = session.RoleFreelancer
				profile.FreelancerProfileName = p.UserName
				profile.ClientProfileName = ""
			case p.IsClient:
				profile.Role = session.RoleClient
				profile.ClientProfileName = p.UserName
				profile.FreelancerProfileName = ""
			default:
				profile.Role = session.RoleNone
			}
			break
		}
	}

	if profile == nil {
		return nil, apperrors.NewNotFoundError("auth", "Profile not found for this account")
	}

	if exp := session.AccessExpiry(pair.Access); !exp.IsZero() {
		profile.ExpiresAt = exp
	} else {
		profile.ExpiresAt = time.Now().Add(s.sessionTTL)
	}

	if err := s.store.Put(ctx, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("session opened", "user", profile.LoggedUser, "role", profile.Role, "profile_id", profile.ProfileID)

	return &dto.LoginResponse{
		SessionID:   profile.ID,
		Role:        profile.Role,
		ProfileID:   profile.ProfileID,
		ProfileName: profile.ProfileName,
	}, nil
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := s.client.Register(ctx, req.Username, req.Email, req.Password); err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{RegisteredUser: req.Username}, nil
}

// Logout clears the whole session in one step.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return apperrors.InternalError(err)
	}
	logger.Info("session closed", "session_id", sessionID)
	return nil
}
