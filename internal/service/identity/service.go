package identity

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/greencoders/soilcard/internal/domain/models"
	repo "github.com/greencoders/soilcard/internal/repository/mongodb"
)

// Service resolves verified sign-ins into profiles and sessions. A profile is
// created on first sign-in; farmers get a generated FC-<year>-<6 digits>
// identifier, admins are recognized by the configured email allow-list.
type Service struct {
	profiles    repo.ProfileRepository
	adminEmails map[string]struct{}
	logger      *zap.Logger
	now         func() time.Time
	randInt     func(n int) int
}

// NewService constructs an identity service.
func NewService(profiles repo.ProfileRepository, adminEmails []string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	allow := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		allow[strings.ToLower(strings.TrimSpace(email))] = struct{}{}
	}

	return &Service{
		profiles:    profiles,
		adminEmails: allow,
		logger:      logger,
		now:         time.Now,
		randInt:     rand.Intn,
	}
}

// RoleForEmail resolves the role from the admin allow-list.
func (s *Service) RoleForEmail(email string) models.Role {
	if _, ok := s.adminEmails[strings.ToLower(strings.TrimSpace(email))]; ok {
		return models.RoleAdmin
	}
	return models.RoleFarmer
}

// EnsureProfile fetches the identity record for a verified sign-in, creating
// it on first contact.
func (s *Service) EnsureProfile(ctx context.Context, userID, email string) (models.FarmerProfile, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, models.ErrProfileNotFound) {
		return models.FarmerProfile{}, fmt.Errorf("load profile: %w", err)
	}

	profile = models.FarmerProfile{
		UserID:    userID,
		Email:     email,
		Role:      s.RoleForEmail(email),
		CreatedAt: s.now().UTC(),
	}
	if profile.Role == models.RoleFarmer {
		profile.FarmerID = s.GenerateFarmerID()
	}

	if err := s.profiles.SaveProfile(ctx, profile); err != nil {
		return models.FarmerProfile{}, fmt.Errorf("create profile: %w", err)
	}

	s.logger.Info("profile created",
		zap.String("user_id", userID),
		zap.String("role", string(profile.Role)),
		zap.String("farmer_id", profile.FarmerID))

	return profile, nil
}

// StartSession materializes the explicit per-request session from a profile.
func (s *Service) StartSession(profile models.FarmerProfile) models.Session {
	return models.Session{
		UserID:   profile.UserID,
		Email:    profile.Email,
		Role:     profile.Role,
		FarmerID: profile.FarmerID,
	}
}

// GenerateFarmerID produces an identifier of form FC-<4-digit year>-<6-digit
// zero-padded random>.
func (s *Service) GenerateFarmerID() string {
	year := s.now().Year()
	return fmt.Sprintf("FC-%04d-%06d", year, s.randInt(1000000))
}

// CanEditCard reports whether the session may modify the given card.
func CanEditCard(session models.Session, cardUserID string) bool {
	return session.IsAdmin() || session.UserID == cardUserID
}

// CanDeleteCard reports whether the session may delete cards.
func CanDeleteCard(session models.Session) bool {
	return session.IsAdmin()
}

// CanManageUsers reports whether the session may add farmers or admins.
func CanManageUsers(session models.Session) bool {
	return session.IsAdmin()
}
