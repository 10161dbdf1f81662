package application

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wanjicode/CareerBridge/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const (
	PermissionAll          = "*"
	PermissionProgramRead  = "program.read"
	PermissionProgramWrite = "program.write"
)

func (s *ProgramService) BootstrapAdmin(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return errors.New("bootstrap admin email and password are required")
	}

	count, err := s.repo.CountAccounts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	account, err := s.repo.CreateAccount(ctx, domain.Account{Email: strings.ToLower(strings.TrimSpace(email)), PasswordHash: hash})
	if err != nil {
		return err
	}

	adminRoleID, err := s.repo.CreateRoleIfMissing(ctx, "admin", "Administrator")
	if err != nil {
		return err
	}
	permID, err := s.repo.CreatePermissionIfMissing(ctx, PermissionAll)
	if err != nil {
		return err
	}
	if err := s.repo.GrantPermissionToRole(ctx, adminRoleID, permID); err != nil {
		return err
	}

	coordinatorRoleID, err := s.repo.CreateRoleIfMissing(ctx, "coordinator", "Program Coordinator")
	if err != nil {
		return err
	}
	for _, key := range []string{PermissionProgramRead, PermissionProgramWrite} {
		id, err := s.repo.CreatePermissionIfMissing(ctx, key)
		if err != nil {
			return err
		}
		if err := s.repo.GrantPermissionToRole(ctx, coordinatorRoleID, id); err != nil {
			return err
		}
	}

	if err := s.repo.AssignRoleToAccount(ctx, account.ID, adminRoleID); err != nil {
		return err
	}

	return s.repo.CreateAuditLog(ctx, domain.AuditLog{ActorAccountID: &account.ID, Action: "auth.bootstrap_admin", TargetType: "account", TargetID: &account.ID, Metadata: "initial admin created"})
}

func (s *ProgramService) LoginWithSession(ctx context.Context, email, password string, ttl time.Duration) (domain.Account, string, error) {
	account, err := s.authenticateEmailPassword(ctx, email, password)
	if err != nil {
		return domain.Account{}, "", err
	}

	plain, hash, err := newTokenPair()
	if err != nil {
		return domain.Account{}, "", err
	}

	_, err = s.repo.CreateSession(ctx, domain.AuthSession{
		AccountID: account.ID,
		TokenHash: hash,
		ExpiresAt: time.Now().UTC().Add(ttl),
	})
	if err != nil {
		return domain.Account{}, "", err
	}

	_ = s.repo.CreateAuditLog(ctx, domain.AuditLog{ActorAccountID: &account.ID, Action: "auth.login.session", TargetType: "account", TargetID: &account.ID, Metadata: "session login"})
	return account, plain, nil
}

func (s *ProgramService) LoginWithAPIToken(ctx context.Context, email, password, tokenName string, ttl *time.Duration) (domain.Account, string, error) {
	account, err := s.authenticateEmailPassword(ctx, email, password)
	if err != nil {
		return domain.Account{}, "", err
	}

	plain, hash, err := newTokenPair()
	if err != nil {
		return domain.Account{}, "", err
	}

	var expiresAt *time.Time
	if ttl != nil {
		t := time.Now().UTC().Add(*ttl)
		expiresAt = &t
	}

	_, err = s.repo.CreateAPIToken(ctx, domain.APIToken{
		AccountID: account.ID,
		Name:      defaultString(tokenName, "cli"),
		TokenHash: hash,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return domain.Account{}, "", err
	}

	_ = s.repo.CreateAuditLog(ctx, domain.AuditLog{ActorAccountID: &account.ID, Action: "auth.login.api_token", TargetType: "account", TargetID: &account.ID, Metadata: "api token issued"})
	return account, plain, nil
}

func (s *ProgramService) AuthenticateSession(ctx context.Context, token string) (domain.Identity, error) {
	hash := hashToken(token)
	session, err := s.repo.GetSessionByTokenHash(ctx, hash)
	if err != nil {
		return domain.Identity{}, errors.New("unauthorized")
	}
	if session.ExpiresAt.Before(time.Now().UTC()) {
		_ = s.repo.DeleteSessionByTokenHash(ctx, hash)
		return domain.Identity{}, errors.New("session expired")
	}

	return s.identityByAccountID(ctx, session.AccountID)
}

func (s *ProgramService) AuthenticateBearerToken(ctx context.Context, token string) (domain.Identity, error) {
	hash := hashToken(token)
	apit, err := s.repo.GetAPITokenByTokenHash(ctx, hash)
	if err != nil {
		return domain.Identity{}, errors.New("unauthorized")
	}
	if apit.ExpiresAt != nil && apit.ExpiresAt.Before(time.Now().UTC()) {
		return domain.Identity{}, errors.New("token expired")
	}

	return s.identityByAccountID(ctx, apit.AccountID)
}

func (s *ProgramService) LogoutSession(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	return s.repo.DeleteSessionByTokenHash(ctx, hashToken(token))
}

func (s *ProgramService) Can(identity domain.Identity, permission string) bool {
	if _, ok := identity.Permissions[PermissionAll]; ok {
		return true
	}
	_, ok := identity.Permissions[permission]
	return ok
}

func (s *ProgramService) WriteAudit(ctx context.Context, actorAccountID *uint, action, targetType string, targetID *uint, metadata string) {
	_ = s.repo.CreateAuditLog(ctx, domain.AuditLog{
		ActorAccountID: actorAccountID,
		Action:         action,
		TargetType:     targetType,
		TargetID:       targetID,
		Metadata:       metadata,
	})
}

func (s *ProgramService) CreateAccount(ctx context.Context, email, password string, roleID uint, participantID *uint) (domain.Account, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return domain.Account{}, errors.New("email and password are required")
	}
	hash, err := hashPassword(password)
	if err != nil {
		return domain.Account{}, err
	}
	account, err := s.repo.CreateAccount(ctx, domain.Account{
		Email:         strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:  hash,
		ParticipantID: participantID,
	})
	if err != nil {
		return domain.Account{}, err
	}
	if roleID != 0 {
		if err := s.repo.AssignRoleToAccount(ctx, account.ID, roleID); err != nil {
			return domain.Account{}, err
		}
	}
	return account, nil
}

func (s *ProgramService) ListRoles(ctx context.Context) ([]domain.AccessRole, error) {
	return s.repo.ListRoles(ctx)
}

func (s *ProgramService) AssignRole(ctx context.Context, accountID, roleID uint) error {
	if accountID == 0 || roleID == 0 {
		return errors.New("account_id and role_id are required")
	}
	return s.repo.AssignRoleToAccount(ctx, accountID, roleID)
}

func (s *ProgramService) ListAuditLogs(ctx context.Context, limit int) ([]domain.AuditRecord, error) {
	if limit <= 0 {
		limit = 200
	}
	if limit > 2000 {
		limit = 2000
	}
	return s.repo.ListAuditLogs(ctx, limit)
}

func (s *ProgramService) authenticateEmailPassword(ctx context.Context, email, password string) (domain.Account, error) {
	account, err := s.repo.GetAccountByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return domain.Account{}, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return domain.Account{}, errors.New("invalid credentials")
	}
	return account, nil
}

func (s *ProgramService) identityByAccountID(ctx context.Context, accountID uint) (domain.Identity, error) {
	account, err := s.repo.GetAccountByID(ctx, accountID)
	if err != nil {
		return domain.Identity{}, errors.New("unauthorized")
	}
	permList, err := s.repo.GetPermissionsByAccountID(ctx, accountID)
	if err != nil {
		return domain.Identity{}, err
	}
	permMap := make(map[string]struct{}, len(permList))
	for _, p := range permList {
		permMap[p] = struct{}{}
	}
	return domain.Identity{Account: account, Permissions: permMap}, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func newTokenPair() (string, string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", "", err
	}
	plain := base64.RawURLEncoding.EncodeToString(raw)
	return plain, hashToken(plain), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", sum[:])
}

func defaultString(input, fallback string) string {
	if strings.TrimSpace(input) == "" {
		return fallback
	}
	return input
}
