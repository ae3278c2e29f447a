package auth

import (
	"context"
	"strings"
	"time"

	"hris/internal/apperr"
	"hris/internal/domain/core"
	"hris/internal/store"
)

// Credential links an employee to a password hash. Kept in its own
// table so employee records never carry secrets.
type Credential struct {
	store.Meta
	EmployeeID   string `json:"employeeId"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

var TableCredentials = store.NewTable[Credential]("credentials")

const TokenTTL = 12 * time.Hour

type Service struct {
	store  *store.Store
	secret string
}

func NewService(st *store.Store, secret string) *Service {
	return &Service{store: st, secret: secret}
}

// SetPassword creates or replaces the credential for an employee.
func (s *Service) SetPassword(ctx context.Context, employeeID, password string) error {
	if len(password) < 8 {
		return apperr.Validationf("password must be at least 8 characters")
	}

	emp, err := store.Get(ctx, s.store, core.TableEmployees, employeeID)
	if err != nil {
		return err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return apperr.Wrap(err, "hash password failed")
	}

	existing, err := store.List(ctx, s.store, TableCredentials, store.Filter{"employeeId": employeeID})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		_, err = store.Update(ctx, s.store, TableCredentials, existing[0].ID, map[string]any{
			"email":        emp.Email,
			"passwordHash": hash,
		})
		return err
	}
	_, err = store.Create(ctx, s.store, TableCredentials, Credential{
		EmployeeID:   employeeID,
		Email:        emp.Email,
		PasswordHash: hash,
	})
	return err
}

// Login verifies the credentials and returns a signed token plus the
// employee it belongs to. Invalid email and invalid password produce
// the same error so the endpoint does not leak which one was wrong.
func (s *Service) Login(ctx context.Context, email, password string) (string, core.Employee, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", core.Employee{}, apperr.Validationf("email and password are required")
	}

	creds, err := store.List(ctx, s.store, TableCredentials, store.Filter{"email": email})
	if err != nil {
		return "", core.Employee{}, err
	}
	if len(creds) == 0 {
		return "", core.Employee{}, apperr.Validationf("invalid credentials")
	}
	cred := creds[0]

	if err := CheckPassword(cred.PasswordHash, password); err != nil {
		return "", core.Employee{}, apperr.Validationf("invalid credentials")
	}

	emp, err := store.Get(ctx, s.store, core.TableEmployees, cred.EmployeeID)
	if err != nil {
		return "", core.Employee{}, err
	}
	if emp.Status != core.StatusActive {
		return "", core.Employee{}, apperr.Validationf("account is %s", emp.Status)
	}

	perms := emp.Permissions
	if len(perms) == 0 {
		perms = DefaultPermissions(emp.Role)
	}

	token, err := GenerateToken(s.secret, Claims{
		EmployeeID:  emp.ID,
		Role:        emp.Role,
		Permissions: perms,
	}, TokenTTL)
	if err != nil {
		return "", core.Employee{}, apperr.Wrap(err, "sign token failed")
	}
	return token, emp, nil
}
