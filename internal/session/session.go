// Package session holds the two independent login slots (register cashier,
// back-office admin) and the seeded admin account list. Credentials are
// compared as plaintext: this is a mock layer, not real authentication.
package session

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go-pos-register/internal/kv"
	"go-pos-register/internal/models"

	"github.com/google/uuid"
)

const (
	employeeKey   = "pos_session"
	adminKey      = "admin_session"
	adminUsersKey = "admin_users_mock"
)

// Manager wraps both session slots over one kv store.
type Manager struct {
	kv kv.Store
}

func NewManager(store kv.Store) *Manager {
	return &Manager{kv: store}
}

// --- Employee (register) session ---

func (m *Manager) SetEmployee(s models.EmployeeSession) error {
	return setJSON(m.kv, employeeKey, s)
}

// Employee returns the active cashier session, nil when nobody is signed in.
// Absence is a valid state; route guards key off it.
func (m *Manager) Employee() (*models.EmployeeSession, error) {
	var s models.EmployeeSession
	ok, err := getJSON(m.kv, employeeKey, &s)
	if err != nil || !ok {
		return nil, err
	}
	return &s, nil
}

func (m *Manager) ClearEmployee() error {
	return m.kv.Remove(employeeKey)
}

// LoginEmployee accepts any non-empty id + password (mock login), with two
// well-known quick accounts kept from the pilot build.
func (m *Manager) LoginEmployee(employeeID, password string) (*models.EmployeeSession, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" || strings.TrimSpace(password) == "" {
		return nil, models.Invalid("Enter Employee ID and Password.")
	}

	name, role := "Employee", "cashier"
	switch employeeID {
	case "1001":
		name = "Cashier One"
	case "2001":
		name, role = "Manager One", "manager"
	}

	s := models.EmployeeSession{
		EmployeeID: employeeID,
		Name:       name,
		Role:       role,
		LoginAt:    time.Now(),
	}
	if err := m.SetEmployee(s); err != nil {
		return nil, err
	}
	return &s, nil
}

// --- Admin (back-office) session ---

func (m *Manager) SetAdmin(s models.AdminSession) error {
	return setJSON(m.kv, adminKey, s)
}

func (m *Manager) Admin() (*models.AdminSession, error) {
	var s models.AdminSession
	ok, err := getJSON(m.kv, adminKey, &s)
	if err != nil || !ok {
		return nil, err
	}
	return &s, nil
}

func (m *Manager) ClearAdmin() error {
	return m.kv.Remove(adminKey)
}

// SeedAdmins writes the default admin/admin account if no admin list exists.
func (m *Manager) SeedAdmins() error {
	_, ok, err := m.kv.Get(adminUsersKey)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	seed := []models.AdminUser{
		{
			ID:        "a-001",
			Username:  "admin",
			Password:  "admin",
			Role:      "admin",
			CreatedAt: time.Now(),
			Active:    true,
		},
	}
	return setJSON(m.kv, adminUsersKey, seed)
}

// AdminUsers returns the seeded account list.
func (m *Manager) AdminUsers() ([]models.AdminUser, error) {
	if err := m.SeedAdmins(); err != nil {
		return nil, err
	}
	var users []models.AdminUser
	if _, err := getJSON(m.kv, adminUsersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// LoginAdmin compares credentials against the active accounts (username
// trimmed, case-insensitive; password plaintext-equal) and stores the
// session on success.
func (m *Manager) LoginAdmin(username, password string) (*models.AdminSession, error) {
	users, err := m.AdminUsers()
	if err != nil {
		return nil, err
	}

	wanted := strings.ToLower(strings.TrimSpace(username))
	for _, u := range users {
		if !u.Active || strings.ToLower(u.Username) != wanted || u.Password != password {
			continue
		}
		s := models.AdminSession{
			AdminID:  u.ID,
			Username: u.Username,
			Role:     u.Role,
			LoginAt:  time.Now(),
		}
		if err := m.SetAdmin(s); err != nil {
			return nil, err
		}
		return &s, nil
	}
	return nil, models.Invalid("Invalid username or password.")
}

// RegisterAdmin adds a back-office account. Only reachable when the
// deployment explicitly opens registration.
func (m *Manager) RegisterAdmin(username, password string) (*models.AdminUser, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, models.Invalid("Enter username and password.")
	}

	users, err := m.AdminUsers()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Username, username) {
			return nil, models.Invalid("Username already exists.")
		}
	}

	user := models.AdminUser{
		ID:        "a-" + uuid.NewString(),
		Username:  username,
		Password:  password,
		Role:      "admin",
		CreatedAt: time.Now(),
		Active:    true,
	}
	if err := setJSON(m.kv, adminUsersKey, append(users, user)); err != nil {
		return nil, err
	}
	return &user, nil
}

// --- kv helpers ---

func setJSON(store kv.Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, kv.ErrUnavailable)
	}
	return store.Set(key, raw)
}

func getJSON(store kv.Store, key string, v any) (bool, error) {
	raw, ok, err := store.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, kv.ErrUnavailable)
	}
	return true, nil
}
