package services

import (
	"errors"
	"log"

	"roomdesk-backend-go/internal/models"
	"roomdesk-backend-go/internal/store"
)

// EnsureDefaultUsers creates the two protected accounts when missing. Existing
// rows are left untouched so rotated passwords survive restarts.
func EnsureDefaultUsers(st store.Store, tokens TokenService, adminPassword, superAdminPassword string) error {
	defaults := []struct {
		username string
		password string
		role     models.Role
	}{
		{"admin", adminPassword, models.RoleAdmin},
		{"superadmin", superAdminPassword, models.RoleSuperAdmin},
	}
	for _, account := range defaults {
		_, err := st.GetUserByUsername(account.username)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		hash, err := tokens.HashPassword(account.password)
		if err != nil {
			return err
		}
		if _, err := st.CreateUser(store.UserParams{
			Username:     account.username,
			PasswordHash: hash,
			Role:         account.role,
		}); err != nil {
			return err
		}
		log.Printf("seeded default account %q", account.username)
	}
	return nil
}
