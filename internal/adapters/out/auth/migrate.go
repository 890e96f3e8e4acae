package auth

import "gorm.io/gorm"

// Migrate creates or updates the auth-owned schema: the password hash column
// on users and the refresh_tokens table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&accountDTO{}, &RefreshTokenDTO{})
}
