package migrations

import "gorm.io/gorm"

func GetAuthMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2024_01_01_000000_create_admins_table",
			Up: func(db *gorm.DB) error {
				// Uniqueness of username and email is enforced here, not in
				// application code: concurrent signups race on these indexes.
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS admins (
						id BIGSERIAL PRIMARY KEY,
						username VARCHAR(255) NOT NULL,
						email VARCHAR(255) NOT NULL,
						password VARCHAR(255) NOT NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_admins_username ON admins(username);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_admins_email ON admins(email);
					CREATE INDEX IF NOT EXISTS idx_admins_deleted_at ON admins(deleted_at);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec(`DROP TABLE IF EXISTS admins;`).Error
			},
		},
	}
}
