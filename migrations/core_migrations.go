package migrations

import "gorm.io/gorm"

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2024_01_02_000000_create_core_tables",
			Up: func(db *gorm.DB) error {
				// Create players table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS players (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						role VARCHAR(20) NOT NULL,
						matches_played INT NULL,
						runs INT NULL,
						average FLOAT NULL,
						strike_rate FLOAT NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_players_deleted_at ON players(deleted_at);
				`).Error; err != nil {
					return err
				}

				// Create teams table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS teams (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL
					);
					CREATE INDEX IF NOT EXISTS idx_teams_deleted_at ON teams(deleted_at);
				`).Error; err != nil {
					return err
				}

				// Create team_players membership join table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS team_players (
						team_id BIGINT NOT NULL,
						player_id BIGINT NOT NULL,
						PRIMARY KEY (team_id, player_id),
						FOREIGN KEY (team_id) REFERENCES teams(id) ON DELETE CASCADE,
						FOREIGN KEY (player_id) REFERENCES players(id) ON DELETE CASCADE
					);
					CREATE INDEX IF NOT EXISTS idx_team_players_player_id ON team_players(player_id);
				`).Error; err != nil {
					return err
				}

				// Create matches table. Squads are a JSONB snapshot, not a
				// join: match history must survive later roster edits.
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS matches (
						id BIGSERIAL PRIMARY KEY,
						team_1 BIGINT NOT NULL,
						team_2 BIGINT NOT NULL,
						date TIMESTAMP NOT NULL,
						venue VARCHAR(255) NOT NULL,
						status VARCHAR(20) NOT NULL DEFAULT 'upcoming',
						squads JSONB NOT NULL DEFAULT '{"team_1":[],"team_2":[]}'::jsonb,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						deleted_at TIMESTAMP NULL,
						FOREIGN KEY (team_1) REFERENCES teams(id),
						FOREIGN KEY (team_2) REFERENCES teams(id),
						CHECK (team_1 <> team_2),
						CHECK (status IN ('upcoming', 'live', 'completed'))
					);
					CREATE INDEX IF NOT EXISTS idx_matches_status ON matches(status);
					CREATE INDEX IF NOT EXISTS idx_matches_date ON matches(date);
					CREATE INDEX IF NOT EXISTS idx_matches_deleted_at ON matches(deleted_at);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec(`
					DROP TABLE IF EXISTS matches;
					DROP TABLE IF EXISTS team_players;
					DROP TABLE IF EXISTS teams;
					DROP TABLE IF EXISTS players;
				`).Error
			},
		},
	}
}
