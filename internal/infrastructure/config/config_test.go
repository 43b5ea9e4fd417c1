package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"SHOPADMIN_APP_NAME":          os.Getenv("SHOPADMIN_APP_NAME"),
		"SHOPADMIN_APP_ENV":           os.Getenv("SHOPADMIN_APP_ENV"),
		"SHOPADMIN_APP_PORT":          os.Getenv("SHOPADMIN_APP_PORT"),
		"SHOPADMIN_DATABASE_HOST":     os.Getenv("SHOPADMIN_DATABASE_HOST"),
		"SHOPADMIN_DATABASE_PORT":     os.Getenv("SHOPADMIN_DATABASE_PORT"),
		"SHOPADMIN_DATABASE_USER":     os.Getenv("SHOPADMIN_DATABASE_USER"),
		"SHOPADMIN_DATABASE_PASSWORD": os.Getenv("SHOPADMIN_DATABASE_PASSWORD"),
		"SHOPADMIN_DATABASE_DBNAME":   os.Getenv("SHOPADMIN_DATABASE_DBNAME"),
		"SHOPADMIN_DATABASE_SSLMODE":  os.Getenv("SHOPADMIN_DATABASE_SSLMODE"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "shopadmin-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "shopadmin", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.ElementsMatch(t, []string{"northwind", "acme", "globex"}, cfg.Vendors.AllowedCodes)
	})

	t.Run("loads values from environment variables with SHOPADMIN prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("SHOPADMIN_APP_NAME", "test-app")
		os.Setenv("SHOPADMIN_APP_PORT", "9000")
		os.Setenv("SHOPADMIN_DATABASE_HOST", "testdb.local")
		os.Setenv("SHOPADMIN_DATABASE_PORT", "5433")
		os.Setenv("SHOPADMIN_DATABASE_PASSWORD", "testpass")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testpass", cfg.Database.Password)
	})

	t.Run("production requires password and ssl", func(t *testing.T) {
		clearEnv()
		os.Setenv("SHOPADMIN_APP_ENV", "production")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "admin",
		Password: "p@ss/word",
		DBName:   "shopadmin",
		SSLMode:  "require",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// Special characters in the password must be escaped
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache.internal", Port: 6380}
	assert.Equal(t, "cache.internal:6380", r.Addr())
}
