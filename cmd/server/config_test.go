package main

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/buzkaaclicker/social/inmem"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	assert := assert.New(t)

	cfg := Config{}
	if assert.NoError(cfg.validate()) {
		assert.Equal(Config{Addr: ":2137", Backend: backendInmem, AllowOrigins: "*"}, cfg)
	}

	cfg = Config{Debug: true, Backend: " BUNT "}
	if assert.NoError(cfg.validate()) {
		assert.Equal("127.0.0.1:2137", cfg.Addr)
		assert.Equal(backendBunt, cfg.Backend)
	}

	cfg = Config{Backend: "postgres"}
	assert.Error(cfg.validate())
}

func TestServerCommandFlagsOverrideEnv(t *testing.T) {
	assert := assert.New(t)
	t.Setenv("SOCIAL_BACKEND", "bunt")
	t.Setenv("SOCIAL_ADDR", ":8080")
	t.Setenv("DEBUG", "true")

	var got Config
	cmd := newServerCommand(func(cfg Config) error {
		got = cfg
		return nil
	})
	cmd.SetArgs([]string{"--addr", ":9000", "--allow-origins", "https://example.com"})
	if !assert.NoError(cmd.Execute()) {
		return
	}
	assert.Equal(Config{
		Addr:         ":9000",
		Debug:        true,
		Backend:      backendBunt,
		AllowOrigins: "https://example.com",
	}, got)

	cmd = newServerCommand(func(cfg Config) error { return nil })
	cmd.SetArgs([]string{"--backend", "mongo"})
	assert.Error(cmd.Execute())
}

func TestLoadDotEnvsPrecedence(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	write := func(name string, content string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %s", name, err)
		}
	}
	write(".env.test.local", "SOCIAL_TEST_FIRST=local\n")
	write(".env", "SOCIAL_TEST_FIRST=shared\nSOCIAL_TEST_SECOND=shared\n")

	t.Setenv("SOCIAL_ENV", "test")
	for _, key := range []string{"SOCIAL_TEST_FIRST", "SOCIAL_TEST_SECOND"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	loadDotEnvs(dir + string(filepath.Separator))
	assert.Equal("local", os.Getenv("SOCIAL_TEST_FIRST"))
	assert.Equal("shared", os.Getenv("SOCIAL_TEST_SECOND"))
}

func TestAppRoutes(t *testing.T) {
	assert := assert.New(t)
	app := newApp(inmem.NewStore().Stores(), Config{AllowOrigins: "*"})

	cases := []struct {
		path       string
		returnCode int
	}{
		{path: "/member-types", returnCode: fiber.StatusOK},
		{path: "/users", returnCode: fiber.StatusOK},
		{path: "/status", returnCode: fiber.StatusOK},
		{path: "/unknown", returnCode: fiber.StatusNotFound},
	}
	for _, useCase := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", useCase.path, nil))
		if !assert.NoError(err, useCase.path) {
			continue
		}
		resp.Body.Close()
		assert.Equal(useCase.returnCode, resp.StatusCode, useCase.path)
	}
}
