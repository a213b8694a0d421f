package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/smart-plant-guard/internal/adapter"
	"github.com/MKhiriev/smart-plant-guard/internal/config"
	"github.com/MKhiriev/smart-plant-guard/internal/crypto"
	"github.com/MKhiriev/smart-plant-guard/internal/logger"
	"github.com/MKhiriev/smart-plant-guard/internal/mock"
	"github.com/MKhiriev/smart-plant-guard/models"
)

func init() {
	color.NoColor = true
}

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, c *CLI, stdin string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer

	root := c.RootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(context.Background())
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func keyConfig(t *testing.T) config.CLIConfig {
	t.Helper()
	dataKey, err := crypto.GenerateKey(crypto.KeySize)
	require.NoError(t, err)
	indexKey, err := crypto.GenerateKey(indexKeySize)
	require.NoError(t, err)
	return config.CLIConfig{App: config.CLIApp{DataKeyB64: dataKey, IndexKeyB64: indexKey}}
}

func withMock(t *testing.T) (*CLI, *mock.MockServerAdapter) {
	t.Helper()
	server := mock.NewMockServerAdapter(gomock.NewController(t))
	c := New(config.CLIConfig{}, models.NewAppBuildInfo("0.3.0", "2026-10-01", "abc123"), logger.Nop(),
		WithAdapterFactory(func(config.CLIAdapter, *logger.Logger) (adapter.ServerAdapter, error) {
			return server, nil
		}))
	return c, server
}

// ── keys ────────────────────────────────────────────────────────────────────

func TestKeygen(t *testing.T) {
	res := run(t, New(config.CLIConfig{}, models.AppBuildInfo{}, logger.Nop()), "", "keygen")
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "APP_DATA_KEY_B64="))
	assert.True(t, strings.HasPrefix(lines[1], "APP_INDEX_KEY_B64="))

	dataKey := strings.TrimPrefix(lines[0], "APP_DATA_KEY_B64=")
	indexKey := strings.TrimPrefix(lines[1], "APP_INDEX_KEY_B64=")
	assert.NotEqual(t, dataKey, indexKey)

	k, err := crypto.NewKeyring(dataKey, indexKey)
	require.NoError(t, err)
	_, err = k.Seal("usable")
	assert.NoError(t, err)
}

func TestSealThenOpen(t *testing.T) {
	cfg := keyConfig(t)

	sealed := run(t, New(cfg, models.AppBuildInfo{}, logger.Nop()), "", "seal", "Found only near the waterfall.")
	require.NoError(t, sealed.err)
	bundle := strings.TrimSpace(sealed.stdout)
	assert.NotContains(t, bundle, "waterfall")

	opened := run(t, New(cfg, models.AppBuildInfo{}, logger.Nop()), "", "open", bundle)
	require.NoError(t, opened.err)
	assert.Equal(t, "Found only near the waterfall.\n", opened.stdout)
}

func TestOpen_Errors(t *testing.T) {
	res := run(t, New(keyConfig(t), models.AppBuildInfo{}, logger.Nop()), "", "open", "{not a bundle")
	assert.ErrorIs(t, res.err, crypto.ErrMalformedEnvelope)

	res = run(t, New(config.CLIConfig{}, models.AppBuildInfo{}, logger.Nop()), "", "seal", "x")
	assert.ErrorIs(t, res.err, crypto.ErrMissingKey)

	res = run(t, New(keyConfig(t), models.AppBuildInfo{}, logger.Nop()), "", "seal", "")
	assert.ErrorIs(t, res.err, errNoInput)
}

func TestOpen_JSONPayload(t *testing.T) {
	cfg := keyConfig(t)

	sealed := run(t, New(cfg, models.AppBuildInfo{}, logger.Nop()), "", "seal", `{"location_latitude":-1.5,"location_longitude":36.8}`)
	require.NoError(t, sealed.err)
	bundle := strings.TrimSpace(sealed.stdout)

	opened := run(t, New(cfg, models.AppBuildInfo{}, logger.Nop()), "", "open", "--json", bundle)
	require.NoError(t, opened.err)
	assert.Contains(t, opened.stdout, `"location_latitude": -1.5`)

	notObject := run(t, New(cfg, models.AppBuildInfo{}, logger.Nop()), "", "seal", "plain text")
	require.NoError(t, notObject.err)
	res := run(t, New(cfg, models.AppBuildInfo{}, logger.Nop()), "", "open", "--json", strings.TrimSpace(notObject.stdout))
	assert.ErrorIs(t, res.err, errNoPayload)

	res = run(t, New(keyConfig(t), models.AppBuildInfo{}, logger.Nop()), "", "open", "--json", bundle)
	assert.ErrorIs(t, res.err, errNoPayload, "a foreign key cannot read the payload")

	res = run(t, New(config.CLIConfig{}, models.AppBuildInfo{}, logger.Nop()), "", "open", "--json", bundle)
	assert.ErrorIs(t, res.err, crypto.ErrMissingKey)
}

func TestIndex_MatchesServerNormalization(t *testing.T) {
	cfg := keyConfig(t)

	a := run(t, New(cfg, models.AppBuildInfo{}, logger.Nop()), "", "index", "  Root@Lab.org ")
	b := run(t, New(cfg, models.AppBuildInfo{}, logger.Nop()), "", "index", "root@lab.org")
	require.NoError(t, a.err)
	require.NoError(t, b.err)

	assert.Equal(t, a.stdout, b.stdout)
	assert.Len(t, strings.TrimSpace(a.stdout), 64)
}

// ── login ───────────────────────────────────────────────────────────────────

func TestLogin_WithCode(t *testing.T) {
	c, server := withMock(t)

	gomock.InOrder(
		server.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "root@lab.org", Password: "s3cret pass"}).
			Return(models.LoginResult{Role: "admin", RequireMFA: true, SentTo: "ro**@lab.org"}, nil),
		server.EXPECT().VerifyCode(gomock.Any(), "482913").
			Return(models.LoginResult{Role: "admin"}, nil),
		server.EXPECT().Token().Return("verified.jwt"),
	)

	res := run(t, c, "s3cret pass\n482913\n", "login", "--email", "root@lab.org")

	require.NoError(t, res.err)
	assert.Equal(t, "verified.jwt\n", res.stdout)
	assert.Contains(t, res.stderr, "ro**@lab.org")
	assert.Contains(t, res.stderr, "logged in as admin")
}

func TestLogin_PublicSkipsCode(t *testing.T) {
	c, server := withMock(t)

	server.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "a@b.co", Password: "pw"}).
		Return(models.LoginResult{Role: "public"}, nil)
	server.EXPECT().Token().Return("public.jwt")

	res := run(t, c, "", "login", "--email", "a@b.co", "--password", "pw")

	require.NoError(t, res.err)
	assert.Equal(t, "public.jwt\n", res.stdout)
	assert.NotContains(t, res.stderr, "code")
}

func TestLogin_Failures(t *testing.T) {
	t.Run("bad password", func(t *testing.T) {
		c, server := withMock(t)
		server.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResult{}, adapter.ErrUnauthorized)

		res := run(t, c, "", "login", "--email", "a@b.co", "--password", "pw")
		assert.ErrorIs(t, res.err, adapter.ErrUnauthorized)
		assert.Empty(t, res.stdout)
	})

	t.Run("wrong code", func(t *testing.T) {
		c, server := withMock(t)
		server.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResult{RequireMFA: true}, nil)
		server.EXPECT().VerifyCode(gomock.Any(), "000000").Return(models.LoginResult{}, adapter.ErrUnauthorized)

		res := run(t, c, "000000\n", "login", "--email", "a@b.co", "--password", "pw")
		assert.ErrorIs(t, res.err, adapter.ErrUnauthorized)
		assert.Empty(t, res.stdout)
	})

	t.Run("no input for prompt", func(t *testing.T) {
		c, _ := withMock(t)

		res := run(t, c, "", "login", "--email", "a@b.co")
		assert.Error(t, res.err)
	})
}

// ── API reads and admin ─────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	c, server := withMock(t)
	server.EXPECT().Version(gomock.Any()).Return(models.VersionResponse{Version: "1.0.0", Commit: "def", Date: "2026-09-30"}, nil)

	res := run(t, c, "", "version")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "plantctl 0.3.0 (abc123, 2026-10-01)")
	assert.Contains(t, res.stdout, "server   1.0.0 (def, 2026-09-30)")
}

func TestVersion_Offline(t *testing.T) {
	c, _ := withMock(t)

	res := run(t, c, "", "version", "--offline")

	require.NoError(t, res.err)
	assert.NotContains(t, res.stdout, "server")
}

func TestSpeciesList_Public(t *testing.T) {
	c, server := withMock(t)
	server.EXPECT().ListSpecies(gomock.Any(), true).Return([]models.SpeciesView{{ID: 1, CommonName: "Fern"}}, nil)

	res := run(t, c, "", "species", "list", "--public")

	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, `"common_name": "Fern"`)
}

func TestObservationsList_Forbidden(t *testing.T) {
	c, server := withMock(t)
	server.EXPECT().ListObservations(gomock.Any(), false).Return(nil, adapter.ErrForbidden)

	res := run(t, c, "", "observations", "list")
	assert.ErrorIs(t, res.err, adapter.ErrForbidden)
}

func TestUsers(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		c, server := withMock(t)
		server.EXPECT().ListUsers(gomock.Any(), models.UserListQuery{Page: 2, Size: 5}).
			Return(models.UserPage{Page: 2, Size: 5, Total: 7}, nil)

		res := run(t, c, "", "users", "list", "--page", "2", "--size", "5")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, `"total": 7`)
	})

	t.Run("list with filters", func(t *testing.T) {
		c, server := withMock(t)
		inactive := false
		server.EXPECT().ListUsers(gomock.Any(), models.UserListQuery{Role: "researcher", Active: &inactive}).
			Return(models.UserPage{Total: 1}, nil)

		res := run(t, c, "", "users", "list", "--role", "researcher", "--active=false")
		require.NoError(t, res.err)
		assert.Contains(t, res.stdout, `"total": 1`)
	})

	t.Run("deactivate", func(t *testing.T) {
		c, server := withMock(t)
		server.EXPECT().SetUserActive(gomock.Any(), int64(4), false).Return(models.UserProfile{ID: 4}, nil)

		res := run(t, c, "", "users", "deactivate", "4")
		require.NoError(t, res.err)
		assert.Contains(t, res.stderr, "user 4 deactivated")
	})

	t.Run("role", func(t *testing.T) {
		c, server := withMock(t)
		server.EXPECT().SetUserRole(gomock.Any(), int64(4), "researcher").Return(models.UserProfile{ID: 4, Role: "researcher"}, nil)

		res := run(t, c, "", "users", "role", "4", "researcher")
		require.NoError(t, res.err)
		assert.Contains(t, res.stderr, "user 4 is now researcher")
	})

	t.Run("bad id", func(t *testing.T) {
		c, _ := withMock(t)

		res := run(t, c, "", "users", "activate", "abc")
		assert.ErrorContains(t, res.err, `invalid user id "abc"`)
	})
}

func TestAdapterFactoryError(t *testing.T) {
	boom := errors.New("bad url")
	c := New(config.CLIConfig{}, models.AppBuildInfo{}, logger.Nop(),
		WithAdapterFactory(func(config.CLIAdapter, *logger.Logger) (adapter.ServerAdapter, error) {
			return nil, boom
		}))

	res := run(t, c, "", "whoami")
	assert.ErrorIs(t, res.err, boom)
}

func TestServerFlagReachesFactory(t *testing.T) {
	var got config.CLIAdapter
	server := mock.NewMockServerAdapter(gomock.NewController(t))
	server.EXPECT().Me(gomock.Any()).Return(models.MeResponse{}, nil)

	c := New(config.CLIConfig{}, models.AppBuildInfo{}, logger.Nop(),
		WithAdapterFactory(func(cfg config.CLIAdapter, _ *logger.Logger) (adapter.ServerAdapter, error) {
			got = cfg
			return server, nil
		}))

	res := run(t, c, "", "whoami", "--server", "http://plants:9000", "--token", "tok")

	require.NoError(t, res.err)
	assert.Equal(t, "http://plants:9000", got.ServerURL)
	assert.Equal(t, "tok", got.Token)
}
