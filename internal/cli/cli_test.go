package cli_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/depot/internal/cli"
)

const fixturesFile = "../../svc/product/testdata/products.yml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

type validationOutput struct {
	Valid  bool                `json:"valid"`
	Errors map[string][]string `json:"errors"`
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "depot dev")
}

func TestValidateCommand_Valid(t *testing.T) {
	out, err := run(t, "validate", "--json",
		"--title", "rollercoaster", "--description", "yyy", "--price", "1", "--image-url", "fred.gif")
	require.NoError(t, err)

	var res validationOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestValidateCommand_Invalid(t *testing.T) {
	out, err := run(t, "validate", "--json", "--title", "ball", "--price", "0", "--image-url", "fred.doc")
	require.ErrorIs(t, err, cli.ErrInvalidProduct)

	var res validationOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"is too short and must contain at least 10 characters"}, res.Errors["title"])
	assert.Equal(t, []string{"can't be blank"}, res.Errors["description"])
	assert.Equal(t, []string{"must be greater than or equal to 0.01"}, res.Errors["price"])
	assert.Equal(t, []string{"is invalid"}, res.Errors["image_url"])
}

func TestValidateCommand_TakenTitle(t *testing.T) {
	out, err := run(t, "validate", "--json", "--fixtures", fixturesFile,
		"--title", "Programming Ruby 1.9", "--description", "yyy", "--price", "1", "--image-url", "fred.gif")
	require.ErrorIs(t, err, cli.ErrInvalidProduct)

	var res validationOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, map[string][]string{"title": {"has already been taken"}}, res.Errors)
}

func TestValidateCommand_TextOutput(t *testing.T) {
	t.Run("german", func(t *testing.T) {
		out, err := run(t, "validate", "--locale", "de",
			"--title", "ball", "--description", "yyy", "--price", "1", "--image-url", "fred.gif")
		require.Error(t, err)
		assert.Contains(t, out, "Titel ist zu kurz und muss mindestens 10 Zeichen enthalten")
	})

	t.Run("valid", func(t *testing.T) {
		out, err := run(t, "validate",
			"--title", "motorcycle", "--description", "yyy", "--price", "1", "--image-url", "FRED.Jpg")
		require.NoError(t, err)
		assert.Contains(t, out, "valid")
	})
}

func TestValidateCommand_LocalesDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yml"), []byte(`en:
  errors:
    format: "%{attribute}: %{message}"
    messages:
      blank: "is required"
`), 0o644))

	out, err := run(t, "validate", "--json", "--locales-dir", dir,
		"--title", "rollercoaster", "--price", "1", "--image-url", "fred.gif")
	require.ErrorIs(t, err, cli.ErrInvalidProduct)

	var res validationOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []string{"is required"}, res.Errors["description"])
}

func TestCreateCommand(t *testing.T) {
	t.Run("saves valid product", func(t *testing.T) {
		out, err := run(t, "create", "--json",
			"--title", "Agile Web Development", "--description", "yyy", "--price", "34.95", "--image-url", "awd.png")
		require.NoError(t, err)

		var p map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &p))
		assert.Equal(t, "Agile Web Development", p["title"])
		assert.InDelta(t, 34.95, p["price"], 1e-9)
		assert.NotEmpty(t, p["id"])
	})

	t.Run("rejects taken title", func(t *testing.T) {
		out, err := run(t, "create", "--json", "--fixtures", fixturesFile,
			"--title", "Programming Ruby 1.9", "--description", "yyy", "--price", "1", "--image-url", "fred.gif")
		require.ErrorIs(t, err, cli.ErrInvalidProduct)
		assert.Contains(t, out, "has already been taken")
	})
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list", "--fixtures", fixturesFile)
	require.NoError(t, err)
	assert.Contains(t, out, "MyString One")
	assert.Contains(t, out, "Programming Ruby 1.9")

	out, err = run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no products")
}

func TestSeedCommand(t *testing.T) {
	out, err := run(t, "seed", fixturesFile)
	require.NoError(t, err)
	assert.Contains(t, out, "seeded 3 products into memory")

	_, err = run(t, "seed", "does-not-exist.yml")
	assert.Error(t, err)
}

func TestUnknownStore(t *testing.T) {
	_, err := run(t, "list", "--store", "cassandra")
	assert.ErrorIs(t, err, cli.ErrUnknownStore)
}

func TestMigrateCommand_RequiresPostgres(t *testing.T) {
	_, err := run(t, "migrate", "--store", "memory")
	assert.ErrorIs(t, err, cli.ErrPostgresOnly)
}

func TestPingCommand(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, err := run(t, "ping", "--store", "memory")
		require.NoError(t, err)
		assert.Contains(t, out, "memory ok")
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "ping", "--store", "memory", "--json", "--timeout", "1s")
		require.NoError(t, err)

		var res map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, "memory", res["store"])
		assert.Equal(t, true, res["ok"])
	})
}
