package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

const reactFastAPIProfile = `id: react-fastapi
framework: FastAPI
language: Python 3.12
ui: [React 18, TailwindCSS]
api_pattern: REST
orm: SQLAlchemy 2
database: PostgreSQL
auth: OAuth2
testing: [pytest, vitest]
tooling: ruff + eslint
repo_mode: monorepo
deploy_target: fly.io
forbidden: [vue, angular, django, prisma]
env_vars:
  DATABASE_URL: Postgres connection string
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "react-fastapi.yml", reactFastAPIProfile)
	writeProfile(t, dir, "vue-rails.yaml", "id: vue-rails\nframework: Rails 7\nlanguage: Ruby\nforbidden: [react, redux]\n")
	writeProfile(t, dir, "notes.txt", "not a profile")

	reg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 2, reg.Len())
	assert.Empty(t, reg.Problems())
	assert.Equal(t, []string{"react-fastapi", "vue-rails"}, reg.IDs())

	profile, ok := reg.Resolve("react-fastapi")
	require.True(t, ok)
	assert.Equal(t, "FastAPI", profile.Framework)
	assert.Equal(t, []string{"vue", "angular", "django", "prisma"}, profile.Forbidden)
	assert.Equal(t, "Postgres connection string", profile.EnvVars["DATABASE_URL"])
	assert.Equal(t, filepath.Join(dir, "react-fastapi.yml"), profile.SourceFile)
}

func TestLoadMissingDirectoryIsFatal(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stack registry directory")
}

func TestLoadMalformedProfileIsRecordedNotFatal(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "good.yml", "id: good\nframework: FastAPI\n")
	writeProfile(t, dir, "bad.yml", "id: [unclosed\n")

	reg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, reg.Len())
	require.Len(t, reg.Problems(), 1)
	assert.Contains(t, reg.Problems()[0], "bad.yml")

	_, ok := reg.Resolve("good")
	assert.True(t, ok)
}

func TestLoadMissingIDIsRecorded(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "anon.yml", "framework: FastAPI\n")

	reg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, reg.Len())
	require.Len(t, reg.Problems(), 1)
	assert.Contains(t, reg.Problems()[0], "declares no id")
}

func TestLoadDuplicateIDFirstWins(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "a.yml", "id: dup\nframework: First\n")
	writeProfile(t, dir, "b.yml", "id: dup\nframework: Second\n")

	reg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, reg.Len())
	require.Len(t, reg.Problems(), 1)
	assert.Contains(t, reg.Problems()[0], "duplicate stack id 'dup'")

	profile, ok := reg.Resolve("dup")
	require.True(t, ok)
	assert.Equal(t, "First", profile.Framework)
}

func TestLoadRoundTripCount(t *testing.T) {
	dir := t.TempDir()
	ids := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	for _, id := range ids {
		writeProfile(t, dir, id+".yml", "id: "+id+"\nframework: F\n")
	}

	reg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, len(ids), reg.Len())
	for _, id := range ids {
		_, ok := reg.Resolve(id)
		assert.True(t, ok, "stack %s should resolve", id)
	}
}

func TestRequiredTechnologies(t *testing.T) {
	profile := &StackProfile{
		Framework:  "FastAPI",
		Language:   "Python 3.12",
		ORM:        "SQLAlchemy 2",
		APIPattern: "REST",
	}
	techs := profile.RequiredTechnologies()
	require.Len(t, techs, 4)
	assert.Equal(t, "framework", techs[0].Role)
	assert.Equal(t, "FastAPI", techs[0].Name)

	sparse := &StackProfile{Framework: "Rails"}
	assert.Len(t, sparse.RequiredTechnologies(), 1)
}
