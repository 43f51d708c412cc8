package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testProfile = `id: react-fastapi
framework: FastAPI
language: Python 3.12
api_pattern: REST
orm: SQLAlchemy 2
forbidden: [vue, angular, django, prisma]
`

const validDocument = `---
cartridge: true
name: Payment Service
tier: prototype
stack: react-fastapi
version: 1.2.0
owner: "@platform-team"
status: stable
---

## Intent

Scaffold a FastAPI payment service in Python.

## Inputs

- service name

## Outputs

- a service workspace

## Directory Layout

src/ holds the app, tests/ the suite.

## Conventions

REST resources are plural nouns.

## Dependencies

FastAPI, SQLAlchemy, PostgreSQL.

## Quality Gates

` + "```bash" + `
ruff check .   # lint
mypy src       # typecheck
pytest         # test
` + "```" + `

## Examples

` + "```python" + `
app = FastAPI()
` + "```" + `

## Anti-Patterns

Do not bypass the ORM.

## Migration Notes

None yet.

## References

- internal scaffolding docs
`

const brokenDocument = `---
cartridge: true
name: Broken
tier: prototype
stack: react-fastapi
version: 1.0.0
owner: "@platform-team"
status: stable
---

## Intent

new Vue(el)
`

// writeTestStacks creates a stacks directory with one profile and returns it.
func writeTestStacks(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "react-fastapi.yml"), []byte(testProfile), 0o600))
	return dir
}

// writeCartridge writes content as name under dir and returns the path.
func writeCartridge(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
