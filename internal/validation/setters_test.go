package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSettersDelegate(t *testing.T) {
	errs := ValidateSetterDelegation(filepath.Join("..", "catalog"))
	for _, e := range errs {
		t.Error(e.String())
	}
}

func TestValidateSetterDelegationFindsViolations(t *testing.T) {
	dir := t.TempDir()
	src := `package wrappers

type Entity struct{}

func (e *Entity) SetField(name string, v any) error { return nil }

type Track struct{ *Entity }

func (t Track) SetSpeed(v float64) error   { return t.SetField("Speed", v) }
func (t Track) SetCourse(v float64) error  { return t.SetField("Heading", v) }
func (t *Track) SetHeading(v float64) error { return nil }
func (t Track) SetName(v string) error {
	name := "Name"
	return t.SetField(name, v)
}
func SetStandalone() {}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "track.go"), []byte(src), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "track_test.go"), []byte("package wrappers\n\nfunc (t Track) SetX() {}\n"), 0o600))

	errs := ValidateSetterDelegation(dir)
	require.Len(t, errs, 3)

	byCode := map[string]Error{}
	for _, e := range errs {
		byCode[e.Code] = e
	}
	assert.Equal(t, "setter writes Heading instead of Course", byCode["Track.SetCourse"].Message)
	assert.Equal(t, "setter does not call SetField", byCode["Track.SetHeading"].Message)
	assert.Equal(t, "setter writes ? instead of Name", byCode["Track.SetName"].Message)
	assert.Equal(t, 10, byCode["Track.SetCourse"].Line)
}

func TestValidateSetterDelegationReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.go"), []byte("package broken\nfunc ("), 0o600))

	errs := ValidateSetterDelegation(dir)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "failed to parse")

	errs = ValidateSetterDelegation(filepath.Join(dir, "missing"))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "failed to walk directory")
}
