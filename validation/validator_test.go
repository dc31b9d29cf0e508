package validation

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/jmgilman/go/httperrors/errors"
	"github.com/stretchr/testify/require"
)

const userSchema = `{
	name:  string
	age:   int & >=0 & <=150
	email: string & =~"^[^@]+@[^@]+$"
}`

func fieldNames(t *testing.T, err error) []string {
	t.Helper()

	ve, ok := errors.Find[*errors.InputValidationError](err)
	require.True(t, ok, "expected an input validation error, got %v", err)

	var names []string
	for _, fe := range ve.Errors() {
		require.NotEmpty(t, fe.Messages, "field %s has no messages", fe.Field)
		names = append(names, fe.Field)
	}
	sort.Strings(names)
	return names
}

func TestValidateJSON_Success(t *testing.T) {
	v, err := NewValidator(userSchema)
	require.NoError(t, err)

	err = v.ValidateJSON(context.Background(), []byte(`{"name":"Alice","age":30,"email":"alice@example.com"}`))
	require.NoError(t, err)
}

func TestValidateJSON_FieldErrors(t *testing.T) {
	v, err := NewValidator(userSchema)
	require.NoError(t, err)

	err = v.ValidateJSON(context.Background(), []byte(`{"name":"Alice","age":200,"email":"nope"}`))
	require.Error(t, err)
	require.Equal(t, errors.KindInputValidation, errors.KindOf(err))
	require.Equal(t, ValidationName, errors.NameOf(err))
	require.Equal(t, []string{"age", "email"}, fieldNames(t, err))
}

func TestValidateJSON_TypeMismatch(t *testing.T) {
	v, err := NewValidator(userSchema)
	require.NoError(t, err)

	err = v.ValidateJSON(context.Background(), []byte(`{"name":"Alice","age":"thirty","email":"a@b.co"}`))
	require.Equal(t, []string{"age"}, fieldNames(t, err))
}

func TestValidateJSON_MissingField(t *testing.T) {
	v, err := NewValidator(userSchema)
	require.NoError(t, err)

	err = v.ValidateJSON(context.Background(), []byte(`{"age":30,"email":"a@b.co"}`))
	require.Equal(t, []string{"name"}, fieldNames(t, err))
}

func TestValidateJSON_MissingFieldNotConcrete(t *testing.T) {
	v, err := NewValidator(userSchema, WithOptions(Options{All: true}))
	require.NoError(t, err)

	err = v.ValidateJSON(context.Background(), []byte(`{"age":30,"email":"a@b.co"}`))
	require.NoError(t, err)
}

func TestValidateJSON_NestedPath(t *testing.T) {
	v, err := NewValidator(`{user: {profile: {age: int}}}`)
	require.NoError(t, err)

	err = v.ValidateJSON(context.Background(), []byte(`{"user":{"profile":{"age":"x"}}}`))
	require.Equal(t, []string{"user.profile.age"}, fieldNames(t, err))
}

func TestValidateJSON_Malformed(t *testing.T) {
	v, err := NewValidator(userSchema)
	require.NoError(t, err)

	err = v.ValidateJSON(context.Background(), []byte(`{"name":`))
	require.Error(t, err)
	require.Equal(t, errors.KindInputValidation, errors.KindOf(err))
	require.NotEmpty(t, fieldNames(t, err))
}

func TestValidateJSON_ContextCancelled(t *testing.T) {
	v, err := NewValidator(userSchema)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = v.ValidateJSON(ctx, []byte(`{"name":"Alice","age":30,"email":"a@b.co"}`))
	require.Error(t, err)
	require.Equal(t, errors.CodeSchemaFailed, errors.GetCode(err))
	require.ErrorIs(t, err, context.Canceled)
}

func TestValidate_Value(t *testing.T) {
	v, err := NewValidator(userSchema)
	require.NoError(t, err)

	data := v.Context().CompileString(`{name: "Bob", age: -1, email: "bob@example.com"}`)

	err = v.Validate(context.Background(), data)
	require.Equal(t, []string{"age"}, fieldNames(t, err))
}

func TestValidateYAML(t *testing.T) {
	v, err := NewValidator(userSchema)
	require.NoError(t, err)

	err = v.ValidateYAML(context.Background(), []byte("name: Alice\nage: 30\nemail: alice@example.com\n"))
	require.NoError(t, err)

	err = v.ValidateYAML(context.Background(), []byte("name: Alice\nage: 300\nemail: alice@example.com\n"))
	require.Equal(t, []string{"age"}, fieldNames(t, err))
}

const signupSchema = `
#Signup: {
	email: string & =~"^[^@]+@[^@]+$"
	plan:  *"free" | "pro"
}
`

type signup struct {
	Email string `json:"email"`
	Plan  string `json:"plan"`
}

func TestDecodeJSON_AppliesDefaults(t *testing.T) {
	v, err := NewValidator(signupSchema, WithDefinition("#Signup"))
	require.NoError(t, err)

	var got signup
	err = v.DecodeJSON(context.Background(), []byte(`{"email":"a@b.co"}`), &got)
	require.NoError(t, err)
	require.Equal(t, signup{Email: "a@b.co", Plan: "free"}, got)
}

func TestDecodeJSON_Invalid(t *testing.T) {
	v, err := NewValidator(signupSchema, WithDefinition("#Signup"))
	require.NoError(t, err)

	var got signup
	err = v.DecodeJSON(context.Background(), []byte(`{"email":"a@b.co","plan":"enterprise"}`), &got)
	require.Contains(t, fieldNames(t, err), "plan")
	require.Empty(t, got.Email)
}

func TestDecodeJSON_ClosedDefinition(t *testing.T) {
	v, err := NewValidator(signupSchema, WithDefinition("#Signup"))
	require.NoError(t, err)

	var got signup
	err = v.DecodeJSON(context.Background(), []byte(`{"email":"a@b.co","admin":true}`), &got)
	require.Error(t, err)
	require.Equal(t, errors.KindInputValidation, errors.KindOf(err))
}

func TestDecodeJSON_BadTarget(t *testing.T) {
	v, err := NewValidator(signupSchema, WithDefinition("#Signup"))
	require.NoError(t, err)

	var target int
	err = v.DecodeJSON(context.Background(), []byte(`{"email":"a@b.co"}`), &target)
	require.Error(t, err)
	require.Equal(t, errors.KindBase, errors.KindOf(err))
	require.Equal(t, errors.CodeSchemaFailed, errors.GetCode(err))
}

func TestNewValidator_InvalidSchema(t *testing.T) {
	_, err := NewValidator(`{name: string &}`)
	require.Error(t, err)
	require.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
}

func TestNewValidator_MissingDefinition(t *testing.T) {
	_, err := NewValidator(signupSchema, WithDefinition("#Order"))
	require.Error(t, err)
	require.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	require.Equal(t, "#Order", errors.MetaOf(err)["definition"])
}

func TestLoadSchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signup.cue")
	require.NoError(t, os.WriteFile(path, []byte(signupSchema), 0o600))

	v, err := LoadSchemaFile(path, WithDefinition("#Signup"))
	require.NoError(t, err)
	require.NoError(t, v.ValidateJSON(context.Background(), []byte(`{"email":"a@b.co","plan":"pro"}`)))

	_, err = LoadSchemaFile(filepath.Join(t.TempDir(), "missing.cue"))
	require.Error(t, err)
	require.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
}
