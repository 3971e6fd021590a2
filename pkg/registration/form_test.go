package registration_test

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/signupform/pkg/logger"
	"github.com/dmitrymomot/signupform/pkg/registration"
	"github.com/dmitrymomot/signupform/pkg/validator"
)

func newTestForm(opts ...registration.Option) *registration.Form {
	return registration.NewForm(append([]registration.Option{registration.WithPasswordCost(bcrypt.MinCost)}, opts...)...)
}

func fill(t *testing.T, f *registration.Form, fields registration.Fields) {
	t.Helper()
	for _, name := range registration.AllFields {
		_, err := f.Edit(context.Background(), name, fields.Get(name))
		require.NoError(t, err)
	}
}

func TestNewForm(t *testing.T) {
	t.Parallel()

	f := newTestForm()
	assert.Equal(t, registration.StateEditing, f.State())
	assert.False(t, f.Submittable())
	assert.Empty(t, f.Errors())
	assert.Empty(t, f.Fields())
	assert.Nil(t, f.Submission())
}

func TestForm_Edit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("returns live patch without format checks", func(t *testing.T) {
		t.Parallel()
		f := newTestForm()

		res, err := f.Edit(ctx, registration.Email, "not-an-email")
		require.NoError(t, err)
		assert.Equal(t, registration.Errors{registration.Email: ""}, res.Patch)
		assert.Equal(t, registration.StateEditing, res.State)
		assert.Equal(t, "", f.Errors().Get(registration.Email))

		res, err = f.Edit(ctx, registration.Email, "")
		require.NoError(t, err)
		assert.Equal(t, "Email is required", res.Patch.Get(registration.Email))
		assert.Equal(t, "Email is required", f.Errors().Get(registration.Email))
	})

	t.Run("flag follows full validation not displayed messages", func(t *testing.T) {
		t.Parallel()
		f := newTestForm()
		fill(t, f, with(registration.Email, "not-an-email"))

		assert.True(t, f.Errors().Valid(), "live patches cleared every message")
		assert.False(t, f.Submittable(), "full pass still rejects the email")

		res, err := f.Edit(ctx, registration.Email, "ada@example.com")
		require.NoError(t, err)
		assert.True(t, res.Submittable)
		assert.True(t, f.Submittable())
	})

	t.Run("stale entries survive other edits", func(t *testing.T) {
		t.Parallel()
		f := newTestForm()
		_, _ = f.Validate(ctx)
		require.Equal(t, "Aadhar No. is required", f.Errors().Get(registration.AadharNo))

		_, err := f.Edit(ctx, registration.City, "Mumbai")
		require.NoError(t, err)
		assert.Equal(t, "Aadhar No. is required", f.Errors().Get(registration.AadharNo))
		assert.Equal(t, "", f.Errors().Get(registration.City))
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()
		f := newTestForm()
		_, err := f.Edit(ctx, registration.FieldName("nickname"), "x")
		assert.ErrorIs(t, err, registration.ErrUnknownField)
		assert.Empty(t, f.Fields())
	})
}

func TestForm_Validate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newTestForm()
	fill(t, f, with(registration.AadharNo, "12345"))

	errs, ok := f.Validate(ctx)
	assert.False(t, ok)
	assert.Equal(t, registration.Errors{registration.AadharNo: registration.MsgAadharNoInvalid}, errs)
	assert.Equal(t, errs, f.Errors())

	errs[registration.City] = "mutated"
	assert.False(t, f.Errors().Has(registration.City), "returned map is a copy")
}

func TestForm_Submit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("invalid form stays editing", func(t *testing.T) {
		t.Parallel()
		f := newTestForm()
		fill(t, f, with(registration.Password, "abcdefgh"))

		sub, err := f.Submit(ctx)
		require.Error(t, err)
		assert.Nil(t, sub)
		assert.ErrorIs(t, err, registration.ErrFormInvalid)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "password", verrs[0].Field)
		assert.Equal(t, registration.MsgPasswordInvalid, verrs[0].Message)

		assert.Equal(t, registration.StateEditing, f.State())
		assert.Equal(t, registration.MsgPasswordInvalid, f.Errors().Get(registration.Password))
		assert.Nil(t, f.Submission())
	})

	t.Run("empty form surfaces the full message set", func(t *testing.T) {
		t.Parallel()
		f := newTestForm()
		_, err := f.Edit(ctx, registration.PanNo, "")
		require.NoError(t, err)
		require.Equal(t, "PanNo is required", f.Errors().Get(registration.PanNo))

		_, err = f.Submit(ctx)
		require.ErrorIs(t, err, registration.ErrFormInvalid)
		assert.Equal(t, "Pan No. is required", f.Errors().Get(registration.PanNo))
		assert.Equal(t, len(registration.AllFields), f.Errors().Count())
	})

	t.Run("valid form transitions to submitted", func(t *testing.T) {
		t.Parallel()
		at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		f := newTestForm(registration.WithClock(func() time.Time { return at }))
		fill(t, f, validFields())
		require.True(t, f.Submittable())

		sub, err := f.Submit(ctx)
		require.NoError(t, err)
		require.NotNil(t, sub)

		assert.Equal(t, registration.StateSubmitted, f.State())
		assert.Same(t, sub, f.Submission())
		assert.Equal(t, at, sub.SubmittedAt)
		assert.Empty(t, f.Errors())

		require.Len(t, sub.Entries, len(registration.AllFields))
		assert.Equal(t, registration.SummaryEntry{Field: registration.FirstName, Label: "FirstName", Value: "Ada"}, sub.Entries[0])
		assert.Equal(t, registration.PasswordMask, sub.Value(registration.Password))
		assert.Equal(t, "123456789012", sub.Value(registration.AadharNo))
		assert.True(t, sub.CheckPassword("Abcdefg1"))
		assert.False(t, sub.CheckPassword("Abcdefg2"))
	})

	t.Run("submitted is terminal", func(t *testing.T) {
		t.Parallel()
		f := newTestForm()
		fill(t, f, validFields())
		_, err := f.Submit(ctx)
		require.NoError(t, err)

		_, err = f.Submit(ctx)
		assert.ErrorIs(t, err, registration.ErrFormSubmitted)

		_, err = f.Edit(ctx, registration.City, "New York")
		assert.ErrorIs(t, err, registration.ErrFormSubmitted)
		assert.Equal(t, "Mumbai", f.Fields().Get(registration.City))
		assert.Equal(t, registration.StateSubmitted, f.State())
	})

	t.Run("long passwords are hashed", func(t *testing.T) {
		t.Parallel()
		long := "Aa1" + string(bytes.Repeat([]byte("x"), 100))
		f := newTestForm()
		fill(t, f, with(registration.Password, long))

		sub, err := f.Submit(ctx)
		require.NoError(t, err)
		assert.True(t, sub.CheckPassword(long))
	})
}

func TestForm_Snapshot(t *testing.T) {
	t.Parallel()

	f := newTestForm()
	_, err := f.Edit(context.Background(), registration.City, "")
	require.NoError(t, err)

	snap := f.Snapshot()
	assert.Equal(t, registration.StateEditing, snap.State)
	assert.False(t, snap.Submittable)
	assert.Equal(t, "City is required", snap.Errors.Get(registration.City))
	assert.Equal(t, "", snap.Fields.Get(registration.City))
}

func TestForm_LogsWithoutValues(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevelName("debug"))
	f := newTestForm(registration.WithLogger(log))

	fill(t, f, validFields())
	_, err := f.Submit(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "field edited")
	assert.Contains(t, out, "form submitted")
	assert.NotContains(t, out, "Abcdefg1")
	assert.NotContains(t, out, "123456789012")
}

func TestForm_EditResultMatchesItsOwnEdit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newTestForm()
	fill(t, f, validFields())

	// Each goroutine toggles the email between a valid and an invalid value.
	// The flag returned by an edit must describe that edit even while other
	// edits interleave.
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, want := "ada@example.com", true
			if i%2 == 1 {
				value, want = "not-an-email", false
			}
			res, err := f.Edit(ctx, registration.Email, value)
			assert.NoError(t, err)
			assert.Equal(t, want, res.Submittable, "edit to %q", value)
		}()
	}
	wg.Wait()
}

func TestForm_ConcurrentEdits(t *testing.T) {
	t.Parallel()

	f := newTestForm()
	fields := validFields()

	var wg sync.WaitGroup
	for _, name := range registration.AllFields {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = f.Edit(context.Background(), name, fields.Get(name))
		}()
	}
	wg.Wait()

	assert.True(t, f.Submittable())
	assert.Equal(t, fields, f.Fields())
}
