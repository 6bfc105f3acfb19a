package formstore_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"Backend-Medical-Intake/src/models"
	"Backend-Medical-Intake/src/services/availability"
	"Backend-Medical-Intake/src/services/formstore"
	"Backend-Medical-Intake/src/services/ledger"
	"Backend-Medical-Intake/src/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	owner = "user-1"
	other = "user-2"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store     *formstore.Store
	forms     *testutil.MemoryCollection[models.Form]
	responses *testutil.MemoryCollection[models.Response]
	ledger    *ledger.Ledger
	storage   *testutil.BrokenStorage
}

func clock() time.Time { return fixedNow }

// newFixture builds a store whose probe runs against the in-memory forms
// collection. Pass remote=false to make that collection fail every call.
func newFixture(remote bool) *fixture {
	fx := &fixture{
		forms:     testutil.NewMemoryCollection[models.Form](),
		responses: testutil.NewMemoryCollection[models.Response](),
		storage:   testutil.NewBrokenStorage(),
	}
	if !remote {
		fx.forms.Fail(testutil.ErrNotProvisioned)
		fx.responses.Fail(testutil.ErrNotProvisioned)
	}
	fx.ledger = ledger.New(fx.storage).WithClock(clock)
	fx.store = formstore.New(availability.NewProbe(fx.forms), fx.forms, fx.responses, fx.ledger).WithClock(clock)
	return fx
}

// withProbe returns a second store over the same collections and ledger.
func (fx *fixture) withProbe(p availability.Checker) *formstore.Store {
	return formstore.New(p, fx.forms, fx.responses, fx.ledger).WithClock(clock)
}

func intakeForm() models.Form {
	return models.Form{
		Title:       "New Patient",
		Description: "First visit",
		OwnerID:     owner,
		Fields: models.Fields{
			{ID: "field_1", Type: models.FieldText, Label: "Full Name", Required: true, Placeholder: "Jane Doe"},
			{ID: "field_2", Type: models.FieldRadio, Label: "Insured?", Options: []string{"Yes", "No"}},
		},
	}
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()

	for _, remote := range []bool{true, false} {
		name := "Local"
		if remote {
			name = "Remote"
		}
		t.Run(name, func(t *testing.T) {
			fx := newFixture(remote)

			saved, err := fx.store.Save(ctx, intakeForm())
			require.NoError(t, err)
			require.NotEmpty(t, saved.ID)
			assert.Equal(t, models.FormDraft, saved.Status)
			assert.True(t, saved.CreatedAt.Equal(fixedNow))
			assert.True(t, saved.UpdatedAt.Equal(fixedNow))

			loaded, err := fx.store.Load(ctx, owner, saved.ID)
			require.NoError(t, err)
			assert.Equal(t, saved.Title, loaded.Title)
			assert.Equal(t, saved.Description, loaded.Description)
			assert.Equal(t, saved.Fields, loaded.Fields)
			assert.Equal(t, saved.Status, loaded.Status)
			assert.True(t, loaded.UpdatedAt.Equal(fixedNow))

			if remote {
				assert.Equal(t, 1, fx.forms.Len())
				assert.Empty(t, fx.ledger.ListForms(ctx))
			} else {
				assert.Len(t, fx.ledger.ListForms(ctx), 1)
			}
		})
	}
}

func TestLocalIDs(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(false)
	pattern := regexp.MustCompile(`^form_\d+$`)

	first, err := fx.store.Save(ctx, intakeForm())
	require.NoError(t, err)
	second, err := fx.store.Save(ctx, intakeForm())
	require.NoError(t, err)

	assert.Regexp(t, pattern, first.ID)
	assert.Regexp(t, pattern, second.ID)
	assert.NotEqual(t, first.ID, second.ID, "same clock tick must not reuse an id")
}

func TestSaveUpdatesExisting(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(false)

	saved, err := fx.store.Save(ctx, intakeForm())
	require.NoError(t, err)
	created := saved.CreatedAt

	later := fixedNow.Add(time.Hour)
	fx.store.WithClock(func() time.Time { return later })
	saved.Title = "Renamed"
	updated, err := fx.store.Save(ctx, *saved)
	require.NoError(t, err)

	assert.Equal(t, saved.ID, updated.ID)
	assert.True(t, updated.CreatedAt.Equal(created))
	assert.True(t, updated.UpdatedAt.Equal(later))
	assert.Len(t, fx.ledger.ListForms(ctx), 1)
}

func TestSavePreparesFields(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(false)

	form := intakeForm()
	form.Fields = models.Fields{
		{Type: models.FieldEmail, Label: "Email", Options: []string{"stray"}},
		{ID: "field_2", Type: models.FieldSelect, Label: "Visit", Placeholder: "pick", Options: []string{"A", "B"}},
	}
	saved, err := fx.store.Save(ctx, form)
	require.NoError(t, err)

	require.Len(t, saved.Fields, 2)
	assert.Regexp(t, `^field-`, saved.Fields[0].ID)
	assert.Nil(t, saved.Fields[0].Options)
	assert.Empty(t, saved.Fields[1].Placeholder)
	assert.Equal(t, []string{"A", "B"}, saved.Fields[1].Options)
}

func TestSaveLocalFailure(t *testing.T) {
	fx := newFixture(false)
	fx.storage.FailWrites = true

	_, err := fx.store.Save(context.Background(), intakeForm())
	var storageErr *ledger.StorageError
	require.ErrorAs(t, err, &storageErr)
}

func TestRemoteFieldsEncodings(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(true)

	saved, err := fx.store.Save(ctx, intakeForm())
	require.NoError(t, err)
	_, isString := fx.forms.Raw(saved.ID)["fields"].(string)
	assert.True(t, isString, "fields should reach the database as a string")

	fx.forms.InsertRaw(bson.M{
		"_id":     "legacy",
		"title":   "Legacy",
		"ownerId": owner,
		"status":  "published",
		"fields":  bson.A{bson.M{"id": "field_1", "type": "date", "label": "DOB", "required": true}},
	})
	legacy, err := fx.store.Load(ctx, owner, "legacy")
	require.NoError(t, err)
	require.Len(t, legacy.Fields, 1)
	assert.Equal(t, models.FieldDate, legacy.Fields[0].Type)

	fx.forms.InsertRaw(bson.M{"_id": "broken", "title": "Broken", "ownerId": owner, "fields": "{oops"})
	broken, err := fx.store.Load(ctx, owner, "broken")
	require.NoError(t, err)
	assert.NotNil(t, broken.Fields)
	assert.Empty(t, broken.Fields)
	assert.Equal(t, models.FormDraft, broken.Status)
}

func TestOwnerIsolation(t *testing.T) {
	ctx := context.Background()

	for _, remote := range []bool{true, false} {
		fx := newFixture(remote)
		saved, err := fx.store.Save(ctx, intakeForm())
		require.NoError(t, err)

		_, err = fx.store.Load(ctx, other, saved.ID)
		assert.ErrorIs(t, err, formstore.ErrFormNotFound)

		forms, err := fx.store.ListByOwner(ctx, other, 10)
		require.NoError(t, err)
		for _, f := range forms {
			assert.Equal(t, other, f.OwnerID)
			assert.NotEqual(t, saved.ID, f.ID)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	ctx := context.Background()
	for _, remote := range []bool{true, false} {
		_, err := newFixture(remote).store.Load(ctx, owner, "form_404")
		assert.ErrorIs(t, err, formstore.ErrFormNotFound)
	}
}

func TestListByOwnerLocal(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(false)

	forms, err := fx.store.ListByOwner(ctx, owner, 10)
	require.NoError(t, err)
	require.Len(t, forms, 3)

	// most recently updated first
	assert.Equal(t, ledger.SampleDentalFormID, forms[0].ID)
	assert.Equal(t, ledger.SampleGeneralFormID, forms[1].ID)
	assert.Equal(t, ledger.SampleMentalFormID, forms[2].ID)

	limited, err := fx.store.ListByOwner(ctx, owner, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestListByOwnerRemote(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(true)

	for i := 0; i < 12; i++ {
		at := fixedNow.Add(time.Duration(i) * time.Minute)
		fx.store.WithClock(func() time.Time { return at })
		_, err := fx.store.Save(ctx, intakeForm())
		require.NoError(t, err)
	}
	foreign := intakeForm()
	foreign.OwnerID = other
	_, err := fx.store.Save(ctx, foreign)
	require.NoError(t, err)

	forms, err := fx.store.ListByOwner(ctx, owner, 0)
	require.NoError(t, err)
	require.Len(t, forms, formstore.DefaultListLimit)
	for i := 1; i < len(forms); i++ {
		assert.False(t, forms[i].UpdatedAt.After(forms[i-1].UpdatedAt))
	}
	for _, f := range forms {
		assert.Equal(t, owner, f.OwnerID)
	}
	assert.Empty(t, fx.ledger.ListForms(ctx), "remote path never seeds")
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Idempotent", func(t *testing.T) {
		for _, remote := range []bool{true, false} {
			fx := newFixture(remote)
			assert.NoError(t, fx.store.Delete(ctx, "form_missing"))
			assert.NoError(t, fx.store.Delete(ctx, "form_missing"))
		}
	})

	t.Run("SampleFormLifecycle", func(t *testing.T) {
		fx := newFixture(false)

		forms, err := fx.store.ListByOwner(ctx, owner, 10)
		require.NoError(t, err)
		require.Len(t, forms, 3)

		require.NoError(t, fx.store.Delete(ctx, ledger.SampleDentalFormID))

		forms, err = fx.store.ListByOwner(ctx, owner, 10)
		require.NoError(t, err)
		require.Len(t, forms, 2)
		for _, f := range forms {
			assert.NotEqual(t, "Dental Patient Intake", f.Title)
		}
	})
}

func TestOfflineFormReachesDatabase(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(true)
	offline := fx.withProbe(testutil.StaticAvailability(false))

	saved, err := offline.Save(ctx, intakeForm())
	require.NoError(t, err)
	assert.Equal(t, 0, fx.forms.Len())

	// database back: the local copy is still found, and saving upserts it
	loaded, err := fx.store.Load(ctx, owner, saved.ID)
	require.NoError(t, err)
	loaded.Title = "Synced"
	_, err = fx.store.Save(ctx, *loaded)
	require.NoError(t, err)
	assert.Equal(t, 1, fx.forms.Len())

	require.NoError(t, fx.store.Delete(ctx, saved.ID))
	assert.Equal(t, 0, fx.forms.Len())
	_, err = fx.store.Load(ctx, owner, saved.ID)
	assert.ErrorIs(t, err, formstore.ErrFormNotFound)
}

func TestRemoteFailureAfterProbe(t *testing.T) {
	ctx := context.Background()
	fx := newFixture(false)
	// probe says yes but every collection call fails
	store := fx.withProbe(testutil.StaticAvailability(true))

	forms, err := store.ListByOwner(ctx, owner, 10)
	require.NoError(t, err)
	assert.Len(t, forms, 3)

	saved, err := store.Save(ctx, intakeForm())
	require.NoError(t, err)
	assert.Regexp(t, `^form_\d+$`, saved.ID)

	loaded, err := store.Load(ctx, owner, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.Title, loaded.Title)
	assert.Len(t, fx.ledger.ListForms(ctx), 4)

	require.NoError(t, store.Delete(ctx, saved.ID))
	assert.Len(t, fx.ledger.ListForms(ctx), 3)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newFixture(false).store.ListByOwner(ctx, owner, 10)
	assert.ErrorIs(t, err, context.Canceled)
}
