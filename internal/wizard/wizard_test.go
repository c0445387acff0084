package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeSubmitter struct {
	calls int
	form  *Form
	err   error
}

func (f *fakeSubmitter) Submit(ctx context.Context, form *Form) error {
	f.calls++
	f.form = form
	return f.err
}

func fillGeneral(w *Wizard) {
	w.SetGeneral("Modern Loft", "Open floor plan downtown loft.", "apartment", "for-sale", 850000, 2, 2, 1100)
}

func fillAddress(w *Wizard) {
	w.SetAddress("456 City Ave", "Los Angeles", "CA", "90015")
}

func completedWizard(t *testing.T, sub Submitter) *Wizard {
	t.Helper()
	w := New(sub)
	fillGeneral(w)
	require.NoError(t, w.Next())
	fillAddress(w)
	require.NoError(t, w.Next())
	w.AddImage("front.jpg", "image/jpeg", []byte{0xFF, 0xD8})
	require.NoError(t, w.Next())
	return w
}

func TestWizardStartsAtGeneral(t *testing.T) {
	w := New(&fakeSubmitter{})
	require.Equal(t, StepGeneral, w.Step())
}

func TestNextBlocksOnInvalidStep(t *testing.T) {
	w := New(&fakeSubmitter{})

	// Empty general step does not advance.
	require.Error(t, w.Next())
	require.Equal(t, StepGeneral, w.Step())

	fillGeneral(w)
	require.NoError(t, w.Next())
	require.Equal(t, StepAddress, w.Step())

	// Address step validates only its own fields.
	require.Error(t, w.Next())
	require.Equal(t, StepAddress, w.Step())
}

func TestNextValidatesOnlyCurrentStep(t *testing.T) {
	w := New(&fakeSubmitter{})
	fillGeneral(w)

	// Address fields are still empty; the general step passes anyway.
	require.NoError(t, w.Next())
	require.Equal(t, StepAddress, w.Step())
}

func TestBackIsUnconditionalAndKeepsData(t *testing.T) {
	w := New(&fakeSubmitter{})
	fillGeneral(w)
	require.NoError(t, w.Next())

	w.Back()
	require.Equal(t, StepGeneral, w.Step())
	require.Equal(t, "Modern Loft", w.Form().Title)

	// Back at the first step stays put.
	w.Back()
	require.Equal(t, StepGeneral, w.Step())
}

func TestSubmitBeforeConfirmation(t *testing.T) {
	sub := &fakeSubmitter{}
	w := New(sub)
	fillGeneral(w)

	require.ErrorIs(t, w.Submit(context.Background()), ErrIncomplete)
	require.Zero(t, sub.calls)
}

func TestSubmitRejectsZeroImages(t *testing.T) {
	sub := &fakeSubmitter{}
	w := New(sub)
	fillGeneral(w)
	require.NoError(t, w.Next())
	fillAddress(w)
	require.NoError(t, w.Next())
	require.NoError(t, w.Next()) // gallery may be skipped; submit enforces images
	w.AcceptTerms(true)

	require.ErrorIs(t, w.Submit(context.Background()), ErrNoImages)
	require.Zero(t, sub.calls)
	require.Equal(t, StepConfirmation, w.Step())

	// Fixing the draft allows a retry without starting over.
	w.Back()
	w.AddImage("front.jpg", "image/jpeg", []byte{0xFF, 0xD8})
	require.NoError(t, w.Next())
	require.NoError(t, w.Submit(context.Background()))
	require.Equal(t, 1, sub.calls)
}

func TestSubmitRequiresTerms(t *testing.T) {
	sub := &fakeSubmitter{}
	w := completedWizard(t, sub)

	require.ErrorIs(t, w.Submit(context.Background()), ErrTermsNotAccepted)
	require.Zero(t, sub.calls)

	w.AcceptTerms(true)
	require.NoError(t, w.Submit(context.Background()))
	require.Equal(t, 1, sub.calls)
}

func TestSubmitHandsFullDraftToSubmitter(t *testing.T) {
	sub := &fakeSubmitter{}
	w := completedWizard(t, sub)
	w.SetAmenities([]string{"Gym", "Rooftop Deck"})
	w.AcceptTerms(true)

	require.NoError(t, w.Submit(context.Background()))
	require.NotNil(t, sub.form)
	require.Equal(t, "Modern Loft", sub.form.Title)
	require.Equal(t, "456 City Ave", sub.form.Address)
	require.Len(t, sub.form.Images, 1)
	require.Equal(t, []string{"Gym", "Rooftop Deck"}, sub.form.Amenities)
}

func TestSubmitterFailureLeavesWizardIntact(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("listing submission rejected")}
	w := completedWizard(t, sub)
	w.AcceptTerms(true)

	require.Error(t, w.Submit(context.Background()))
	require.Equal(t, StepConfirmation, w.Step())

	sub.err = nil
	require.NoError(t, w.Submit(context.Background()))
}

func TestRemoveImage(t *testing.T) {
	w := New(&fakeSubmitter{})
	w.AddImage("a.jpg", "image/jpeg", []byte{1})
	w.AddImage("b.jpg", "image/jpeg", []byte{2})

	w.RemoveImage(0)
	require.Len(t, w.Form().Images, 1)
	require.Equal(t, "b.jpg", w.Form().Images[0].Name)

	// Out of range indexes are ignored.
	w.RemoveImage(5)
	w.RemoveImage(-1)
	require.Len(t, w.Form().Images, 1)
}
