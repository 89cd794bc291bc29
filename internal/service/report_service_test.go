package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"symptom_reporter/internal/model"
	"symptom_reporter/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReportRepo records the report handed to it and returns a scripted error.
type stubReportRepo struct {
	created      *model.Report
	symptomNames []string
	err          error
}

func (r *stubReportRepo) CreateWithSymptoms(ctx context.Context, report *model.Report, symptomNames []string) error {
	r.created = report
	r.symptomNames = symptomNames
	return r.err
}

func (r *stubReportRepo) FindWithSymptoms(ctx context.Context, from, to time.Time) ([]model.ReportWithSymptoms, error) {
	return nil, nil
}

func TestSubmit_Valid(t *testing.T) {
	repo := &stubReportRepo{}
	svc := NewReportService(repo)

	id, err := svc.Submit(context.Background(), model.SubmitReportRequest{
		Symptoms:  []string{"Fever", "Headache"},
		ZipCode:   "90210",
		SessionID: "sess_abc",
	}, "203.0.113.7")

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.NotNil(t, repo.created)
	assert.Equal(t, id, repo.created.ID)
	assert.Equal(t, "sess_abc", repo.created.SessionID)
	assert.Equal(t, "90210", repo.created.ZipCode)
	assert.Equal(t, []string{"Fever", "Headache"}, repo.symptomNames)
	assert.WithinDuration(t, time.Now(), repo.created.CreatedAt, 2*time.Second)
}

func TestSubmit_HashesCallerAddress(t *testing.T) {
	repo := &stubReportRepo{}
	svc := NewReportService(repo)

	_, err := svc.Submit(context.Background(), model.SubmitReportRequest{
		Symptoms: []string{"Fever"},
		ZipCode:  "90210",
	}, "203.0.113.7")

	require.NoError(t, err)
	assert.NotEmpty(t, repo.created.IPHash)
	assert.Len(t, repo.created.IPHash, 64)
	assert.NotContains(t, repo.created.IPHash, "203.0.113.7")
}

func TestSubmit_GeneratesSessionID(t *testing.T) {
	repo := &stubReportRepo{}
	svc := NewReportService(repo)

	_, err := svc.Submit(context.Background(), model.SubmitReportRequest{
		Symptoms: []string{"Fever"},
		ZipCode:  "90210",
	}, "203.0.113.7")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(repo.created.SessionID, "sess_"))
	assert.Greater(t, len(repo.created.SessionID), len("sess_"))
}

func TestSubmit_NoSymptoms(t *testing.T) {
	repo := &stubReportRepo{}
	svc := NewReportService(repo)

	_, err := svc.Submit(context.Background(), model.SubmitReportRequest{
		ZipCode: "90210",
	}, "203.0.113.7")

	assert.ErrorIs(t, err, ErrNoSymptoms)
	assert.Nil(t, repo.created)
}

func TestSubmit_TooManySymptoms(t *testing.T) {
	repo := &stubReportRepo{}
	svc := NewReportService(repo)

	_, err := svc.Submit(context.Background(), model.SubmitReportRequest{
		Symptoms: model.SymptomCatalog[:11],
		ZipCode:  "90210",
	}, "203.0.113.7")

	assert.ErrorIs(t, err, ErrTooManySymptoms)
	assert.Nil(t, repo.created)
}

func TestSubmit_InvalidZipCode(t *testing.T) {
	repo := &stubReportRepo{}
	svc := NewReportService(repo)

	for _, zip := range []string{"", "1234", "123456", "9021a", "90 10"} {
		_, err := svc.Submit(context.Background(), model.SubmitReportRequest{
			Symptoms: []string{"Fever"},
			ZipCode:  zip,
		}, "203.0.113.7")
		assert.ErrorIs(t, err, ErrInvalidZipCode, "zip %q", zip)
	}
	assert.Nil(t, repo.created)
}

func TestSubmit_UnknownSymptom(t *testing.T) {
	repo := &stubReportRepo{}
	svc := NewReportService(repo)

	_, err := svc.Submit(context.Background(), model.SubmitReportRequest{
		Symptoms: []string{"Fever", "Telepathy"},
		ZipCode:  "90210",
	}, "203.0.113.7")

	assert.ErrorIs(t, err, ErrUnknownSymptom)
	assert.Nil(t, repo.created)
}

func TestSubmit_DuplicateSession(t *testing.T) {
	repo := &stubReportRepo{err: repository.ErrDuplicateSession}
	svc := NewReportService(repo)

	_, err := svc.Submit(context.Background(), model.SubmitReportRequest{
		Symptoms:  []string{"Fever"},
		ZipCode:   "90210",
		SessionID: "sess_abc",
	}, "203.0.113.7")

	assert.ErrorIs(t, err, ErrDuplicateReport)
}

func TestSubmit_RepoUnknownSymptom(t *testing.T) {
	repo := &stubReportRepo{err: repository.ErrUnknownSymptom}
	svc := NewReportService(repo)

	_, err := svc.Submit(context.Background(), model.SubmitReportRequest{
		Symptoms: []string{"Fever", "Fever"},
		ZipCode:  "90210",
	}, "203.0.113.7")

	assert.ErrorIs(t, err, ErrUnknownSymptom)
}
