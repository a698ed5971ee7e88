package document

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforcehq/hrm-backend-go/internal/domain/document"
	"github.com/workforcehq/hrm-backend-go/internal/domain/identity"
)

type fakeTx struct{ pgx.Tx }

func (fakeTx) Commit(context.Context) error   { return nil }
func (fakeTx) Rollback(context.Context) error { return nil }

type fakeDB struct{}

func (fakeDB) BeginTx(context.Context) (pgx.Tx, error) { return fakeTx{}, nil }

type mockStorage struct {
	deleted []string
}

func (m *mockStorage) Upload(_ context.Context, _ io.Reader, path string, _ string) (string, error) {
	return path, nil
}

func (m *mockStorage) Download(context.Context, string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("")), nil
}

func (m *mockStorage) Delete(_ context.Context, path string) error {
	m.deleted = append(m.deleted, path)
	return nil
}

func (m *mockStorage) URL(path string) string { return "https://files.local/" + path }

func (m *mockStorage) Exists(context.Context, string) (bool, error) { return true, nil }

type mockDocumentRepo struct {
	docs map[string]document.Document
}

func (m *mockDocumentRepo) Create(_ context.Context, d document.Document) (document.Document, error) {
	d.ID = fmt.Sprintf("doc-%d", len(m.docs)+1)
	m.docs[d.ID] = d
	return d, nil
}

func (m *mockDocumentRepo) GetByID(_ context.Context, id string) (document.Document, error) {
	d, ok := m.docs[id]
	if !ok {
		return document.Document{}, document.ErrDocumentNotFound
	}
	return d, nil
}

func (m *mockDocumentRepo) List(context.Context) ([]document.Document, error) {
	var out []document.Document
	for _, d := range m.docs {
		out = append(out, d)
	}
	return out, nil
}

func (m *mockDocumentRepo) ListByEmployee(_ context.Context, employeeID string) ([]document.Document, error) {
	var out []document.Document
	for _, d := range m.docs {
		if d.EmployeeID == employeeID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockDocumentRepo) ListPublic(context.Context) ([]document.Document, error) {
	var out []document.Document
	for _, d := range m.docs {
		if d.IsPublic {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockDocumentRepo) Search(_ context.Context, filter document.SearchFilter) ([]document.Document, error) {
	var out []document.Document
	for _, d := range m.docs {
		if filter.PublicOnly && !d.IsPublic {
			if filter.EmployeeID == nil || *filter.EmployeeID != d.EmployeeID {
				continue
			}
		}
		out = append(out, d)
	}
	return out, nil
}

func (m *mockDocumentRepo) Update(_ context.Context, d document.Document) error {
	if _, ok := m.docs[d.ID]; !ok {
		return document.ErrDocumentNotFound
	}
	m.docs[d.ID] = d
	return nil
}

func (m *mockDocumentRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.docs[id]; !ok {
		return document.ErrDocumentNotFound
	}
	delete(m.docs, id)
	return nil
}

func newTestService() (*Service, *mockDocumentRepo, *mockStorage) {
	repo := &mockDocumentRepo{docs: make(map[string]document.Document)}
	store := &mockStorage{}
	return NewService(fakeDB{}, store, repo), repo, store
}

func employeeContext(employeeID string) context.Context {
	return identity.WithCurrentUser(context.Background(), identity.CurrentUser{
		UserID:     "user-1",
		Username:   "jdoe",
		EmployeeID: &employeeID,
	})
}

func adminContext() context.Context {
	return identity.WithCurrentUser(context.Background(), identity.CurrentUser{
		UserID:   "admin-1",
		Username: "admin",
		IsAdmin:  true,
	})
}

func seedDocument(repo *mockDocumentRepo, employeeID string, isPublic bool) document.Document {
	d, _ := repo.Create(context.Background(), document.Document{
		EmployeeID: employeeID,
		Name:       "contract.pdf",
		Title:      "Employment contract",
		FilePath:   "documents/" + employeeID + "/contract.pdf",
		FileURL:    "https://files.local/documents/" + employeeID + "/contract.pdf",
		IsPublic:   isPublic,
		Status:     document.StatusActive,
	})
	return d
}

func TestDocumentService_Get_Owner(t *testing.T) {
	svc, repo, _ := newTestService()
	seeded := seedDocument(repo, "emp-1", false)

	got, err := svc.Get(employeeContext("emp-1"), seeded.ID)

	require.NoError(t, err)
	assert.Equal(t, seeded.ID, got.ID)
}

func TestDocumentService_Get_PublicVisibleToAnyone(t *testing.T) {
	svc, repo, _ := newTestService()
	seeded := seedDocument(repo, "emp-1", true)

	got, err := svc.Get(employeeContext("emp-2"), seeded.ID)

	require.NoError(t, err)
	assert.Equal(t, seeded.ID, got.ID)
}

func TestDocumentService_Get_PrivateNotOwner(t *testing.T) {
	svc, repo, _ := newTestService()
	seeded := seedDocument(repo, "emp-1", false)

	_, err := svc.Get(employeeContext("emp-2"), seeded.ID)
	assert.ErrorIs(t, err, identity.ErrNotResourceOwner)
}

func TestDocumentService_Update_NotOwner(t *testing.T) {
	svc, repo, _ := newTestService()
	seeded := seedDocument(repo, "emp-1", true)

	_, err := svc.Update(employeeContext("emp-2"), seeded.ID, document.UpdateDocumentRequest{
		Title: "Renamed",
	})
	assert.ErrorIs(t, err, identity.ErrNotResourceOwner)
}

func TestDocumentService_Delete_NotOwner(t *testing.T) {
	svc, repo, store := newTestService()
	seeded := seedDocument(repo, "emp-1", false)

	err := svc.Delete(employeeContext("emp-2"), seeded.ID)

	assert.ErrorIs(t, err, identity.ErrNotResourceOwner)
	assert.Empty(t, store.deleted)
}

func TestDocumentService_Delete_AdminRemovesFile(t *testing.T) {
	svc, repo, store := newTestService()
	seeded := seedDocument(repo, "emp-1", false)

	err := svc.Delete(adminContext(), seeded.ID)

	require.NoError(t, err)
	assert.Equal(t, []string{seeded.FilePath}, store.deleted)
	_, err = repo.GetByID(context.Background(), seeded.ID)
	assert.ErrorIs(t, err, document.ErrDocumentNotFound)
}
