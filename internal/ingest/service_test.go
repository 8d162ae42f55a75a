package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/internal/common"
	"github.com/ebolowa/contract-insight/internal/entity"
	"github.com/ebolowa/contract-insight/internal/repository"
)

// fakeContracts only needs Create; the embedded interface covers the rest of
// the repository surface with panics, which no ingest path should reach.
type fakeContracts struct {
	repository.ContractRepository
	params  repository.CreateContractParams
	created int
	err     error
}

func (f *fakeContracts) Create(_ context.Context, params repository.CreateContractParams) (*entity.Contract, error) {
	f.created++
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return &entity.Contract{
		ID:       uuid.New(),
		Filename: params.Filename,
		FileExt:  params.FileExt,
		Size:     params.Size,
		Status:   constants.StatusPending,
	}, nil
}

func TestSubmitAcceptsDocx(t *testing.T) {
	repo := &fakeContracts{}
	svc := NewService(repo, nil)
	data := []byte("PK\x03\x04 not a real archive but bytes enough")

	res, err := svc.Submit(context.Background(), data, "/uploads/Contrat de travail.docx")
	require.NoError(t, err)
	require.Equal(t, constants.StatusPending, res.Contract.Status)
	require.Equal(t, "Contrat de travail.docx", repo.params.Filename, "stored name is the base name")
	require.Equal(t, "docx", repo.params.FileExt)
	require.Equal(t, len(data), repo.params.Size)

	sum := sha256.Sum256(data)
	require.Equal(t, sum[:], repo.params.ContentHash)
	require.Equal(t, hex.EncodeToString(sum[:]), res.HashHex)
}

func TestSubmitRejectsUnsupportedExtension(t *testing.T) {
	repo := &fakeContracts{}
	svc := NewService(repo, nil)

	for _, name := range []string{"notes.txt", "scan.png", "archive", "contract.docx.exe"} {
		_, err := svc.Submit(context.Background(), []byte("data"), name)
		require.ErrorIs(t, err, common.ErrUnsupportedFormat, name)
	}
	require.Zero(t, repo.created, "rejected uploads leave no record")
}

func TestSubmitRejectsEmptyPayload(t *testing.T) {
	repo := &fakeContracts{}
	svc := NewService(repo, nil)

	_, err := svc.Submit(context.Background(), nil, "contract.pdf")
	require.ErrorIs(t, err, common.ErrEmptyDocument)
	require.Zero(t, repo.created)
}

func TestSubmitPropagatesStorageError(t *testing.T) {
	repo := &fakeContracts{err: errors.New("connection refused")}
	svc := NewService(repo, nil)

	_, err := svc.Submit(context.Background(), []byte("data"), "contract.pdf")
	require.Error(t, err)
}

func TestExtOf(t *testing.T) {
	require.Equal(t, "docx", ExtOf("Contract.DOCX"))
	require.Equal(t, "pdf", ExtOf("/tmp/a.b/contract.pdf"))
	require.Equal(t, "", ExtOf("README"))
}

func TestAllowedExt(t *testing.T) {
	require.True(t, AllowedExt(".pdf"))
	require.True(t, AllowedExt("doc"))
	require.False(t, AllowedExt("txt"))
	require.False(t, AllowedExt(""))
}

func TestIsHidden(t *testing.T) {
	require.True(t, IsHidden("/uploads/.draft.docx"))
	require.False(t, IsHidden("/uploads/contract.docx"))
}
