package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"disaster-chatbot-be/internal/dto"
	"disaster-chatbot-be/internal/entity"
	"disaster-chatbot-be/internal/pkg/apperrors"
	"disaster-chatbot-be/pkg/corpus"
	"disaster-chatbot-be/pkg/vectorstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memChatbotRepo is an in-memory ChatbotRepository for service tests.
type memChatbotRepo struct {
	records map[uuid.UUID]*entity.Chatbot
}

func newMemChatbotRepo() *memChatbotRepo {
	return &memChatbotRepo{records: map[uuid.UUID]*entity.Chatbot{}}
}

func (r *memChatbotRepo) Create(_ context.Context, cb *entity.Chatbot) error {
	r.records[cb.Id] = cb
	return nil
}

func (r *memChatbotRepo) Update(_ context.Context, cb *entity.Chatbot) error {
	r.records[cb.Id] = cb
	return nil
}

func (r *memChatbotRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.records, id)
	return nil
}

func (r *memChatbotRepo) FindOne(_ context.Context, id uuid.UUID) (*entity.Chatbot, error) {
	return r.records[id], nil
}

func (r *memChatbotRepo) FindAllByOwner(_ context.Context, ownerId uuid.UUID, offset, limit int) ([]*entity.Chatbot, error) {
	var out []*entity.Chatbot
	for _, cb := range r.records {
		if cb.OwnerId == ownerId {
			out = append(out, cb)
		}
	}
	return out, nil
}

func newChatbotFixture(t *testing.T) (IChatbotService, *memChatbotRepo, *vectorstore.Store) {
	t.Helper()
	repo := newMemChatbotRepo()
	store := vectorstore.NewStore(t.TempDir(), &bagProvider{keywords: []string{"nước"}})
	svc := NewChatbotService(repo, corpus.NewBuilder(1000, 200), store, nopLogger{})
	return svc, repo, store
}

func TestChatbotCreateAndShow(t *testing.T) {
	svc, _, _ := newChatbotFixture(t)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &dto.CreateChatbotRequest{
		Title: "Trợ lý lũ lụt Huế",
		Size:  "medium",
		Color: "#1e40af",
	})
	require.NoError(t, err)
	assert.Equal(t, owner, created.OwnerId)

	shown, err := svc.Show(context.Background(), owner, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Trợ lý lũ lụt Huế", shown.Title)
	assert.Nil(t, shown.TrainingMeta)
}

func TestChatbotShowEnforcesOwnership(t *testing.T) {
	svc, _, _ := newChatbotFixture(t)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &dto.CreateChatbotRequest{
		Title: "Bot", Size: "small", Color: "#000",
	})
	require.NoError(t, err)

	_, err = svc.Show(context.Background(), uuid.New(), created.Id)
	require.Error(t, err)
	var ve *apperrors.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestChatbotShowMissing(t *testing.T) {
	svc, _, _ := newChatbotFixture(t)

	_, err := svc.Show(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestChatbotUpdatePartialFields(t *testing.T) {
	svc, _, _ := newChatbotFixture(t)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &dto.CreateChatbotRequest{
		Title: "Cũ", Size: "small", Color: "#000",
	})
	require.NoError(t, err)

	newTitle := "Mới"
	updated, err := svc.Update(context.Background(), owner, &dto.UpdateChatbotRequest{
		Id:    created.Id,
		Title: &newTitle,
	})
	require.NoError(t, err)
	assert.Equal(t, "Mới", updated.Title)
	assert.Equal(t, "small", updated.Size) // untouched fields survive
	assert.NotNil(t, updated.UpdatedAt)
}

func TestChatbotTrainBuildsIndexAndMeta(t *testing.T) {
	svc, repo, store := newChatbotFixture(t)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &dto.CreateChatbotRequest{
		Title: "Bot", Size: "small", Color: "#000",
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "levels.csv")
	require.NoError(t, os.WriteFile(path,
		[]byte("station,level\nSông Hương,2.3m\nSông Bồ,1.1m\n"), 0o644))

	res, err := svc.Train(context.Background(), owner, created.Id, []dto.UploadedFile{
		{Path: path, Kind: "csv"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Training completed successfully", res.Message)

	assert.True(t, store.Exists(created.Id.String()))

	stored := repo.records[created.Id]
	require.NotNil(t, stored.TrainingMeta)
	assert.Equal(t, 1, stored.TrainingMeta.FileCount)
	assert.Equal(t, 2, stored.TrainingMeta.ChunkCount)
}

func TestChatbotTrainRequiresFiles(t *testing.T) {
	svc, _, _ := newChatbotFixture(t)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &dto.CreateChatbotRequest{
		Title: "Bot", Size: "small", Color: "#000",
	})
	require.NoError(t, err)

	_, err = svc.Train(context.Background(), owner, created.Id, nil)
	require.Error(t, err)
	var ve *apperrors.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestChatbotDeleteRemovesRecordAndIndex(t *testing.T) {
	svc, repo, store := newChatbotFixture(t)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &dto.CreateChatbotRequest{
		Title: "Bot", Size: "small", Color: "#000",
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("mực nước dâng"), 0o644))
	_, err = svc.Train(context.Background(), owner, created.Id, []dto.UploadedFile{{Path: path, Kind: "text"}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), owner, created.Id))

	assert.Nil(t, repo.records[created.Id])
	assert.False(t, store.Exists(created.Id.String()))
}
