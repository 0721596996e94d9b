package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"ai-assistant-be/internal/dto"
	"ai-assistant-be/internal/entity"
	"ai-assistant-be/internal/model"
	"ai-assistant-be/internal/pkg/logger"
	"ai-assistant-be/internal/repository/contract"
	"ai-assistant-be/internal/repository/specification"
	"ai-assistant-be/internal/repository/unitofwork"
	"ai-assistant-be/pkg/database"
	"ai-assistant-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	err    error
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() {}

func newSQLiteFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.NewSQLiteDB(dsn, "silent")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AiMessage{}))
	t.Cleanup(func() { _ = database.Close(db) })
	return unitofwork.NewRepositoryFactory(db)
}

func countMessages(t *testing.T, factory unitofwork.RepositoryFactory) int64 {
	t.Helper()
	ctx := context.Background()
	count, err := factory.NewUnitOfWork(ctx).AiMessageRepository().Count(ctx)
	require.NoError(t, err)
	return count
}

func messageRequest(role string) *dto.AiMessageRequest {
	return &dto.AiMessageRequest{
		SessionId: uuid.New(),
		TenantId:  "tenant-1",
		UserId:    "user-1",
		Role:      role,
		Content:   "hello",
	}
}

func TestAiMessageCreatePersistsAndPublishes(t *testing.T) {
	factory := newSQLiteFactory(t)
	publisher := &recordingPublisher{}
	svc := NewAiMessageService(factory, publisher, logger.NewNopLogger())

	req := messageRequest(entity.AiMessageRoleUser)
	res := svc.Create(context.Background(), req)

	require.False(t, res.IsInvalid, res.Message.Error)
	assert.Empty(t, res.Message.Error)
	require.NotNil(t, res.AiMessageItem)
	assert.NotEqual(t, uuid.Nil, res.MessageId)
	assert.False(t, res.CreatedAt.IsZero())
	assert.Equal(t, req.SessionId, res.SessionId)
	assert.Equal(t, "hello", res.Content)
	assert.Equal(t, map[string]interface{}{}, res.Meta)
	assert.Equal(t, int64(1), countMessages(t, factory))

	require.Len(t, publisher.events, 1)
	assert.Equal(t, events.TypeAiMessageCreated, publisher.events[0].EventType())
	assert.Equal(t, res.MessageId.String(), publisher.events[0].Payload()["message_id"])
}

func TestAiMessageCreateIssuesDistinctIds(t *testing.T) {
	factory := newSQLiteFactory(t)
	svc := NewAiMessageService(factory, nil, logger.NewNopLogger())

	first := svc.Create(context.Background(), messageRequest(entity.AiMessageRoleUser))
	second := svc.Create(context.Background(), messageRequest(entity.AiMessageRoleAssistant))

	require.False(t, first.IsInvalid)
	require.False(t, second.IsInvalid)
	assert.NotEqual(t, first.MessageId, second.MessageId)
	assert.Equal(t, int64(2), countMessages(t, factory))
}

func TestAiMessageCreateRejectsMissingContent(t *testing.T) {
	factory := newSQLiteFactory(t)
	publisher := &recordingPublisher{}
	svc := NewAiMessageService(factory, publisher, logger.NewNopLogger())

	req := messageRequest(entity.AiMessageRoleUser)
	req.Content = ""
	res := svc.Create(context.Background(), req)

	assert.True(t, res.IsInvalid)
	assert.Equal(t, "content is absent", res.Message.Error)
	assert.Nil(t, res.AiMessageItem)
	assert.Zero(t, countMessages(t, factory))
	assert.Empty(t, publisher.events)
}

func TestAiMessageCreateNilRequest(t *testing.T) {
	svc := NewAiMessageService(newSQLiteFactory(t), nil, logger.NewNopLogger())

	res := svc.Create(context.Background(), nil)

	assert.True(t, res.IsInvalid)
	assert.Equal(t, "request is absent", res.Message.Error)
}

func TestAiMessageCreateUnknownRoleIsStorageError(t *testing.T) {
	factory := newSQLiteFactory(t)
	publisher := &recordingPublisher{}
	svc := NewAiMessageService(factory, publisher, logger.NewNopLogger())

	res := svc.Create(context.Background(), messageRequest("wizard"))

	assert.True(t, res.IsInvalid)
	assert.Equal(t, "message could not be stored: role must be one of system, user, assistant, tool", res.Message.Error)
	assert.Zero(t, countMessages(t, factory))
	assert.Empty(t, publisher.events)
}

func TestAiMessageCreatePublishFailureIsNotSurfaced(t *testing.T) {
	factory := newSQLiteFactory(t)
	svc := NewAiMessageService(factory, &recordingPublisher{err: errors.New("bus down")}, logger.NewNopLogger())

	res := svc.Create(context.Background(), messageRequest(entity.AiMessageRoleUser))

	assert.False(t, res.IsInvalid)
	assert.Equal(t, int64(1), countMessages(t, factory))
}

type failingUnitOfWork struct {
	unitofwork.UnitOfWork
	beginErr error
}

func (u *failingUnitOfWork) Begin(context.Context) error { return u.beginErr }

type failingFactory struct {
	beginErr error
}

func (f *failingFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return &failingUnitOfWork{beginErr: f.beginErr}
}

func TestAiMessageCreateStoreUnavailable(t *testing.T) {
	svc := NewAiMessageService(&failingFactory{beginErr: errors.New("dial tcp: refused")}, nil, logger.NewNopLogger())

	res := svc.Create(context.Background(), messageRequest(entity.AiMessageRoleUser))

	assert.True(t, res.IsInvalid)
	assert.Equal(t, "message could not be stored: store unavailable", res.Message.Error)
}

type panickingRepository struct {
	contract.AiMessageRepository
}

func (panickingRepository) Create(context.Context, *entity.AiMessage) error {
	panic("driver exploded")
}

type panickingUnitOfWork struct {
	unitofwork.UnitOfWork
	rolledBack bool
}

func (u *panickingUnitOfWork) Begin(context.Context) error { return nil }
func (u *panickingUnitOfWork) Commit() error               { return nil }
func (u *panickingUnitOfWork) Rollback() error             { u.rolledBack = true; return nil }
func (u *panickingUnitOfWork) AiMessageRepository() contract.AiMessageRepository {
	return panickingRepository{}
}

type singleUnitFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *singleUnitFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return f.uow }

func TestAiMessageCreatePanicRollsBack(t *testing.T) {
	uow := &panickingUnitOfWork{}
	svc := NewAiMessageService(&singleUnitFactory{uow: uow}, nil, logger.NewNopLogger())

	var res *dto.AiMessageResponse
	assert.NotPanics(t, func() {
		res = svc.Create(context.Background(), messageRequest(entity.AiMessageRoleUser))
	})

	assert.True(t, res.IsInvalid)
	assert.Equal(t, "internal failure", res.Message.Error)
	assert.True(t, uow.rolledBack)
}

func TestAiMessageMockIsIdempotent(t *testing.T) {
	factory := newSQLiteFactory(t)
	svc := NewAiMessageService(factory, nil, logger.NewNopLogger())

	first := svc.Mock(&dto.AiMessageRequest{Role: "anything"})
	second := svc.Mock(&dto.AiMessageRequest{Role: "anything"})

	assert.Equal(t, first, second)
	assert.False(t, first.IsInvalid)
	assert.Empty(t, first.Message.Error)
	assert.Zero(t, countMessages(t, factory))
}

func TestAiMessageGetById(t *testing.T) {
	factory := newSQLiteFactory(t)
	svc := NewAiMessageService(factory, nil, logger.NewNopLogger())
	created := svc.Create(context.Background(), messageRequest(entity.AiMessageRoleTool))
	require.False(t, created.IsInvalid)

	found := svc.GetById(context.Background(), created.MessageId)
	require.False(t, found.IsInvalid)
	assert.Equal(t, created.MessageId, found.MessageId)
	assert.Equal(t, entity.AiMessageRoleTool, found.Role)

	missing := svc.GetById(context.Background(), uuid.New())
	assert.True(t, missing.IsInvalid)
	assert.Equal(t, "message not found", missing.Message.Error)
	assert.Nil(t, missing.AiMessageItem)
}

func TestAiMessageGetBySession(t *testing.T) {
	factory := newSQLiteFactory(t)
	svc := NewAiMessageService(factory, nil, logger.NewNopLogger())
	ctx := context.Background()
	session := uuid.New()

	for _, content := range []string{"one", "two", "three"} {
		req := messageRequest(entity.AiMessageRoleUser)
		req.SessionId = session
		req.Content = content
		require.False(t, svc.Create(ctx, req).IsInvalid)
	}
	require.False(t, svc.Create(ctx, messageRequest(entity.AiMessageRoleUser)).IsInvalid)

	all := svc.GetBySession(ctx, session, 0, 0)
	require.False(t, all.IsInvalid)
	assert.Equal(t, int64(3), all.Total)
	assert.Len(t, all.Items, 3)

	page := svc.GetBySession(ctx, session, 2, 2)
	require.False(t, page.IsInvalid)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Items, 1)

	bad := svc.GetBySession(ctx, session, -1, 0)
	assert.True(t, bad.IsInvalid)
	assert.Equal(t, "limit and offset must not be negative", bad.Message.Error)
	assert.NotNil(t, bad.Items)
}

func TestTransactionalStoreRollsBackOnFailure(t *testing.T) {
	factory := newSQLiteFactory(t)
	store := &transactionalMessageStore{uowFactory: factory}
	ctx := context.Background()

	msg := entity.NewAiMessage()
	msg.SessionId = uuid.New()
	msg.TenantId = "t"
	msg.UserId = "u"
	msg.Role = "wizard"
	msg.Content = "x"

	assert.Error(t, store.Create(ctx, msg))

	found, err := factory.NewUnitOfWork(ctx).AiMessageRepository().FindAll(ctx, specification.BySessionID{SessionID: msg.SessionId})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestAiMessageReadsWithCancelledContext(t *testing.T) {
	svc := NewAiMessageService(newSQLiteFactory(t), nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	byId := svc.GetById(ctx, uuid.New())
	assert.True(t, byId.IsInvalid)
	assert.Equal(t, "message could not be read: store request cancelled", byId.Message.Error)

	bySession := svc.GetBySession(ctx, uuid.New(), 0, 0)
	assert.True(t, bySession.IsInvalid)
	assert.Equal(t, "message could not be read: store request cancelled", bySession.Message.Error)
	assert.Empty(t, bySession.Items)
}
