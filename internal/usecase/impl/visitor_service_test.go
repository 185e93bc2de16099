package impl

import (
	"context"
	"testing"

	"nearbite/internal/domain/entity"
	"nearbite/internal/domain/repository"
	mockRepo "nearbite/internal/mocks/repository"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// visitorServiceFixtures holds all test dependencies for visitor service tests.
type visitorServiceFixtures struct {
	service     usecase.VisitorUsecase
	visitorRepo *mockRepo.MockVisitorRepository
}

func createTestVisitorService(t *testing.T) visitorServiceFixtures {
	visitorRepo := mockRepo.NewMockVisitorRepository(t)
	svc := NewVisitorService(visitorRepo)

	return visitorServiceFixtures{
		service:     svc,
		visitorRepo: visitorRepo,
	}
}

func TestVisitorService_RegisterVisitor_GeneratesID(t *testing.T) {
	fx := createTestVisitorService(t)

	ctx := context.Background()

	fx.visitorRepo.EXPECT().
		UpsertVisitor(ctx, mock.MatchedBy(func(visitor *entity.Visitor) bool {
			return visitor.ID != uuid.Nil && visitor.PhoneNumber == "+17345550123"
		})).
		Return(nil)

	visitor, err := fx.service.RegisterVisitor(ctx, &usecase.RegisterVisitorInput{
		PhoneNumber: "+17345550123",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, visitor.ID)
}

func TestVisitorService_RegisterVisitor_KeepsProvidedID(t *testing.T) {
	fx := createTestVisitorService(t)

	ctx := context.Background()
	visitorID := uuid.New()

	fx.visitorRepo.EXPECT().
		UpsertVisitor(ctx, mock.MatchedBy(func(visitor *entity.Visitor) bool {
			return visitor.ID == visitorID
		})).
		Return(nil)

	visitor, err := fx.service.RegisterVisitor(ctx, &usecase.RegisterVisitorInput{
		ID:    &visitorID,
		Email: "visitor@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, visitorID, visitor.ID)
}

func TestVisitorService_RegisterVisitor_NoContactDetails(t *testing.T) {
	fx := createTestVisitorService(t)

	_, err := fx.service.RegisterVisitor(context.Background(), &usecase.RegisterVisitorInput{})
	assert.Equal(t, ErrNoContactDetails, err)
}

func TestVisitorService_GetVisitor_NotFound(t *testing.T) {
	fx := createTestVisitorService(t)

	ctx := context.Background()
	visitorID := uuid.New()

	fx.visitorRepo.EXPECT().
		FindVisitorByID(ctx, visitorID).
		Return(nil, repository.ErrVisitorNotFound)

	_, err := fx.service.GetVisitor(ctx, visitorID)
	assert.Equal(t, ErrVisitorNotFound, err)
}

func TestVisitorService_DeleteVisitor(t *testing.T) {
	fx := createTestVisitorService(t)

	ctx := context.Background()
	visitorID := uuid.New()

	fx.visitorRepo.EXPECT().
		DeleteVisitor(ctx, visitorID).
		Return(nil)

	err := fx.service.DeleteVisitor(ctx, visitorID)
	require.NoError(t, err)
}

func TestVisitorService_DeleteVisitor_NotFound(t *testing.T) {
	fx := createTestVisitorService(t)

	ctx := context.Background()
	visitorID := uuid.New()

	fx.visitorRepo.EXPECT().
		DeleteVisitor(ctx, visitorID).
		Return(repository.ErrVisitorNotFound)

	err := fx.service.DeleteVisitor(ctx, visitorID)
	assert.Equal(t, ErrVisitorNotFound, err)
}
