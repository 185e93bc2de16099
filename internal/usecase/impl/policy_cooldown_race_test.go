package impl

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"nearbite/config"
	"nearbite/internal/domain/entity"
	"nearbite/internal/domain/repository"
	"nearbite/internal/domain/service"
	"nearbite/internal/infra/persistence/memory"
	mockRepo "nearbite/internal/mocks/repository"
	mockSvc "nearbite/internal/mocks/service"
	"nearbite/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// createRaceTestPolicyService wires the engine against the real in-memory
// cooldown store so claims contend like they would in production.
func createRaceTestPolicyService(t *testing.T, dispatched *atomic.Int64) (usecase.PolicyUsecase, *entity.Location, *entity.Visitor) {
	location := testLocation(entity.LocationStatusActive)
	visitor := testVisitor()

	automations := []*entity.Automation{
		{LocationID: location.ID, Channel: entity.ChannelSMS, Enabled: true, CooldownMinutes: 60, TemplateBody: "hi"},
	}

	locationRepo := mockRepo.NewMockLocationRepository(t)
	geofenceRepo := mockRepo.NewMockGeofenceRepository(t)
	automationRepo := mockRepo.NewMockAutomationRepository(t)
	visitorRepo := mockRepo.NewMockVisitorRepository(t)
	eventRepo := mockRepo.NewMockEventRepository(t)
	dispatcher := mockSvc.NewMockDeliveryDispatcher(t)
	renderer := mockSvc.NewMockTemplateRenderer(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	visitorRepo.EXPECT().
		FindVisitorByID(mock.Anything, visitor.ID).
		Return(visitor, nil)
	geofenceRepo.EXPECT().
		FindCandidatesNear(mock.Anything, testFenceLat, testFenceLon).
		Return([]*repository.GeofenceCandidate{
			{Geofence: testGeofence(location.ID), Location: location},
		}, nil)
	automationRepo.EXPECT().
		FindAutomationsByLocation(mock.Anything, location.ID).
		Return(automations, nil)
	eventRepo.EXPECT().
		AppendEvent(mock.Anything, mock.Anything).
		Return(nil)
	renderer.EXPECT().
		Render(mock.Anything, mock.Anything).
		Return("rendered").
		Maybe()
	dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, req *service.SendRequest) (*service.SendResult, error) {
			dispatched.Add(1)

			return &service.SendResult{}, nil
		}).
		Maybe()

	svc, err := NewPolicyService(
		locationRepo, geofenceRepo, automationRepo, visitorRepo,
		eventRepo, memory.NewCooldownStore(), dispatcher, renderer, publisher,
		&config.Config{},
	)
	require.NoError(t, err)

	return svc, location, visitor
}

func TestPolicyService_ConcurrentEvaluationsSendAtMostOnce(t *testing.T) {
	var dispatched atomic.Int64
	svc, _, visitor := createRaceTestPolicyService(t, &dispatched)

	now := time.Now()
	const pings = 16

	var wg sync.WaitGroup
	for range pings {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := svc.EvaluatePosition(context.Background(), insideUpdate(visitor.ID), now)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), dispatched.Load())
}

func TestPolicyService_RandomizedTimestampsHonorCooldown(t *testing.T) {
	var dispatched atomic.Int64
	svc, location, visitor := createRaceTestPolicyService(t, &dispatched)

	cooldown := 60 * time.Minute
	rng := rand.New(rand.NewSource(41))
	base := time.Date(2026, time.March, 3, 8, 0, 0, 0, time.UTC)

	timestamps := make([]time.Time, 0, 120)
	for range 120 {
		offset := time.Duration(rng.Int63n(int64(12 * time.Hour)))
		timestamps = append(timestamps, base.Add(offset))
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i].Before(timestamps[j]) })

	var sentAt []time.Time
	for _, now := range timestamps {
		evaluations, err := svc.EvaluatePosition(context.Background(), insideUpdate(visitor.ID), now)
		require.NoError(t, err)
		require.Len(t, evaluations, 1)
		assert.Equal(t, location.ID, evaluations[0].LocationID)

		if evaluations[0].SentCount() > 0 {
			sentAt = append(sentAt, now)
		}
	}

	require.NotEmpty(t, sentAt)
	assert.Equal(t, int64(len(sentAt)), dispatched.Load())
	for i := 1; i < len(sentAt); i++ {
		gap := sentAt[i].Sub(sentAt[i-1])
		assert.GreaterOrEqual(t, gap, cooldown, "sends %d and %d are only %s apart", i-1, i, gap)
	}
}
