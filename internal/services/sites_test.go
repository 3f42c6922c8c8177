package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/updown/internal/models"
	"github.com/sbilibin2017/updown/internal/repositories"
	"github.com/sbilibin2017/updown/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type siteMocks struct {
	reader    *services.MockSiteReader
	writer    *services.MockSiteWriter
	statuses  *services.MockStatusReader
	scheduler *services.MockScheduler
	events    *services.MockEventPublisher
}

func newSiteService(t *testing.T) (*services.SiteService, *siteMocks) {
	ctrl := gomock.NewController(t)
	m := &siteMocks{
		reader:    services.NewMockSiteReader(ctrl),
		writer:    services.NewMockSiteWriter(ctrl),
		statuses:  services.NewMockStatusReader(ctrl),
		scheduler: services.NewMockScheduler(ctrl),
		events:    services.NewMockEventPublisher(ctrl),
	}
	return services.NewSiteService(m.reader, m.writer, m.statuses, m.scheduler, m.events), m
}

func TestValidateSiteURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "https://example.com", want: "https://example.com"},
		{raw: "http://example.com:8080/health?x=1", want: "http://example.com:8080/health?x=1"},
		{raw: "  https://example.com/  ", want: "https://example.com/"},
		{raw: "", wantErr: true},
		{raw: "example.com", wantErr: true},
		{raw: "mailto:a@example.com", wantErr: true},
		{raw: "ftp://example.com", wantErr: true},
		{raw: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := services.ValidateSiteURL(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, services.ErrInvalidURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSiteService_AddSite(t *testing.T) {
	userID := uuid.New()

	t.Run("schedules and announces the new site", func(t *testing.T) {
		svc, m := newSiteService(t)
		name := "blog"

		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *models.SiteDB) error {
				assert.Equal(t, userID, s.UserID)
				assert.Equal(t, "https://example.com", s.URL)
				return nil
			})
		m.scheduler.EXPECT().Schedule(gomock.Any()).
			Do(func(s models.SiteDB) { assert.Equal(t, "https://example.com", s.URL) })
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, e models.Event) {
				assert.Equal(t, models.EventSiteAdded, e.Type)
				assert.Equal(t, userID, e.UserID)
				require.NotNil(t, e.Site)
				assert.Equal(t, "blog", *e.Site.Name)
			})

		site, err := svc.AddSite(context.Background(), userID, "https://example.com", &name)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, site.SiteID)
	})

	t.Run("duplicate url", func(t *testing.T) {
		svc, m := newSiteService(t)
		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).Return(repositories.ErrConflict)

		site, err := svc.AddSite(context.Background(), userID, "https://example.com", nil)
		assert.ErrorIs(t, err, services.ErrDuplicateURL)
		assert.Nil(t, site)
	})

	t.Run("invalid url", func(t *testing.T) {
		svc, _ := newSiteService(t)

		_, err := svc.AddSite(context.Background(), userID, "nope", nil)
		assert.ErrorIs(t, err, services.ErrInvalidURL)
	})

	t.Run("blank name is dropped", func(t *testing.T) {
		svc, m := newSiteService(t)
		blank := "   "

		m.writer.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *models.SiteDB) error {
				assert.Nil(t, s.Name)
				return nil
			})
		m.scheduler.EXPECT().Schedule(gomock.Any())
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any())

		_, err := svc.AddSite(context.Background(), userID, "https://example.com", &blank)
		require.NoError(t, err)
	})
}

func TestSiteService_RemoveSite(t *testing.T) {
	userID, siteID := uuid.New(), uuid.New()

	t.Run("owner removes", func(t *testing.T) {
		svc, m := newSiteService(t)

		gomock.InOrder(
			m.writer.EXPECT().Delete(gomock.Any(), siteID, userID).Return(nil),
			m.scheduler.EXPECT().Stop(siteID),
			m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).
				Do(func(_ context.Context, e models.Event) {
					assert.Equal(t, models.EventSiteRemoved, e.Type)
					assert.Equal(t, siteID, e.SiteID)
				}),
		)

		assert.NoError(t, svc.RemoveSite(context.Background(), userID, siteID))
	})

	t.Run("not owner or missing", func(t *testing.T) {
		svc, m := newSiteService(t)
		m.writer.EXPECT().Delete(gomock.Any(), siteID, userID).Return(repositories.ErrNotFound)

		assert.ErrorIs(t, svc.RemoveSite(context.Background(), userID, siteID), services.ErrNotOwner)
	})

	t.Run("store failure keeps probing", func(t *testing.T) {
		svc, m := newSiteService(t)
		m.writer.EXPECT().Delete(gomock.Any(), siteID, userID).Return(errors.New("db down"))

		err := svc.RemoveSite(context.Background(), userID, siteID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrNotOwner)
	})
}

func TestSiteService_GetSite(t *testing.T) {
	userID, siteID := uuid.New(), uuid.New()

	t.Run("owned", func(t *testing.T) {
		svc, m := newSiteService(t)
		site := &models.SiteDB{SiteID: siteID, UserID: userID}
		obs := []models.StatusObservation{{SiteID: siteID, StatusCode: 200}}

		m.reader.EXPECT().GetByID(gomock.Any(), siteID, userID).Return(site, nil)
		m.statuses.EXPECT().ListBySiteID(gomock.Any(), siteID).Return(obs, nil)

		gotSite, gotObs, err := svc.GetSite(context.Background(), userID, siteID)
		require.NoError(t, err)
		assert.Equal(t, site, gotSite)
		assert.Equal(t, obs, gotObs)
	})

	t.Run("someone else's", func(t *testing.T) {
		svc, m := newSiteService(t)
		m.reader.EXPECT().GetByID(gomock.Any(), siteID, userID).Return(nil, repositories.ErrNotFound)

		_, _, err := svc.GetSite(context.Background(), userID, siteID)
		assert.ErrorIs(t, err, services.ErrNotOwner)
	})
}

func TestSiteService_Snapshot(t *testing.T) {
	svc, m := newSiteService(t)
	userID := uuid.New()
	probed := models.SiteDB{SiteID: uuid.New(), UserID: userID, URL: "https://a.example"}
	fresh := models.SiteDB{SiteID: uuid.New(), UserID: userID, URL: "https://b.example"}
	now := time.Now()

	m.reader.EXPECT().ListByUserID(gomock.Any(), userID).Return([]models.SiteDB{probed, fresh}, nil)
	m.statuses.EXPECT().CurrentByUserID(gomock.Any(), userID).Return(map[uuid.UUID]models.StatusObservation{
		probed.SiteID: {SiteID: probed.SiteID, StatusCode: 503, CreatedAt: now, UpdatedAt: now},
	}, nil)

	snapshot, err := svc.Snapshot(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, snapshot, 2)
	assert.Equal(t, probed, snapshot[0].Site)
	require.NotNil(t, snapshot[0].Status)
	assert.Equal(t, 503, snapshot[0].Status.StatusCode)
	assert.Equal(t, fresh, snapshot[1].Site)
	assert.Nil(t, snapshot[1].Status)
}

func TestSiteService_Lists(t *testing.T) {
	svc, m := newSiteService(t)
	userID := uuid.New()
	all := []models.SiteDB{{SiteID: uuid.New()}, {SiteID: uuid.New()}}

	m.reader.EXPECT().ListByUserID(gomock.Any(), userID).Return(all[:1], nil)
	m.reader.EXPECT().ListAll(gomock.Any()).Return(all, nil)

	mine, err := svc.ListSites(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	every, err := svc.ListAllSites(context.Background())
	require.NoError(t, err)
	assert.Len(t, every, 2)
}
