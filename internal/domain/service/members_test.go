package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/diegoclair/adhan-bot/internal/domain"
	"github.com/diegoclair/adhan-bot/internal/domain/contract"
	"github.com/diegoclair/adhan-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_memberService_Join(t *testing.T) {
	tests := []struct {
		name      string
		buildMock func(m allMocks)
		wantAdded bool
		wantErr   error
	}{
		{
			name: "Should add a new member",
			buildMock: func(m allMocks) {
				m.mockRecipientRepo.EXPECT().GetBySlackID(gomock.Any(), "U1").Return(nil, nil)
				m.mockSlackClient.EXPECT().GetUserInfoContext(gomock.Any(), "U1").Return(slackUser("U1", "ahmed", "Ahmed Ali"), nil)
				m.mockRecipientRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *entity.Recipient) error {
					assert.Equal(t, "U1", r.SlackUserID)
					assert.Equal(t, "ahmed", r.SlackUserName)
					assert.Equal(t, "Ahmed Ali", r.DisplayName)
					assert.True(t, r.IsActive)
					r.ID = 7
					return nil
				})
			},
			wantAdded: true,
		},
		{
			name: "Should reactivate a member who left",
			buildMock: func(m allMocks) {
				m.mockRecipientRepo.EXPECT().GetBySlackID(gomock.Any(), "U1").Return(&entity.Recipient{ID: 7, SlackUserID: "U1", IsActive: false}, nil)
				m.mockSlackClient.EXPECT().GetUserInfoContext(gomock.Any(), "U1").Return(slackUser("U1", "ahmed", "Ahmed Ali"), nil)
				m.mockRecipientRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantAdded: true,
		},
		{
			name: "Should report an existing member",
			buildMock: func(m allMocks) {
				m.mockRecipientRepo.EXPECT().GetBySlackID(gomock.Any(), "U1").Return(&entity.Recipient{ID: 7, SlackUserID: "U1", IsActive: true}, nil)
				m.mockSlackClient.EXPECT().GetUserInfoContext(gomock.Any(), "U1").Return(slackUser("U1", "ahmed", "Ahmed Ali"), nil)
				m.mockRecipientRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantAdded: false,
		},
		{
			name: "Should fail when slack rejects the token",
			buildMock: func(m allMocks) {
				m.mockRecipientRepo.EXPECT().GetBySlackID(gomock.Any(), "U1").Return(nil, nil)
				m.mockSlackClient.EXPECT().GetUserInfoContext(gomock.Any(), "U1").Return(nil, slack.SlackErrorResponse{Err: "not_authed"})
			},
			wantErr: domain.ErrPermanent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			s := newMemberService(m.mockDataManager, m.mockSlackClient, afero.NewMemMapFs(), testLogger)
			recipient, added, err := s.Join(context.Background(), "U1")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAdded, added)
			assert.Equal(t, "U1", recipient.SlackUserID)
		})
	}
}

func Test_memberService_Leave(t *testing.T) {
	tests := []struct {
		name      string
		buildMock func(m allMocks)
		wantErr   error
	}{
		{
			name: "Should deactivate an active member",
			buildMock: func(m allMocks) {
				m.mockRecipientRepo.EXPECT().GetBySlackID(gomock.Any(), "U1").Return(&entity.Recipient{SlackUserID: "U1", IsActive: true}, nil)
				m.mockRecipientRepo.EXPECT().SetActive(gomock.Any(), "U1", false).Return(nil)
			},
		},
		{
			name: "Should fail for an unknown member",
			buildMock: func(m allMocks) {
				m.mockRecipientRepo.EXPECT().GetBySlackID(gomock.Any(), "U1").Return(nil, nil)
			},
			wantErr: domain.ErrMemberNotFound,
		},
		{
			name: "Should fail for a member who already left",
			buildMock: func(m allMocks) {
				m.mockRecipientRepo.EXPECT().GetBySlackID(gomock.Any(), "U1").Return(&entity.Recipient{SlackUserID: "U1", IsActive: false}, nil)
			},
			wantErr: domain.ErrMemberNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			s := newMemberService(m.mockDataManager, m.mockSlackClient, afero.NewMemMapFs(), testLogger)
			err := s.Leave(context.Background(), "U1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_memberService_Import(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/storage/members.txt", []byte("# team\nahmed=U1\n\n sara = U2 \n"), 0o644))

	m.mockDataManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(m.mockDataManager)
		})

	var imported []string
	m.mockRecipientRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *entity.Recipient) error {
		assert.True(t, r.IsActive)
		imported = append(imported, r.SlackUserName+"="+r.SlackUserID)
		return nil
	}).Times(2)

	s := newMemberService(m.mockDataManager, m.mockSlackClient, fs, testLogger)
	n, err := s.Import(context.Background(), "/storage/members.txt")

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"ahmed=U1", "sara=U2"}, imported)
}

func Test_memberService_Import_Errors(t *testing.T) {
	tests := []struct {
		name      string
		content   *string
		buildMock func(m allMocks)
	}{
		{name: "Should fail when the file is missing"},
		{name: "Should fail on a line without id", content: ptr("ahmed\n")},
		{name: "Should fail on an empty id", content: ptr("ahmed=\n")},
		{
			name:    "Should fail when saving fails",
			content: ptr("ahmed=U1\n"),
			buildMock: func(m allMocks) {
				m.mockDataManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
						return fn(m.mockDataManager)
					})
				m.mockRecipientRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			fs := afero.NewMemMapFs()
			if tt.content != nil {
				require.NoError(t, afero.WriteFile(fs, "/members.txt", []byte(*tt.content), 0o644))
			}
			if tt.buildMock != nil {
				tt.buildMock(m)
			}

			s := newMemberService(m.mockDataManager, m.mockSlackClient, fs, testLogger)
			_, err := s.Import(context.Background(), "/members.txt")

			assert.Error(t, err)
		})
	}
}

func Test_memberService_ExportTeam(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockSlackClient.EXPECT().GetUsersContext(gomock.Any()).Return([]slack.User{
		{ID: "U1", Name: "ahmed"},
		{ID: "U2", Name: "sara"},
	}, nil)

	fs := afero.NewMemMapFs()
	s := newMemberService(m.mockDataManager, m.mockSlackClient, fs, testLogger)
	n, err := s.ExportTeam(context.Background(), "/storage/members.json")

	require.NoError(t, err)
	assert.Equal(t, 2, n)

	content, err := afero.ReadFile(fs, "/storage/members.json")
	require.NoError(t, err)

	var users []slack.User
	require.NoError(t, json.Unmarshal(content, &users))
	require.Len(t, users, 2)
	assert.Equal(t, "sara", users[1].Name)
}

func ptr[T any](v T) *T {
	return &v
}
