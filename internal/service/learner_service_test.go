package service

import (
	"context"
	"errors"
	"testing"

	"ssat_prep/internal/model"
	"ssat_prep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

func Test_learnerService_CreateLearner(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	tests := []struct {
		name      string
		req       *model.CreateLearnerRequest
		setupMock func(repo *mocks.LearnerRepository)
		wantErr   error
		wantLevel string
	}{
		{
			name: "正常系: 受験レベル省略時は upper",
			req:  &model.CreateLearnerRequest{Name: " hana "},
			setupMock: func(repo *mocks.LearnerRepository) {
				repo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.MatchedBy(func(l *model.Learner) bool {
					return l.Name == "hana" && l.LearnerID != uuid.Nil
				})).Return(nil).Once()
			},
			wantLevel: model.TestLevelUpper,
		},
		{
			name: "正常系: 受験レベル指定",
			req:  &model.CreateLearnerRequest{Name: "ken", TestLevel: model.TestLevelMiddle},
			setupMock: func(repo *mocks.LearnerRepository) {
				repo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Learner")).Return(nil).Once()
			},
			wantLevel: model.TestLevelMiddle,
		},
		{
			name: "異常系: 名前が重複",
			req:  &model.CreateLearnerRequest{Name: "hana"},
			setupMock: func(repo *mocks.LearnerRepository) {
				repo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Learner")).Return(model.ErrConflict).Once()
			},
			wantErr: model.ErrConflict,
		},
		{
			name:      "異常系: 名前が空",
			req:       &model.CreateLearnerRequest{Name: "  "},
			setupMock: func(repo *mocks.LearnerRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name: "異常系: DBエラー",
			req:  &model.CreateLearnerRequest{Name: "yui"},
			setupMock: func(repo *mocks.LearnerRepository) {
				repo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Learner")).Return(errors.New("db error")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewLearnerRepository(t)
			tt.setupMock(repo)

			learner, err := NewLearnerService(db, repo).CreateLearner(ctx, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, learner)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, learner.TestLevel)
		})
	}
}

func Test_learnerService_GetLearner(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	id := uuid.New()

	repo := mocks.NewLearnerRepository(t)
	repo.On("FindByID", ctx, db, id).Return(&model.Learner{LearnerID: id, Name: "hana"}, nil).Once()
	repo.On("FindByID", ctx, db, mock.Anything).Return(nil, model.ErrNotFound).Once()
	svc := NewLearnerService(db, repo)

	got, err := svc.GetLearner(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "hana", got.Name)

	_, err = svc.GetLearner(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

// 検索系はモックとサービスを共通のセットアップでまとめる
type LearnerLookupTestSuite struct {
	suite.Suite

	db   *gorm.DB
	repo *mocks.LearnerRepository
	svc  LearnerService
}

func (s *LearnerLookupTestSuite) SetupTest() {
	s.db = setupTestDB(s.T())
	s.repo = mocks.NewLearnerRepository(s.T())
	s.svc = NewLearnerService(s.db, s.repo)
}

func TestLearnerLookup(t *testing.T) {
	suite.Run(t, new(LearnerLookupTestSuite))
}

func (s *LearnerLookupTestSuite) TestGetLearnerByName() {
	ctx := context.Background()
	id := uuid.New()
	s.repo.On("FindByName", ctx, s.db, "hana").Return(&model.Learner{LearnerID: id, Name: "hana"}, nil).Once()

	got, err := s.svc.GetLearnerByName(ctx, "  hana ")
	s.Require().NoError(err)
	s.Equal(id, got.LearnerID)
}

func (s *LearnerLookupTestSuite) TestGetLearnerByName_NotFound() {
	ctx := context.Background()
	s.repo.On("FindByName", ctx, s.db, "nobody").Return(nil, model.ErrNotFound).Once()

	_, err := s.svc.GetLearnerByName(ctx, "nobody")
	s.ErrorIs(err, model.ErrNotFound)

	var appErr *model.AppError
	s.Require().ErrorAs(err, &appErr)
	s.Equal("LEARNER_NOT_FOUND", appErr.Detail.Code)
}

func (s *LearnerLookupTestSuite) TestListLearners() {
	ctx := context.Background()
	s.repo.On("List", ctx, s.db).Return([]*model.Learner{{Name: "a"}, {Name: "b"}}, nil).Once()

	got, err := s.svc.ListLearners(ctx)
	s.Require().NoError(err)
	s.Len(got, 2)
}

func (s *LearnerLookupTestSuite) TestListLearners_DBError() {
	ctx := context.Background()
	s.repo.On("List", ctx, s.db).Return(nil, errors.New("connection reset")).Once()

	_, err := s.svc.ListLearners(ctx)
	s.ErrorIs(err, model.ErrInternalServer)
}

func (s *LearnerLookupTestSuite) TestDeleteLearner() {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name     string
		repoErr  error
		wantErr  error
		wantCode string
	}{
		{name: "正常系: 削除できる"},
		{name: "異常系: 存在しない", repoErr: model.ErrNotFound, wantErr: model.ErrNotFound, wantCode: "LEARNER_NOT_FOUND"},
		{name: "異常系: DBエラー", repoErr: errors.New("db error"), wantErr: model.ErrInternalServer, wantCode: "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.repo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), id).Return(tc.repoErr).Once()

			err := s.svc.DeleteLearner(ctx, id)
			if tc.wantErr == nil {
				s.NoError(err)
				return
			}
			s.ErrorIs(err, tc.wantErr)
			var appErr *model.AppError
			s.Require().ErrorAs(err, &appErr)
			s.Equal(tc.wantCode, appErr.Detail.Code)
		})
	}
}
