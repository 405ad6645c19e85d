package app

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/cinebook/cinema-booking-api/api"
	"github.com/cinebook/cinema-booking-api/internal/domain"
	"github.com/cinebook/cinema-booking-api/internal/mocks"
)

type MoviesTestSuite struct {
	suite.Suite
	app       *Application
	movieRepo *mocks.MockMovieRepo
}

func (s *MoviesTestSuite) SetupTest() {
	s.movieRepo = new(mocks.MockMovieRepo)

	s.app = newTestApplication(func(a *Application) {
		a.movieRepo = s.movieRepo
	})
}

func TestMoviesSuite(t *testing.T) {
	suite.Run(t, new(MoviesTestSuite))
}

func (s *MoviesTestSuite) TestCreateMovie() {
	tests := []struct {
		name           string
		body           any
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "should fail validation when title is missing",
			body:       api.CreateMovieRequest{Price: 12.5},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "should fail validation when price is negative",
			body:       api.CreateMovieRequest{Title: "Heat", Price: -1},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "should conflict on duplicate title",
			body: api.CreateMovieRequest{Title: "Heat", Price: 12.5},
			setupMocks: func() {
				s.movieRepo.On("Create", mock.Anything, mock.Anything).
					Return(domain.ErrMovieAlreadyExists)
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: domain.ErrMovieAlreadyExists.Error(),
		},
		{
			name: "should create the movie",
			body: api.CreateMovieRequest{Title: "Heat", Price: 12.5},
			setupMocks: func() {
				s.movieRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.Movie) bool {
					return m.Title == "Heat" && m.Price.Equal(decimal.NewFromFloat(12.5))
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.Movie).ID = 3
				}).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.movieRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/movies", tt.body)

			s.app.CreateMovie(w, r)

			s.Equal(tt.wantStatus, w.Code)
			checkErrorMessage(s.T(), w, tt.wantErrMessage)

			if tt.wantStatus == http.StatusCreated {
				resp := decodeResponse[api.MovieResponse](s.T(), w)
				s.Equal(3, resp.Id)
				s.Equal("Heat", resp.Title)
				s.True(resp.Price.Equal(decimal.NewFromFloat(12.5)))
			}
		})
	}
}

func (s *MoviesTestSuite) TestListMovies() {
	s.movieRepo.On("GetAll", mock.Anything).Return([]domain.Movie{
		{ID: 1, Title: "Heat", Price: decimal.NewFromFloat(12.5)},
		{ID: 2, Title: "Ronin", Price: decimal.NewFromFloat(10)},
	}, nil)

	w, r := executeRequest(s.T(), http.MethodGet, "/movies", nil)

	s.app.ListMovies(w, r)

	s.Equal(http.StatusOK, w.Code)

	resp := decodeResponse[[]api.MovieResponse](s.T(), w)
	s.Len(resp, 2)
	s.Equal("Heat", resp[0].Title)
	s.Equal("Ronin", resp[1].Title)
}

func (s *MoviesTestSuite) TestDeleteMovie() {
	tests := []struct {
		name       string
		movieID    string
		setupMocks func()
		wantStatus int
	}{
		{
			name:       "should fail when movie ID is invalid",
			movieID:    "abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:    "should return not found for unknown movie",
			movieID: "99",
			setupMocks: func() {
				s.movieRepo.On("Delete", mock.Anything, 99).Return(domain.ErrRecordNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:    "should delete the movie",
			movieID: "3",
			setupMocks: func() {
				s.movieRepo.On("Delete", mock.Anything, 3).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.movieRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodDelete, "/movies/"+tt.movieID, nil)
			r = withURLParams(r, map[string]string{"movieID": tt.movieID})

			s.app.DeleteMovie(w, r)

			s.Equal(tt.wantStatus, w.Code)
		})
	}
}
