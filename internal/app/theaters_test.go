package app

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/cinebook/cinema-booking-api/api"
	"github.com/cinebook/cinema-booking-api/internal/domain"
	"github.com/cinebook/cinema-booking-api/internal/mocks"
)

type TheatersTestSuite struct {
	suite.Suite
	app         *Application
	theaterRepo *mocks.MockTheaterRepo
	hallRepo    *mocks.MockHallRepo
	seatRepo    *mocks.MockSeatRepo
}

func (s *TheatersTestSuite) SetupTest() {
	s.theaterRepo = new(mocks.MockTheaterRepo)
	s.hallRepo = new(mocks.MockHallRepo)
	s.seatRepo = new(mocks.MockSeatRepo)

	s.app = newTestApplication(func(a *Application) {
		a.theaterRepo = s.theaterRepo
		a.hallRepo = s.hallRepo
		a.seatRepo = s.seatRepo
	})
}

func TestTheatersSuite(t *testing.T) {
	suite.Run(t, new(TheatersTestSuite))
}

func (s *TheatersTestSuite) TestCreateTheater() {
	tests := []struct {
		name           string
		body           any
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:       "should fail validation when name is missing",
			body:       api.CreateTheaterRequest{},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "should conflict on duplicate name",
			body: api.CreateTheaterRequest{Name: "Grand Rex"},
			setupMocks: func() {
				s.theaterRepo.On("Create", mock.Anything, mock.Anything).
					Return(domain.ErrTheaterAlreadyExists)
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: domain.ErrTheaterAlreadyExists.Error(),
		},
		{
			name: "should create the theater",
			body: api.CreateTheaterRequest{Name: "Grand Rex"},
			setupMocks: func() {
				s.theaterRepo.On("Create", mock.Anything, mock.MatchedBy(func(t *domain.Theater) bool {
					return t.Name == "Grand Rex"
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.Theater).ID = 1
				}).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.theaterRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/theaters", tt.body)

			s.app.CreateTheater(w, r)

			s.Equal(tt.wantStatus, w.Code)
			checkErrorMessage(s.T(), w, tt.wantErrMessage)
		})
	}
}

func (s *TheatersTestSuite) TestCreateHall() {
	tests := []struct {
		name          string
		body          any
		setupMocks    func()
		wantStatus    int
		wantSeatCount int
	}{
		{
			name:       "should fail validation when rows exceeds the alphabet",
			body:       api.CreateHallRequest{Name: "Hall 1", TheaterID: 1, Rows: ptr(27)},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "should conflict when the theater does not exist",
			body: api.CreateHallRequest{Name: "Hall 1", TheaterID: 99},
			setupMocks: func() {
				s.hallRepo.On("Create", mock.Anything, mock.Anything, DefaultHallRows, DefaultHallSeatsPerRow).
					Return(domain.ErrInvalidReference)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "should seed the default grid when dimensions are omitted",
			body: api.CreateHallRequest{Name: "Hall 1", TheaterID: 1},
			setupMocks: func() {
				s.hallRepo.On("Create", mock.Anything, mock.MatchedBy(func(h *domain.Hall) bool {
					return h.Name == "Hall 1" && h.TheaterID == 1
				}), DefaultHallRows, DefaultHallSeatsPerRow).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.Hall).ID = 2
				}).Return(nil)
			},
			wantStatus:    http.StatusCreated,
			wantSeatCount: 30,
		},
		{
			name: "should honor explicit dimensions",
			body: api.CreateHallRequest{Name: "Hall 2", TheaterID: 1, Rows: ptr(3), SeatsPerRow: ptr(4)},
			setupMocks: func() {
				s.hallRepo.On("Create", mock.Anything, mock.Anything, 3, 4).
					Run(func(args mock.Arguments) {
						args.Get(1).(*domain.Hall).ID = 3
					}).Return(nil)
			},
			wantStatus:    http.StatusCreated,
			wantSeatCount: 12,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.hallRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/halls", tt.body)

			s.app.CreateHall(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				resp := decodeResponse[api.HallResponse](s.T(), w)
				s.Equal(tt.wantSeatCount, resp.SeatCount)
			}
		})
	}
}

func (s *TheatersTestSuite) TestListHallSeats() {
	tests := []struct {
		name       string
		hallID     string
		setupMocks func()
		wantStatus int
		wantLabels []string
	}{
		{
			name:       "should fail when hall ID is invalid",
			hallID:     "abc",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "should return not found for a hall without seats",
			hallID: "99",
			setupMocks: func() {
				s.seatRepo.On("GetByHall", mock.Anything, 99).Return([]domain.Seat{}, nil)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "should list seats in row order",
			hallID: "2",
			setupMocks: func() {
				s.seatRepo.On("GetByHall", mock.Anything, 2).Return([]domain.Seat{
					{ID: 1, HallID: 2, Row: "A", Number: 1},
					{ID: 2, HallID: 2, Row: "A", Number: 2},
					{ID: 3, HallID: 2, Row: "B", Number: 1},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantLabels: []string{"A1", "A2", "B1"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.seatRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodGet, "/halls/"+tt.hallID+"/seats", nil)
			r = withURLParams(r, map[string]string{"hallID": tt.hallID})

			s.app.ListHallSeats(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				resp := decodeResponse[[]api.SeatResponse](s.T(), w)

				labels := make([]string, len(resp))
				for i, seat := range resp {
					labels[i] = seat.Label
				}
				s.Equal(tt.wantLabels, labels)
			}
		})
	}
}
