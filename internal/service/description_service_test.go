package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"arlens/place-history-service/internal/db/querylog"
	"arlens/place-history-service/internal/inmemorycache"
	"arlens/place-history-service/internal/mocks"
	"arlens/place-history-service/internal/providers"
	"arlens/place-history-service/internal/service"
)

const whiteHouseAddress = "1600 Pennsylvania Ave NW, Washington, DC 20500, USA"

type DescriptionServiceTestSuite struct {
	suite.Suite
	mockGeocoder  *mocks.MockGeocodingProvider
	mockGenerator *mocks.MockGenerativeProvider
	ctx           context.Context
}

func (s *DescriptionServiceTestSuite) SetupTest() {
	s.mockGeocoder = mocks.NewMockGeocodingProvider(s.T())
	s.mockGenerator = mocks.NewMockGenerativeProvider(s.T())
	s.ctx = context.Background()
}

func (s *DescriptionServiceTestSuite) newService() service.DescriptionService {
	return service.NewDescriptionService(s.mockGeocoder, s.mockGenerator, nil, nil, time.Minute, false)
}

func (s *DescriptionServiceTestSuite) query() service.LocationQuery {
	return service.LocationQuery{Latitude: 38.8904, Longitude: -77.0023}
}

func promptMentioning(name string) interface{} {
	return mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "'"+name+"'")
	})
}

func (s *DescriptionServiceTestSuite) TestFullSuccess() {
	s.mockGeocoder.On("ReverseGeocode", mock.Anything, 38.8904, -77.0023).
		Return([]providers.Place{{FormattedAddress: whiteHouseAddress}}, nil)

	s.mockGenerator.On("GenerateContent", mock.Anything, promptMentioning(whiteHouseAddress)).
		Return(providers.Generation{
			Outcome: providers.OutcomeText,
			Text:    `{"summary": "S", "details": ["D1"]}`,
		}, nil)

	result, err := s.newService().GetDescription(s.ctx, s.query())

	s.NoError(err)
	s.Nil(result.Degraded)
	s.Equal(whiteHouseAddress, result.Location)
	s.Equal("S", result.Answer["summary"])
	s.Equal([]interface{}{"D1"}, result.Answer["details"])
}

func (s *DescriptionServiceTestSuite) TestFencedModelOutputIsNormalized() {
	s.mockGeocoder.On("ReverseGeocode", mock.Anything, 38.8904, -77.0023).
		Return([]providers.Place{{FormattedAddress: whiteHouseAddress}}, nil)

	s.mockGenerator.On("GenerateContent", mock.Anything, mock.Anything).
		Return(providers.Generation{
			Outcome: providers.OutcomeText,
			Text:    "```json\n{\"summary\":\"S\",\"details\":\"D\"}\n```",
		}, nil)

	result, err := s.newService().GetDescription(s.ctx, s.query())

	s.NoError(err)
	s.Nil(result.Degraded)
	s.Equal("S", result.Answer["summary"])
	s.Equal("D", result.Answer["details"])
}

func (s *DescriptionServiceTestSuite) TestEmptyGeocodingFallsBackToDefaultName() {
	defaultName := service.DefaultLocationName(38.8904, -77.0023)

	s.mockGeocoder.On("ReverseGeocode", mock.Anything, 38.8904, -77.0023).
		Return([]providers.Place{}, nil)

	s.mockGenerator.On("GenerateContent", mock.Anything, promptMentioning(defaultName)).
		Return(providers.Generation{
			Outcome: providers.OutcomeText,
			Text:    `{"summary": "S", "details": "D"}`,
		}, nil)

	result, err := s.newService().GetDescription(s.ctx, s.query())

	s.NoError(err)
	s.Equal(defaultName, result.Location)
}

func (s *DescriptionServiceTestSuite) TestGeocodingAPIErrorDegradesGracefully() {
	degradedName := service.DefaultLocationName(38.8904, -77.0023) + " (Maps API Error)"

	s.mockGeocoder.On("ReverseGeocode", mock.Anything, 38.8904, -77.0023).
		Return(nil, &providers.GeocodingAPIError{Status: "OVER_QUERY_LIMIT", Message: "quota exceeded"})

	s.mockGenerator.On("GenerateContent", mock.Anything, promptMentioning(degradedName)).
		Return(providers.Generation{
			Outcome: providers.OutcomeText,
			Text:    `{"summary": "S", "details": "D"}`,
		}, nil)

	result, err := s.newService().GetDescription(s.ctx, s.query())

	s.NoError(err)
	s.Equal(degradedName, result.Location)
}

func (s *DescriptionServiceTestSuite) TestGeocodingTransportErrorDegradesGracefully() {
	degradedName := service.DefaultLocationName(38.8904, -77.0023) + " (Geocoding Error)"

	s.mockGeocoder.On("ReverseGeocode", mock.Anything, 38.8904, -77.0023).
		Return(nil, errors.New("connection refused"))

	s.mockGenerator.On("GenerateContent", mock.Anything, promptMentioning(degradedName)).
		Return(providers.Generation{
			Outcome: providers.OutcomeText,
			Text:    `{"summary": "S", "details": "D"}`,
		}, nil)

	result, err := s.newService().GetDescription(s.ctx, s.query())

	s.NoError(err)
	s.Equal(degradedName, result.Location)
}

func (s *DescriptionServiceTestSuite) TestCacheHitSkipsGeocoder() {
	mockCache := mocks.NewMockCache(s.T())
	mockCache.On("Get", "38.890400,-77.002300").
		Return(&inmemorycache.PlaceCacheData{DisplayName: whiteHouseAddress}, true, nil)

	s.mockGenerator.On("GenerateContent", mock.Anything, promptMentioning(whiteHouseAddress)).
		Return(providers.Generation{
			Outcome: providers.OutcomeText,
			Text:    `{"summary": "S", "details": "D"}`,
		}, nil)

	svc := service.NewDescriptionService(s.mockGeocoder, s.mockGenerator, mockCache, nil, time.Minute, false)

	result, err := svc.GetDescription(s.ctx, s.query())

	s.NoError(err)
	s.Equal(whiteHouseAddress, result.Location)
	s.mockGeocoder.AssertNotCalled(s.T(), "ReverseGeocode")
}

func (s *DescriptionServiceTestSuite) TestCacheMissStoresResolvedName() {
	mockCache := mocks.NewMockCache(s.T())
	mockCache.On("Get", "38.890400,-77.002300").Return(nil, false, nil)
	mockCache.On("Set", "38.890400,-77.002300",
		&inmemorycache.PlaceCacheData{DisplayName: whiteHouseAddress}, time.Minute).
		Return(nil)

	s.mockGeocoder.On("ReverseGeocode", mock.Anything, 38.8904, -77.0023).
		Return([]providers.Place{{FormattedAddress: whiteHouseAddress}}, nil)

	s.mockGenerator.On("GenerateContent", mock.Anything, mock.Anything).
		Return(providers.Generation{
			Outcome: providers.OutcomeText,
			Text:    `{"summary": "S", "details": "D"}`,
		}, nil)

	svc := service.NewDescriptionService(s.mockGeocoder, s.mockGenerator, mockCache, nil, time.Minute, false)

	_, err := svc.GetDescription(s.ctx, s.query())

	s.NoError(err)
}

func (s *DescriptionServiceTestSuite) TestModelCallFailure() {
	s.mockGeocoder.On("ReverseGeocode", mock.Anything, 38.8904, -77.0023).
		Return([]providers.Place{{FormattedAddress: whiteHouseAddress}}, nil)

	s.mockGenerator.On("GenerateContent", mock.Anything, mock.Anything).
		Return(providers.Generation{}, errors.New("upstream timeout"))

	_, err := s.newService().GetDescription(s.ctx, s.query())

	s.Error(err)

	var callErr *service.ModelCallError
	s.ErrorAs(err, &callErr)
	s.Contains(callErr.Error(), "upstream timeout")
}

func (s *DescriptionServiceTestSuite) TestModelBlocked() {
	s.mockGeocoder.On("ReverseGeocode", mock.Anything, 38.8904, -77.0023).
		Return([]providers.Place{{FormattedAddress: whiteHouseAddress}}, nil)

	s.mockGenerator.On("GenerateContent", mock.Anything, mock.Anything).
		Return(providers.Generation{Outcome: providers.OutcomeBlocked, Detail: "prompt blocked: SAFETY"}, nil)

	_, err := s.newService().GetDescription(s.ctx, s.query())

	var blockedErr *service.ModelBlockedError
	s.ErrorAs(err, &blockedErr)
	s.Contains(blockedErr.Detail, "SAFETY")
}

func (s *DescriptionServiceTestSuite) TestModelResponseMalformed() {
	s.mockGeocoder.On("ReverseGeocode", mock.Anything, 38.8904, -77.0023).
		Return([]providers.Place{{FormattedAddress: whiteHouseAddress}}, nil)

	s.mockGenerator.On("GenerateContent", mock.Anything, mock.Anything).
		Return(providers.Generation{Outcome: providers.OutcomeMalformed, Detail: "response contains no candidates"}, nil)

	_, err := s.newService().GetDescription(s.ctx, s.query())

	var formatErr *service.ModelFormatError
	s.ErrorAs(err, &formatErr)
}

func (s *DescriptionServiceTestSuite) TestUnparseableModelOutputIsDegradedSuccess() {
	s.mockGeocoder.On("ReverseGeocode", mock.Anything, 38.8904, -77.0023).
		Return([]providers.Place{{FormattedAddress: whiteHouseAddress}}, nil)

	s.mockGenerator.On("GenerateContent", mock.Anything, mock.Anything).
		Return(providers.Generation{Outcome: providers.OutcomeText, Text: "I cannot answer."}, nil)

	result, err := s.newService().GetDescription(s.ctx, s.query())

	s.NoError(err)
	s.Nil(result.Answer)
	s.Require().NotNil(result.Degraded)
	s.Equal("I cannot answer.", result.Degraded.RawResponse)
	s.NotEmpty(result.Degraded.Warning)
	s.NotEmpty(result.Degraded.ErrorDetails)
	s.Equal(whiteHouseAddress, result.Location)
}

func (s *DescriptionServiceTestSuite) TestMissingDetailsKeyIsDegradedSuccess() {
	s.mockGeocoder.On("ReverseGeocode", mock.Anything, 38.8904, -77.0023).
		Return([]providers.Place{{FormattedAddress: whiteHouseAddress}}, nil)

	s.mockGenerator.On("GenerateContent", mock.Anything, mock.Anything).
		Return(providers.Generation{Outcome: providers.OutcomeText, Text: `{"summary": "S"}`}, nil)

	result, err := s.newService().GetDescription(s.ctx, s.query())

	s.NoError(err)
	s.Nil(result.Answer)
	s.Require().NotNil(result.Degraded)
	s.Contains(result.Degraded.ErrorDetails, "details")
}

func (s *DescriptionServiceTestSuite) TestStrictModeEscalatesUnparseableOutput() {
	s.mockGeocoder.On("ReverseGeocode", mock.Anything, 38.8904, -77.0023).
		Return([]providers.Place{{FormattedAddress: whiteHouseAddress}}, nil)

	s.mockGenerator.On("GenerateContent", mock.Anything, mock.Anything).
		Return(providers.Generation{Outcome: providers.OutcomeText, Text: "I cannot answer."}, nil)

	svc := service.NewDescriptionService(s.mockGeocoder, s.mockGenerator, nil, nil, time.Minute, true)

	_, err := svc.GetDescription(s.ctx, s.query())

	var outputErr *service.ModelOutputError
	s.ErrorAs(err, &outputErr)
	s.Equal("I cannot answer.", outputErr.Raw)
	s.Equal(whiteHouseAddress, outputErr.Location)
}

func (s *DescriptionServiceTestSuite) TestAuditLogRecordsOutcome() {
	mockRepo := mocks.NewMockRepository(s.T())
	mockRepo.On("LogLocationQuery", 38.8904, -77.0023, whiteHouseAddress, querylog.OutcomeOK).
		Return(nil)

	s.mockGeocoder.On("ReverseGeocode", mock.Anything, 38.8904, -77.0023).
		Return([]providers.Place{{FormattedAddress: whiteHouseAddress}}, nil)

	s.mockGenerator.On("GenerateContent", mock.Anything, mock.Anything).
		Return(providers.Generation{
			Outcome: providers.OutcomeText,
			Text:    `{"summary": "S", "details": "D"}`,
		}, nil)

	svc := service.NewDescriptionService(s.mockGeocoder, s.mockGenerator, nil, mockRepo, time.Minute, false)

	_, err := svc.GetDescription(s.ctx, s.query())

	s.NoError(err)
}

func (s *DescriptionServiceTestSuite) TestAuditLogFailureDoesNotAffectResponse() {
	mockRepo := mocks.NewMockRepository(s.T())
	mockRepo.On("LogLocationQuery", 38.8904, -77.0023, whiteHouseAddress, querylog.OutcomeOK).
		Return(errors.New("database unavailable"))

	s.mockGeocoder.On("ReverseGeocode", mock.Anything, 38.8904, -77.0023).
		Return([]providers.Place{{FormattedAddress: whiteHouseAddress}}, nil)

	s.mockGenerator.On("GenerateContent", mock.Anything, mock.Anything).
		Return(providers.Generation{
			Outcome: providers.OutcomeText,
			Text:    `{"summary": "S", "details": "D"}`,
		}, nil)

	svc := service.NewDescriptionService(s.mockGeocoder, s.mockGenerator, nil, mockRepo, time.Minute, false)

	result, err := svc.GetDescription(s.ctx, s.query())

	s.NoError(err)
	s.Equal("S", result.Answer["summary"])
}

func TestDescriptionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DescriptionServiceTestSuite))
}
