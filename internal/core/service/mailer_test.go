package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zyzyva/mailqueue/internal/core/domain"
	"github.com/zyzyva/mailqueue/mocks"
)

type MailerServiceSuite struct {
	suite.Suite
	publisher     *mocks.MessagePublisher
	mailerService *MailerService
}

func TestMailerService(t *testing.T) {
	suite.Run(t, new(MailerServiceSuite))
}

func (suite *MailerServiceSuite) SetupTest() {
	suite.publisher = &mocks.MessagePublisher{}
	suite.mailerService = NewMailerService(suite.publisher, MessageDefaults{
		ServiceName: "myapp",
		DefaultType: "transactional",
	})
}

func (suite *MailerServiceSuite) TearDownTest() {
	suite.publisher.AssertExpectations(suite.T())
}

func (suite *MailerServiceSuite) TestSend() {
	ctx := context.Background()
	email, err := domain.NewWelcomeEmail(domain.Address{Address: "ada@example.com"}, "https://app.example.com/confirm")
	suite.Require().NoError(err)

	var published domain.OutboundMessage
	suite.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("domain.OutboundMessage")).
		RunAndReturn(func(_ context.Context, message domain.OutboundMessage) (string, error) {
			published = message
			return message.MessageID, nil
		})

	id, err := suite.mailerService.Send(ctx, email)

	suite.Require().NoError(err)
	suite.Equal(published.MessageID, id)
	suite.Equal("welcome", published.Type)
	suite.Equal("ada@example.com", published.To)
	suite.Equal("https://app.example.com/confirm", published.Link)
	suite.Equal("myapp", published.Metadata.Service)
}

func (suite *MailerServiceSuite) TestSend_InvalidEmail() {
	ctx := context.Background()
	email := domain.Email{Category: domain.Category{Kind: domain.CategoryWelcome}}

	_, err := suite.mailerService.Send(ctx, email)

	suite.EqualError(err, "welcome email missing required field: link")
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *MailerServiceSuite) TestSend_PublisherError() {
	ctx := context.Background()

	suite.publisher.EXPECT().Publish(ctx, mock.Anything).Return("", &domain.NotRoutedError{Queue: "emails"})

	_, err := suite.mailerService.Send(ctx, domain.Email{})

	suite.Require().Error(err)
	var notRouted *domain.NotRoutedError
	suite.ErrorAs(err, &notRouted)
	suite.Equal("emails", notRouted.Queue)
}
