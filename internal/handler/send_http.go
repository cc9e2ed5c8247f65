package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/zyzyva/mailqueue/internal/core/domain"
	"github.com/zyzyva/mailqueue/internal/core/port"
)

type SendHTTPHandler struct {
	mailerService port.MailerService
	validate      *validator.Validate
}

type AddressDTO struct {
	Name    string `json:"name"`
	Address string `json:"address" validate:"required,email"`
}

type SendEmailRequest struct {
	To       []AddressDTO      `json:"to" validate:"dive"`
	From     *AddressDTO       `json:"from"`
	Subject  string            `json:"subject"`
	TextBody string            `json:"text_body"`
	HTMLBody string            `json:"html_body"`
	Headers  map[string]string `json:"headers"`
	Type     string            `json:"type"`
	Link     string            `json:"link"`
}

type SendEmailResponse struct {
	MessageID string `json:"message_id"`
}

func NewSendHTTPHandler(mailerService port.MailerService, validate *validator.Validate) *SendHTTPHandler {
	return &SendHTTPHandler{
		mailerService: mailerService,
		validate:      validate,
	}
}

func (h *SendHTTPHandler) Handle() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req SendEmailRequest

		if err := c.Bind(&req); err != nil {
			log.WithError(err).Error("Failed to bind request")
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid request payload",
			})
		}

		if err := h.validate.Struct(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": err.Error(),
			})
		}

		email, err := buildEmail(req)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{
				"error": err.Error(),
			})
		}

		id, err := h.mailerService.Send(c.Request().Context(), email)
		if err != nil {
			return sendErrorResponse(c, err)
		}

		return c.JSON(http.StatusAccepted, SendEmailResponse{MessageID: id})
	}
}

// buildEmail maps the DTO onto the domain value. The type field goes through
// the strict category check; callers that need a category this service does
// not know yet can still set the X-Email-Type header, which passes through
// unchecked.
func buildEmail(req SendEmailRequest) (domain.Email, error) {
	email := domain.Email{
		Subject:  req.Subject,
		TextBody: req.TextBody,
		HTMLBody: req.HTMLBody,
		Headers:  req.Headers,
	}

	for _, to := range req.To {
		email.To = append(email.To, domain.Address{Name: to.Name, Address: to.Address})
	}
	if req.From != nil {
		email.From = domain.Address{Name: req.From.Name, Address: req.From.Address}
	}
	if req.Link != "" {
		email = email.WithLink(req.Link)
	}
	if req.Type != "" {
		return email.WithCategory(domain.CategoryKind(req.Type))
	}

	return email, nil
}

// sendErrorResponse maps the failure kind onto a status: invalid emails are
// the caller's to fix, unrouted and rejected publishes point at the broker,
// and transport failures mean the broker could not be reached at all.
func sendErrorResponse(c echo.Context, err error) error {
	var (
		missingField *domain.MissingFieldError
		notRouted    *domain.NotRoutedError
		remote       *domain.RemoteError
		transport    *domain.TransportError
	)

	switch {
	case errors.As(err, &missingField):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	case errors.As(err, &notRouted), errors.As(err, &remote):
		log.WithError(err).Error("Broker rejected email message")
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	case errors.As(err, &transport):
		log.WithError(err).Error("Broker unreachable")
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	}

	log.WithError(err).Error("Failed to send email")
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
