package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/entity"
)

type NewsletterOutput struct {
	LeadCount  int    `json:"leads_count"`
	Recipients int    `json:"recipients"`
	Msg        string `json:"msg"`
}

// NewsletterUseCase builds the daily digest: every available lead created in
// the last 24 hours, mailed to the whole whitelist. Triggered over HTTP by an
// external scheduler.
type NewsletterUseCase struct {
	LeadRepo     entity.LeadRepositoryInterface
	UserRepo     entity.AuthorizedUserRepositoryInterface
	EmailService EmailService
	Log          zerolog.Logger
}

func NewNewsletterUseCase(
	leadRepo entity.LeadRepositoryInterface,
	userRepo entity.AuthorizedUserRepositoryInterface,
	emailService EmailService,
	log zerolog.Logger,
) *NewsletterUseCase {
	return &NewsletterUseCase{
		LeadRepo:     leadRepo,
		UserRepo:     userRepo,
		EmailService: emailService,
		Log:          log.With().Str("usecase", "newsletter").Logger(),
	}
}

func (uc *NewsletterUseCase) Execute(ctx context.Context) (*NewsletterOutput, error) {
	since := time.Now().Add(-24 * time.Hour)

	leads, err := uc.LeadRepo.FindRecentAvailable(ctx, since)
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	if len(leads) == 0 {
		return &NewsletterOutput{Msg: "No new leads to send."}, nil
	}

	users, err := uc.UserRepo.FindAll(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	titles := make([]string, 0, len(leads))
	for _, lead := range leads {
		titles = append(titles, lead.Title)
	}

	sent := 0
	for _, user := range users {
		if uc.EmailService == nil {
			break
		}
		if err := uc.EmailService.SendNewsletter(user.Email, len(leads), titles); err != nil {
			// Best effort per recipient; one bad address never stops the run.
			uc.Log.Warn().Err(err).Str("email", user.Email).Msg("newsletter not delivered")
			continue
		}
		sent++
	}

	uc.Log.Info().Int("leads", len(leads)).Int("recipients", sent).Msg("daily newsletter sent")

	return &NewsletterOutput{
		LeadCount:  len(leads),
		Recipients: sent,
		Msg:        "Newsletter dispatched",
	}, nil
}
