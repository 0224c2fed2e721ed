package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/tasmimahana/cse470/internal/auth"
	domain "github.com/tasmimahana/cse470/internal/domain/user"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/mailer"
	"github.com/tasmimahana/cse470/internal/validators"
)

type VerifyEmail struct {
	repo domain.Repository
	now  func() time.Time
}

func NewVerifyEmail(repo domain.Repository) *VerifyEmail {
	return &VerifyEmail{repo: repo, now: time.Now}
}

func (uc *VerifyEmail) Execute(ctx context.Context, email, token string) error {
	u, err := uc.repo.GetUserByEmail(ctx, validators.NormalizeEmail(email))
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return httperr.ErrUnauthenticated("user_not_found", "User not found")
		}
		return err
	}

	if token == "" || u.VerificationToken != token {
		return httperr.ErrUnauthenticated("verification_failed", "Verification Failed")
	}

	now := uc.now()
	u.IsVerified = true
	u.VerifiedAt = &now
	u.VerificationToken = ""

	return uc.repo.UpdateUser(ctx, u)
}

type ResendVerification struct {
	repo   domain.Repository
	mail   mailer.Mailer
	origin string
	logger *slog.Logger
}

func NewResendVerification(
	repo domain.Repository,
	mail mailer.Mailer,
	origin string,
	logger *slog.Logger,
) *ResendVerification {
	return &ResendVerification{
		repo:   repo,
		mail:   mail,
		origin: origin,
		logger: logger,
	}
}

// Execute rotates the verification token and mails it again.
func (uc *ResendVerification) Execute(ctx context.Context, email string) error {
	email = validators.NormalizeEmail(email)
	if email == "" {
		return httperr.ErrBadRequest("email_required", "Please provide email")
	}

	u, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return httperr.ErrNotFound("user_not_found", "User not found")
		}
		return err
	}
	if u.IsVerified {
		return httperr.ErrBadRequest("already_verified", "Email is already verified")
	}

	token, err := auth.RandomToken(verificationTokenBytes)
	if err != nil {
		return err
	}
	u.VerificationToken = token
	if err := uc.repo.UpdateUser(ctx, u); err != nil {
		return err
	}

	sendVerification(ctx, uc.mail, uc.logger, uc.origin, u)
	return nil
}
