package user

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tasmimahana/cse470/internal/auth"
	domain "github.com/tasmimahana/cse470/internal/domain/user"
	"github.com/tasmimahana/cse470/internal/httperr"
	"github.com/tasmimahana/cse470/internal/mailer"
	"github.com/tasmimahana/cse470/internal/models"
	"github.com/tasmimahana/cse470/internal/validators"
)

const verificationTokenBytes = 40

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterOptions struct {
	// Origin is the client base URL used in verification links.
	Origin           string
	CheckEmailDomain bool
}

type Register struct {
	repo   domain.Repository
	mail   mailer.Mailer
	opts   RegisterOptions
	logger *slog.Logger
}

func NewRegister(
	repo domain.Repository,
	mail mailer.Mailer,
	opts RegisterOptions,
	logger *slog.Logger,
) *Register {
	return &Register{
		repo:   repo,
		mail:   mail,
		opts:   opts,
		logger: logger,
	}
}

// Execute creates an unverified account. The very first account becomes
// admin; every later one is a plain user whatever the request says.
func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := validators.NormalizeEmail(in.Email)

	if name == "" || email == "" || in.Password == "" {
		return nil, httperr.ErrBadRequest("invalid_registration", "Please provide name, email and password")
	}
	if !validators.IsEmailFormatValid(email) {
		return nil, httperr.ErrBadRequest("invalid_email", "Please provide a valid email")
	}
	if len(in.Password) < 6 {
		return nil, httperr.ErrBadRequest("weak_password", "Password must be at least 6 characters")
	}
	if uc.opts.CheckEmailDomain && !validators.IsEmailDomainValid(ctx, email) {
		return nil, httperr.ErrBadRequest("invalid_email", "Email domain does not accept mail")
	}

	if _, err := uc.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, emailExists()
	} else if !httperr.IsRecordNotFound(err) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	token, err := auth.RandomToken(verificationTokenBytes)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:              name,
		Email:             email,
		PasswordHash:      hash,
		Role:              models.RoleUser,
		VerificationToken: token,
	}

	if err := uc.repo.CreateFirstUser(ctx, u); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, emailExists()
		}
		return nil, err
	}

	sendVerification(ctx, uc.mail, uc.logger, uc.opts.Origin, u)

	return u, nil
}

func emailExists() error {
	return httperr.ErrBadRequest("email_exists", "Email already exists")
}

// sendVerification is best effort; a failed mail never fails the request.
func sendVerification(ctx context.Context, m mailer.Mailer, logger *slog.Logger, origin string, u *models.User) {
	msg, err := mailer.VerificationEmail(origin, u.Name, u.Email, u.VerificationToken)
	if err == nil {
		err = m.Send(ctx, msg)
	}
	if err != nil {
		logger.Error("verification email failed",
			slog.String("user_id", u.ID),
			slog.String("email", u.Email),
			slog.Any("error", err),
		)
	}
}
