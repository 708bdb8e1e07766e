package service

import (
	"Blogverse/internal/api/dto"
	"Blogverse/internal/model"
	"Blogverse/internal/pkg/consts"
	"Blogverse/internal/pkg/security"
	"Blogverse/internal/pkg/util"
	"Blogverse/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	maxUsernameAttempts = 5
	usernameSuffixLen   = 5
	// 无过期时间的 Token 在黑名单中的保留时长
	defaultRevokeTTL = 24 * time.Hour
)

const (
	msgFullname = "Full name must be at least 3 letters long"
	msgNoEmail  = "Enter email"
	msgEmail    = "Invalid email"
	msgPassword = "Password should be 6 to 20 characters long with a numeric, 1 lowercase and 1 uppercase letters"
)

type UserService interface {
	Signup(ctx context.Context, dto *dto.SignupDTO) (*dto.SessionDTO, error)
	Signin(ctx context.Context, dto *dto.SigninDTO) (*dto.SessionDTO, error)
	Signout(ctx context.Context, claims *security.UserClaims) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	hasher   *security.PasswordHasher
	tokens   *security.TokenAuthority
	denylist security.Denylist
}

func NewUserService(userRepo repository.UserRepo, hasher *security.PasswordHasher, tokens *security.TokenAuthority, denylist security.Denylist) UserService {
	if denylist == nil {
		denylist = security.NopDenylist()
	}
	return &UserServiceImpl{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		denylist: denylist,
	}
}

func (s *UserServiceImpl) Signup(ctx context.Context, signupDTO *dto.SignupDTO) (*dto.SessionDTO, error) {
	signupDTO.Email = strings.ToLower(signupDTO.Email)
	if err := checkSignup(signupDTO); err != nil {
		return nil, err
	}

	passwordHash, err := s.hasher.HashPassword(signupDTO.Password)
	if err != nil {
		return nil, err
	}

	localPart := strings.Split(signupDTO.Email, "@")[0]
	for attempt := 0; attempt < maxUsernameAttempts; attempt++ {
		username := localPart
		if attempt > 0 {
			username += util.RandomString(usernameSuffixLen)
		}
		user := &model.User{
			ID:         uuid.NewString(),
			Fullname:   signupDTO.Fullname,
			Email:      signupDTO.Email,
			Password:   passwordHash,
			Username:   username,
			ProfileImg: fmt.Sprintf(consts.DefaultProfileImgURL, username),
			Blogs:      []string{},
			JoinedAt:   time.Now().UTC(),
		}
		err = s.userRepo.CreateUser(ctx, user)
		switch {
		case err == nil:
			return s.newSession(user)
		case errors.Is(err, repository.ErrDuplicateUsername):
			log.DebugContext(ctx, "username taken, retrying", "username", username, "attempt", attempt+1)
			continue
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, ErrDuplicateEmail
		default:
			return nil, &StorageError{Op: "create user", Cause: err}
		}
	}
	return nil, &StorageError{Op: "create user", Cause: fmt.Errorf("no free username for %q after %d attempts", localPart, maxUsernameAttempts)}
}

func (s *UserServiceImpl) Signin(ctx context.Context, signinDTO *dto.SigninDTO) (*dto.SessionDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(signinDTO.Email))
	if err != nil {
		return nil, &StorageError{Op: "find user", Cause: err}
	}
	if user == nil {
		return nil, ErrEmailNotFound
	}
	if err = s.hasher.CheckPasswordHash(signinDTO.Password, user.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.newSession(user)
}

// Signout 将 jti 写入黑名单，保留到 Token 自然过期
func (s *UserServiceImpl) Signout(ctx context.Context, claims *security.UserClaims) error {
	ttl := defaultRevokeTTL
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	} else if s.tokens.TTL() > 0 {
		ttl = s.tokens.TTL()
	}
	if ttl <= 0 {
		return nil
	}
	if err := s.denylist.Revoke(ctx, claims.ID, ttl); err != nil {
		return &StorageError{Op: "revoke token", Cause: err}
	}
	return nil
}

func (s *UserServiceImpl) newSession(user *model.User) (*dto.SessionDTO, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.SessionDTO{
		AccessToken:  token,
		ProfileImage: user.ProfileImg,
		Username:     user.Username,
		Fullname:     user.Fullname,
	}, nil
}

func checkSignup(signupDTO *dto.SignupDTO) error {
	violation, err := util.CheckStruct(signupDTO)
	if err != nil {
		return err
	}
	if violation == nil {
		return nil
	}
	switch {
	case violation.Field == "fullname":
		return newValidationError("fullname", msgFullname)
	case violation.Field == "email" && violation.Tag == "required":
		return newValidationError("email", msgNoEmail)
	case violation.Field == "email":
		return newValidationError("email", msgEmail)
	default:
		return newValidationError("password", msgPassword)
	}
}
